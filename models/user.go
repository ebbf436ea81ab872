package models

import (
	"gorm.io/gorm"
)

const (
	RoleTenant = "penyewa"
	RoleOwner  = "pemilik_kos"
)

func ValidRole(role string) bool {
	return role == RoleTenant || role == RoleOwner
}

type User struct {
	gorm.Model

	Username string `gorm:"column:username;uniqueIndex;size:64" json:"username"`
	Email    string `gorm:"column:email;uniqueIndex;size:128" json:"email"`
	Password string `gorm:"column:password;size:255" json:"-"`
	Role     string `gorm:"column:role;size:32;index" json:"role"`
	FullName string `gorm:"column:full_name;size:128" json:"full_name,omitempty"`
	Phone    string `gorm:"column:phone;size:32" json:"phone,omitempty"`
}
