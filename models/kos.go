package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Kos is a boarding house listing. Rooms inside it are the bookable unit.
type Kos struct {
	gorm.Model

	OwnerID     uint           `gorm:"column:owner_id;index" json:"owner_id"`
	Name        string         `gorm:"column:name;size:128" json:"name"`
	Address     string         `gorm:"column:address;type:text" json:"address"`
	Description string         `gorm:"column:description;type:text" json:"description,omitempty"`
	PhotoRef    string         `gorm:"column:photo_ref;size:255" json:"photo_ref,omitempty"`
	Facilities  datatypes.JSON `gorm:"column:facilities" json:"facilities,omitempty"`

	Owner User   `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
	Rooms []Room `gorm:"foreignKey:KosID" json:"rooms,omitempty"`
}

// "kos" is invariant; keep gorm from inventing a plural.
func (Kos) TableName() string { return "kos" }
