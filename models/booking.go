package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode  string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code"`
	TenantID       uint      `gorm:"column:tenant_id;index" json:"tenant_id"`
	RoomID         uint      `gorm:"column:room_id;index" json:"room_id"`
	StartDate      time.Time `gorm:"column:start_date" json:"start_date"`
	DurationMonths int       `gorm:"column:duration_months" json:"duration_months"`
	// Computed once at creation from the room price; later price edits
	// never touch it.
	TotalPrice float64       `gorm:"column:total_price" json:"total_price"`
	Status     BookingStatus `gorm:"column:status;size:32;index" json:"status"`

	Tenant User `gorm:"foreignKey:TenantID;references:ID" json:"tenant,omitempty"`
	Room   Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
