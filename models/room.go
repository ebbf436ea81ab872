package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	KosID      uint           `gorm:"column:kos_id;index" json:"kos_id"`
	Name       string         `gorm:"column:name;size:100" json:"name"`
	Price      float64        `gorm:"column:price" json:"price"` // per month
	Size       string         `gorm:"column:size;size:50" json:"size,omitempty"`
	Facilities datatypes.JSON `gorm:"column:facilities" json:"facilities,omitempty"`
	Status     RoomStatus     `gorm:"column:status;size:32;default:available" json:"status"`

	Kos Kos `gorm:"foreignKey:KosID;references:ID" json:"kos,omitempty"`
}
