package models

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model

	BookingID uint    `gorm:"column:booking_id;index" json:"booking_id"`
	Amount    float64 `gorm:"column:amount" json:"amount"`
	Method    string  `gorm:"column:method;size:64" json:"method"`
	// Opaque reference to the uploaded evidence; the media service owns
	// the actual bytes.
	ProofRef    string        `gorm:"column:proof_ref;size:255" json:"proof_ref"`
	Status      PaymentStatus `gorm:"column:status;size:32;index" json:"status"`
	SubmittedAt time.Time     `gorm:"column:submitted_at" json:"submitted_at"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}
