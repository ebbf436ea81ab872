package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sewakos-backend/apperr"
	"sewakos-backend/config"
	"sewakos-backend/models"

	"gorm.io/gorm"
)

// PaymentService records tenant payment submissions against a booking.
// Submission is only accepted while the booking awaits payment; accepting
// one atomically moves the booking to awaiting_verification, so at most one
// payment can be outstanding per booking.
type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

type SubmitPaymentInput struct {
	Amount   float64 `json:"amount" binding:"required"`
	Method   string  `json:"method" binding:"required"`
	ProofRef string  `json:"proof_ref" binding:"required"`
}

func (s *PaymentService) Submit(caller models.Caller, bookingID uint, in SubmitPaymentInput) (*models.Payment, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validation("amount must be positive")
	}
	if strings.TrimSpace(in.Method) == "" {
		return nil, apperr.Validation("method is required")
	}
	if strings.TrimSpace(in.ProofRef) == "" {
		return nil, apperr.Validation("proof_ref is required")
	}

	var payment models.Payment
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("booking not found")
			}
			return dbErr("submit payment: load booking", err)
		}
		if booking.TenantID != caller.ID {
			return apperr.Forbidden("booking belongs to another tenant")
		}
		if booking.Status != models.BookingAwaitingPayment {
			return apperr.Conflict(fmt.Sprintf("booking is not awaiting payment (status: %s)", booking.Status))
		}
		if config.RequireFullAmount() && in.Amount < booking.TotalPrice {
			return apperr.Validation(fmt.Sprintf("amount %.2f is less than the booking total %.2f", in.Amount, booking.TotalPrice))
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, models.BookingAwaitingPayment).
			Update("status", models.BookingAwaitingVerification)
		if res.Error != nil {
			return dbErr("submit payment: update booking", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("booking is not awaiting payment")
		}

		payment = models.Payment{
			BookingID:   booking.ID,
			Amount:      in.Amount,
			Method:      strings.TrimSpace(in.Method),
			ProofRef:    strings.TrimSpace(in.ProofRef),
			Status:      models.PaymentPending,
			SubmittedAt: time.Now().UTC(),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return dbErr("submit payment: insert", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &payment, nil
}

// ListByBooking returns the payment history of a booking for its tenant or
// the kos owner.
func (s *PaymentService) ListByBooking(caller models.Caller, bookingID uint) ([]models.Payment, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, dbErr("list payments: load booking", err)
	}

	ownerID, err := kosOwnerID(s.DB, booking.RoomID)
	if err != nil {
		return nil, dbErr("list payments: resolve owner", err)
	}
	if err := authorizeBookingAccess(caller, &booking, ownerID); err != nil {
		return nil, err
	}

	var list []models.Payment
	if err := s.DB.
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, dbErr("list payments: find", err)
	}
	if list == nil {
		list = []models.Payment{}
	}
	return list, nil
}
