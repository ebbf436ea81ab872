package services

import (
	"errors"

	"sewakos-backend/apperr"
	"sewakos-backend/models"

	"gorm.io/gorm"
)

// VerificationService is the owner-side accept/reject of a submitted
// payment. It is the single place where payment state and booking state are
// reconciled, so both updates run in one transaction: verified confirms the
// booking, rejected sends it back to awaiting_payment so the tenant can
// resubmit.
type VerificationService struct {
	DB *gorm.DB
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{DB: db}
}

type VerifyResult struct {
	Payment models.Payment `json:"payment"`
	Booking models.Booking `json:"booking"`
}

func (s *VerificationService) Verify(caller models.Caller, paymentID uint, decision models.PaymentStatus) (*VerifyResult, error) {
	if decision != models.PaymentVerified && decision != models.PaymentRejected {
		return nil, apperr.Validation("decision must be one of: verified, rejected")
	}

	var result VerifyResult
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var payment models.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("payment not found")
			}
			return dbErr("verify payment: load", err)
		}

		var booking models.Booking
		if err := tx.First(&booking, payment.BookingID).Error; err != nil {
			return dbErr("verify payment: load booking", err)
		}

		ownerID, err := kosOwnerID(tx, booking.RoomID)
		if err != nil {
			return dbErr("verify payment: resolve owner", err)
		}
		if ownerID != caller.ID {
			return apperr.Forbidden("payment does not belong to one of your kos")
		}

		// Gate on the current payment status so concurrent verifications
		// cannot both mutate booking state.
		res := tx.Model(&models.Payment{}).
			Where("id = ? AND status = ?", payment.ID, models.PaymentPending).
			Update("status", decision)
		if res.Error != nil {
			return dbErr("verify payment: update", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("payment has already been verified or rejected")
		}

		switch decision {
		case models.PaymentVerified:
			// Gate on awaiting_verification too: a booking cancelled after
			// submission must not come back as confirmed.
			upd := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", booking.ID, models.BookingAwaitingVerification).
				Update("status", models.BookingConfirmed)
			if upd.Error != nil {
				return dbErr("verify payment: confirm booking", upd.Error)
			}
			if upd.RowsAffected == 0 {
				return apperr.Conflict("booking is no longer awaiting verification")
			}
			booking.Status = models.BookingConfirmed
		case models.PaymentRejected:
			// Revert only if nothing else moved the booking meanwhile.
			upd := tx.Model(&models.Booking{}).
				Where("id = ? AND status = ?", booking.ID, models.BookingAwaitingVerification).
				Update("status", models.BookingAwaitingPayment)
			if upd.Error != nil {
				return dbErr("verify payment: revert booking", upd.Error)
			}
			if upd.RowsAffected > 0 {
				booking.Status = models.BookingAwaitingPayment
			}
		}

		payment.Status = decision
		result = VerifyResult{Payment: payment, Booking: booking}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &result, nil
}
