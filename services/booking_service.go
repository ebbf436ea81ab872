package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"sewakos-backend/apperr"
	"sewakos-backend/models"
	"sewakos-backend/utils"

	"gorm.io/gorm"
)

// BookingService owns the booking lifecycle: creation flips the room to
// occupied, cancellation frees it, and every multi-table effect runs inside
// one transaction.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// dbErr logs the storage failure with context and hands the caller a
// generic internal error.
func dbErr(op string, err error) error {
	log.Printf("%s: %v", op, err)
	return apperr.Internal(err)
}

// kosOwnerID walks room -> kos and returns the owning user id.
func kosOwnerID(tx *gorm.DB, roomID uint) (uint, error) {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return 0, err
	}
	var kos models.Kos
	if err := tx.First(&kos, room.KosID).Error; err != nil {
		return 0, err
	}
	return kos.OwnerID, nil
}

type CreateBookingInput struct {
	RoomID         uint   `json:"room_id" binding:"required"`
	StartDate      string `json:"start_date" binding:"required"`
	DurationMonths int    `json:"duration_months" binding:"required"`
}

// Create books an available room for the calling tenant. The room flip and
// the booking insert commit together or not at all; the conditional UPDATE
// on room status is what loses gracefully when two tenants race.
func (s *BookingService) Create(caller models.Caller, in CreateBookingInput) (*models.Booking, error) {
	start, err := time.Parse("2006-01-02", in.StartDate)
	if err != nil {
		return nil, apperr.Validation("start_date must be YYYY-MM-DD")
	}
	if in.DurationMonths <= 0 {
		return nil, apperr.Validation("duration_months must be positive")
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("room not found")
			}
			return dbErr("create booking: load room", err)
		}
		if room.Status != models.RoomAvailable {
			return apperr.Conflict(fmt.Sprintf("room is not available (status: %s)", room.Status))
		}

		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", room.ID, models.RoomAvailable).
			Update("status", models.RoomOccupied)
		if res.Error != nil {
			return dbErr("create booking: occupy room", res.Error)
		}
		if res.RowsAffected == 0 {
			// lost the race to another booking
			return apperr.Conflict("room is not available")
		}

		booking = models.Booking{
			ReferenceCode:  utils.NewBookingRef(),
			TenantID:       caller.ID,
			RoomID:         room.ID,
			StartDate:      start,
			DurationMonths: in.DurationMonths,
			TotalPrice:     room.Price * float64(in.DurationMonths),
			Status:         models.BookingAwaitingPayment,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return dbErr("create booking: insert", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// UpdateStatus lets the kos owner cancel or complete a booking. Confirmation
// is not reachable here; only payment verification confirms a booking.
func (s *BookingService) UpdateStatus(caller models.Caller, bookingID uint, newStatus models.BookingStatus) (*models.Booking, error) {
	if newStatus != models.BookingCancelled && newStatus != models.BookingCompleted {
		return nil, apperr.Validation("status must be one of: cancelled, completed")
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("booking not found")
			}
			return dbErr("update booking status: load", err)
		}

		ownerID, err := kosOwnerID(tx, booking.RoomID)
		if err != nil {
			return dbErr("update booking status: resolve owner", err)
		}
		if ownerID != caller.ID {
			return apperr.Forbidden("booking does not belong to one of your kos")
		}

		if !models.CanTransition(booking.Status, newStatus) {
			return apperr.Conflict(fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, newStatus))
		}

		res := tx.Model(&models.Booking{}).
			Where("id = ? AND status = ?", booking.ID, booking.Status).
			Update("status", newStatus)
		if res.Error != nil {
			return dbErr("update booking status: update", res.Error)
		}
		if res.RowsAffected == 0 {
			return apperr.Conflict("booking status changed concurrently")
		}

		if newStatus == models.BookingCancelled {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", booking.RoomID).
				Update("status", models.RoomAvailable).Error; err != nil {
				return dbErr("update booking status: free room", err)
			}
		}

		booking.Status = newStatus
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// ListFor returns bookings scoped to the caller: tenants see their own,
// owners see bookings against rooms of kos they own.
func (s *BookingService) ListFor(caller models.Caller) ([]models.Booking, error) {
	var list []models.Booking

	switch caller.Role {
	case models.RoleTenant:
		if err := s.DB.
			Preload("Room").
			Preload("Room.Kos").
			Where("tenant_id = ?", caller.ID).
			Order("created_at DESC").
			Find(&list).Error; err != nil {
			return nil, dbErr("list bookings: tenant", err)
		}
	case models.RoleOwner:
		if err := s.DB.
			Preload("Room").
			Preload("Room.Kos").
			Preload("Tenant").
			Joins("JOIN rooms ON rooms.id = bookings.room_id").
			Joins("JOIN kos ON kos.id = rooms.kos_id").
			Where("kos.owner_id = ?", caller.ID).
			Order("bookings.created_at DESC").
			Find(&list).Error; err != nil {
			return nil, dbErr("list bookings: owner", err)
		}
	default:
		return nil, apperr.Forbidden("access denied for role " + caller.Role)
	}

	if list == nil {
		list = []models.Booking{}
	}
	return list, nil
}

// Detail returns a single booking to its tenant or to the kos owner.
func (s *BookingService) Detail(caller models.Caller, bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.
		Preload("Room").
		Preload("Room.Kos").
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("booking not found")
		}
		return nil, dbErr("booking detail: load", err)
	}

	if err := authorizeBookingAccess(caller, &booking, booking.Room.Kos.OwnerID); err != nil {
		return nil, err
	}
	return &booking, nil
}

// authorizeBookingAccess admits the booking's tenant and the kos owner.
func authorizeBookingAccess(caller models.Caller, booking *models.Booking, ownerID uint) error {
	switch caller.Role {
	case models.RoleTenant:
		if booking.TenantID != caller.ID {
			return apperr.Forbidden("booking belongs to another tenant")
		}
	case models.RoleOwner:
		if ownerID != caller.ID {
			return apperr.Forbidden("booking does not belong to one of your kos")
		}
	default:
		return apperr.Forbidden("access denied for role " + caller.Role)
	}
	return nil
}
