package services

import (
	"errors"
	"strings"

	"sewakos-backend/apperr"
	"sewakos-backend/models"

	"gorm.io/gorm"
)

// RoomService is the owner-facing catalog of bookable rooms. It may flip a
// room between available and maintenance; occupied belongs to the booking
// engine alone.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type CreateRoomInput struct {
	Name       string   `json:"name" binding:"required"`
	Price      float64  `json:"price" binding:"required"`
	Size       string   `json:"size"`
	Facilities []string `json:"facilities"`
}

func (s *RoomService) Create(caller models.Caller, kosID uint, in CreateRoomInput) (*models.Room, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperr.Validation("name is required")
	}
	if in.Price <= 0 {
		return nil, apperr.Validation("price must be positive")
	}

	var kos models.Kos
	if err := s.DB.First(&kos, kosID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("kos not found")
		}
		return nil, dbErr("create room: load kos", err)
	}
	if kos.OwnerID != caller.ID {
		return nil, apperr.Forbidden("kos belongs to another owner")
	}

	fac, err := facilitiesJSON(in.Facilities)
	if err != nil {
		return nil, apperr.Validation("facilities must be a list of strings")
	}

	room := models.Room{
		KosID:      kosID,
		Name:       strings.TrimSpace(in.Name),
		Price:      in.Price,
		Size:       in.Size,
		Facilities: fac,
		Status:     models.RoomAvailable,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, dbErr("create room", err)
	}
	return &room, nil
}

func (s *RoomService) ListByKos(kosID uint) ([]models.Room, error) {
	var kos models.Kos
	if err := s.DB.First(&kos, kosID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("kos not found")
		}
		return nil, dbErr("list rooms: load kos", err)
	}

	var list []models.Room
	if err := s.DB.
		Where("kos_id = ?", kosID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, dbErr("list rooms", err)
	}
	if list == nil {
		list = []models.Room{}
	}
	return list, nil
}

func (s *RoomService) Detail(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.
		Preload("Kos").
		First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("room not found")
		}
		return nil, dbErr("room detail", err)
	}
	return &room, nil
}

type UpdateRoomInput struct {
	Name       *string  `json:"name"`
	Price      *float64 `json:"price"`
	Size       *string  `json:"size"`
	Status     *string  `json:"status"`
	Facilities []string `json:"facilities"`
}

// Update applies a partial edit. Price edits never touch existing bookings:
// total_price is computed once at booking creation.
func (s *RoomService) Update(caller models.Caller, roomID uint, in UpdateRoomInput) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("room not found")
		}
		return nil, dbErr("update room: load", err)
	}

	var kos models.Kos
	if err := s.DB.First(&kos, room.KosID).Error; err != nil {
		return nil, dbErr("update room: load kos", err)
	}
	if kos.OwnerID != caller.ID {
		return nil, apperr.Forbidden("room belongs to another owner")
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, apperr.Validation("price must be positive")
		}
		updates["price"] = *in.Price
	}
	if in.Size != nil {
		updates["size"] = *in.Size
	}
	if in.Status != nil {
		next := models.RoomStatus(*in.Status)
		if next != models.RoomAvailable && next != models.RoomMaintenance {
			return nil, apperr.Validation("status must be one of: available, maintenance")
		}
		if room.Status == models.RoomOccupied {
			return nil, apperr.Conflict("room has an active booking")
		}
		updates["status"] = next
	}
	if in.Facilities != nil {
		fac, err := facilitiesJSON(in.Facilities)
		if err != nil {
			return nil, apperr.Validation("facilities must be a list of strings")
		}
		updates["facilities"] = fac
	}
	if len(updates) == 0 {
		return &room, nil
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, dbErr("update room", err)
	}
	return &room, nil
}

func (s *RoomService) Delete(caller models.Caller, roomID uint) error {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("room not found")
		}
		return dbErr("delete room: load", err)
	}

	var kos models.Kos
	if err := s.DB.First(&kos, room.KosID).Error; err != nil {
		return dbErr("delete room: load kos", err)
	}
	if kos.OwnerID != caller.ID {
		return apperr.Forbidden("room belongs to another owner")
	}
	if room.Status == models.RoomOccupied {
		return apperr.Conflict("room has an active booking")
	}

	if err := s.DB.Delete(&room).Error; err != nil {
		return dbErr("delete room", err)
	}
	return nil
}
