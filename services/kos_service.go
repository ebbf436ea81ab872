package services

import (
	"encoding/json"
	"errors"
	"strings"

	"sewakos-backend/apperr"
	"sewakos-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// KosService is the owner-facing catalog of boarding houses.
type KosService struct {
	DB *gorm.DB
}

func NewKosService(db *gorm.DB) *KosService {
	return &KosService{DB: db}
}

func facilitiesJSON(facilities []string) (datatypes.JSON, error) {
	if len(facilities) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(facilities)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

type CreateKosInput struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Description string   `json:"description"`
	PhotoRef    string   `json:"photo_ref"`
	Facilities  []string `json:"facilities"`
}

func (s *KosService) Create(caller models.Caller, in CreateKosInput) (*models.Kos, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, apperr.Validation("name and address are required")
	}
	fac, err := facilitiesJSON(in.Facilities)
	if err != nil {
		return nil, apperr.Validation("facilities must be a list of strings")
	}

	kos := models.Kos{
		OwnerID:     caller.ID,
		Name:        strings.TrimSpace(in.Name),
		Address:     strings.TrimSpace(in.Address),
		Description: in.Description,
		PhotoRef:    in.PhotoRef,
		Facilities:  fac,
	}
	if err := s.DB.Create(&kos).Error; err != nil {
		return nil, dbErr("create kos", err)
	}
	return &kos, nil
}

// SearchKosInput narrows the public catalog listing. Keyword matches the
// kos itself; price bounds and facilities match its rooms.
type SearchKosInput struct {
	Keyword    string
	MinPrice   float64
	MaxPrice   float64
	Facilities []string
}

func (s *KosService) List(in SearchKosInput) ([]models.Kos, error) {
	q := s.DB.Model(&models.Kos{}).
		Preload("Owner").
		Order("created_at DESC")

	if kw := strings.TrimSpace(in.Keyword); kw != "" {
		like := "%" + kw + "%"
		q = q.Where(
			"name LIKE ? OR address LIKE ? OR description LIKE ? OR facilities LIKE ?",
			like, like, like, like,
		)
	}

	rooms := s.DB.Model(&models.Room{}).Select("kos_id")
	narrowed := false
	if in.MinPrice > 0 {
		rooms = rooms.Where("price >= ?", in.MinPrice)
		narrowed = true
	}
	if in.MaxPrice > 0 {
		rooms = rooms.Where("price <= ?", in.MaxPrice)
		narrowed = true
	}
	var facCond *gorm.DB
	for _, f := range in.Facilities {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		like := "%" + f + "%"
		if facCond == nil {
			facCond = s.DB.Where("facilities LIKE ?", like)
		} else {
			facCond = facCond.Or("facilities LIKE ?", like)
		}
	}
	if facCond != nil {
		rooms = rooms.Where(facCond)
		narrowed = true
	}
	if narrowed {
		q = q.Where("id IN (?)", rooms)
	}

	var list []models.Kos
	if err := q.Find(&list).Error; err != nil {
		return nil, dbErr("list kos", err)
	}
	if list == nil {
		list = []models.Kos{}
	}
	return list, nil
}

func (s *KosService) Detail(kosID uint) (*models.Kos, error) {
	var kos models.Kos
	if err := s.DB.
		Preload("Owner").
		Preload("Rooms").
		First(&kos, kosID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("kos not found")
		}
		return nil, dbErr("kos detail", err)
	}
	return &kos, nil
}

// UpdateKosInput carries optional fields; only non-nil ones are applied.
type UpdateKosInput struct {
	Name        *string  `json:"name"`
	Address     *string  `json:"address"`
	Description *string  `json:"description"`
	PhotoRef    *string  `json:"photo_ref"`
	Facilities  []string `json:"facilities"`
}

func (s *KosService) Update(caller models.Caller, kosID uint, in UpdateKosInput) (*models.Kos, error) {
	var kos models.Kos
	if err := s.DB.First(&kos, kosID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("kos not found")
		}
		return nil, dbErr("update kos: load", err)
	}
	if kos.OwnerID != caller.ID {
		return nil, apperr.Forbidden("kos belongs to another owner")
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, apperr.Validation("name cannot be empty")
		}
		updates["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Address != nil {
		if strings.TrimSpace(*in.Address) == "" {
			return nil, apperr.Validation("address cannot be empty")
		}
		updates["address"] = strings.TrimSpace(*in.Address)
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.PhotoRef != nil {
		updates["photo_ref"] = *in.PhotoRef
	}
	if in.Facilities != nil {
		fac, err := facilitiesJSON(in.Facilities)
		if err != nil {
			return nil, apperr.Validation("facilities must be a list of strings")
		}
		updates["facilities"] = fac
	}
	if len(updates) == 0 {
		return &kos, nil
	}

	if err := s.DB.Model(&kos).Updates(updates).Error; err != nil {
		return nil, dbErr("update kos", err)
	}
	return &kos, nil
}

// Delete removes a kos and its rooms. Refused while any room is occupied,
// since an active booking still points at it.
func (s *KosService) Delete(caller models.Caller, kosID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var kos models.Kos
		if err := tx.First(&kos, kosID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("kos not found")
			}
			return dbErr("delete kos: load", err)
		}
		if kos.OwnerID != caller.ID {
			return apperr.Forbidden("kos belongs to another owner")
		}

		var occupied int64
		if err := tx.Model(&models.Room{}).
			Where("kos_id = ? AND status = ?", kosID, models.RoomOccupied).
			Count(&occupied).Error; err != nil {
			return dbErr("delete kos: count occupied", err)
		}
		if occupied > 0 {
			return apperr.Conflict("kos has rooms with active bookings")
		}

		if err := tx.Where("kos_id = ?", kosID).Delete(&models.Room{}).Error; err != nil {
			return dbErr("delete kos: rooms", err)
		}
		if err := tx.Delete(&kos).Error; err != nil {
			return dbErr("delete kos", err)
		}
		return nil
	})
}
