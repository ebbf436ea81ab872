package services

import (
	"errors"
	"net/mail"
	"strings"

	"sewakos-backend/apperr"
	"sewakos-backend/middleware"
	"sewakos-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService is the identity collaborator: registration, login, profile.
type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

func (s *AuthService) Register(in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, apperr.Validation("username, email and password are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.Validation("invalid email format")
	}
	if len(in.Password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}
	role := in.Role
	if role == "" {
		role = models.RoleTenant
	}
	if !models.ValidRole(role) {
		return nil, apperr.Validation("role must be one of: penyewa, pemilik_kos")
	}

	var existing models.User
	err := s.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("username or email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, dbErr("register: lookup", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, dbErr("register: hash password", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		Role:     role,
		FullName: strings.TrimSpace(in.FullName),
		Phone:    strings.TrimSpace(in.Phone),
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, dbErr("register: insert", err)
	}
	return &user, nil
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login accepts username or email and issues a bearer token.
func (s *AuthService) Login(in LoginInput) (string, *models.User, error) {
	ident := strings.TrimSpace(in.Username)
	if ident == "" || in.Password == "" {
		return "", nil, apperr.Validation("username and password are required")
	}

	var user models.User
	err := s.DB.Where("username = ? OR email = ?", ident, ident).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apperr.Unauthenticated("invalid credentials")
		}
		return "", nil, dbErr("login: lookup", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)) != nil {
		return "", nil, apperr.Unauthenticated("invalid credentials")
	}

	token, err := middleware.CreateToken(user.ID, user.Role)
	if err != nil {
		return "", nil, dbErr("login: sign token", err)
	}
	return token, &user, nil
}

func (s *AuthService) Profile(callerID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, dbErr("profile: load", err)
	}
	return &user, nil
}

type UpdateProfileInput struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func (s *AuthService) UpdateProfile(callerID uint, in UpdateProfileInput) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, callerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, dbErr("update profile: load", err)
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, apperr.Validation("invalid email format")
		}
		if email != user.Email {
			var count int64
			if err := s.DB.Model(&models.User{}).
				Where("email = ? AND id <> ?", email, callerID).
				Count(&count).Error; err != nil {
				return nil, dbErr("update profile: email lookup", err)
			}
			if count > 0 {
				return nil, apperr.Conflict("email is already registered")
			}
		}
		updates["email"] = email
	}
	if in.Password != nil {
		if len(*in.Password) < 6 {
			return nil, apperr.Validation("password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, dbErr("update profile: hash password", err)
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return &user, nil
	}

	if err := s.DB.Model(&user).Updates(updates).Error; err != nil {
		return nil, dbErr("update profile", err)
	}
	return &user, nil
}
