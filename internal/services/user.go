package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mohana1105/MovieTicketBookingSystem/internal/database"

	"gorm.io/gorm"
)

// UserService handles user-related operations
type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new user service bound to the given
// database handle.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreateUser resolves a phone number to a user, creating one if
// the phone is unknown. The boolean reports whether a new user was
// created. When the phone already exists, the stored record wins and
// the supplied name is discarded, even if different.
func (s *UserService) GetOrCreateUser(ctx context.Context, name, phone string) (*database.User, bool, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	// Try to find existing user
	var user database.User
	err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}

	// Create new user
	user = database.User{
		Name:  name,
		Phone: phone,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, true, nil
}
