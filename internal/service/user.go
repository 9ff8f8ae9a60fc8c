package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tastebud-app/tastebud/internal/models"
)

// UserService reads and edits user profiles.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get fetches one user's profile.
func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName  string
	About     string
	UserImage string
}

// Update edits a user's own profile and returns the stored result.
func (s *UserService) Update(id uuid.UUID, update ProfileUpdate) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{
		"about": update.About,
	}
	if update.FullName != "" {
		changes["full_name"] = update.FullName
	}
	if update.UserImage != "" {
		changes["user_image"] = update.UserImage
	}
	if err := s.db.Model(user).Updates(changes).Error; err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}
