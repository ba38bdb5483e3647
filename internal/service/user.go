package service

import (
	"fmt"
	"strings"

	"studjournal/internal/domain"
	"studjournal/internal/repository"
)

// UserService handles user profile logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUser returns the user's profile, creating one with the default
// group on first contact
func (s *UserService) EnsureUser(userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	created := domain.User{ID: userID, Group: domain.DefaultGroup}
	if err := s.userRepo.AddUser(created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ChangeGroup sets the user's group name
func (s *UserService) ChangeGroup(userID int64, group string) error {
	group = strings.TrimSpace(group)
	if group == "" {
		return fmt.Errorf("group name cannot be empty")
	}
	return s.userRepo.UpdateGroup(userID, group)
}
