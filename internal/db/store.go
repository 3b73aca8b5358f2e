package db

import (
	"context"

	"github.com/sirdesai22/campus-events/internal/models"
	"gorm.io/gorm"
)

// Store exposes the snapshot reads the dashboard builder consumes.
// One instance is shared across requests; gorm handles pooling.
type Store struct {
	DB *gorm.DB
}

func (s *Store) ListEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (s *Store) ListRegistrations(ctx context.Context) ([]models.Registration, error) {
	var regs []models.Registration
	if err := s.DB.WithContext(ctx).Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
