package course

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/coursebot/internal/repositories/course Repository

import (
	"context"

	"github.com/KirkDiggler/coursebot/internal/models"
)

// Repository defines the interface for course record persistence
type Repository interface {
	// FindOne retrieves a course by its short name
	FindOne(ctx context.Context, input *FindOneInput) (*models.Course, error)

	// Create persists a new course
	Create(ctx context.Context, input *CreateInput) error

	// Destroy removes a course by its short name
	Destroy(ctx context.Context, input *DestroyInput) error

	// FindAll retrieves every course ordered by code
	FindAll(ctx context.Context, input *FindAllInput) (*FindAllOutput, error)
}
