package workshop

//go:generate mockgen -package=mocks -destination=mocks/mock_client.go github.com/KirkDiggler/coursebot/internal/clients/workshop Client

import (
	"context"

	"github.com/KirkDiggler/coursebot/internal/models"
)

// Client fetches workshop schedules from the workshop API
type Client interface {
	// GetSessions returns the sessions of a course in the order the API lists them
	GetSessions(ctx context.Context, input *GetSessionsInput) (*GetSessionsOutput, error)
}

type GetSessionsInput struct {
	CourseCode string
}

type GetSessionsOutput struct {
	Sessions []*models.WorkshopSession
}
