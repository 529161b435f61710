package workshop

import (
	"context"
)

// Service renders workshop schedules for display in Discord
type Service interface {
	// GetWorkshopInfo fetches the sessions of a course and formats them as a message
	GetWorkshopInfo(ctx context.Context, input *GetWorkshopInfoInput) (*GetWorkshopInfoOutput, error)
}
