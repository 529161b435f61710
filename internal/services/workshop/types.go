package workshop

import (
	"log/slog"
	"time"

	workshopClient "github.com/KirkDiggler/coursebot/internal/clients/workshop"
)

// NoWorkshopsMessage is returned when a course has no scheduled sessions
const NoWorkshopsMessage = "No workshops for this course. Please contact the course admin."

// Config holds configuration for the workshop service
type Config struct {
	// Client fetches the raw session list
	Client workshopClient.Client

	// Location is the zone RFC 3339 session dates are rendered in. Defaults to UTC.
	Location *time.Location

	Logger *slog.Logger
}

type GetWorkshopInfoInput struct {
	CourseCode string
}

type GetWorkshopInfoOutput struct {
	Message string

	// SessionCount is the number of sessions rendered into Message
	SessionCount int
}
