package workshop

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	workshopClient "github.com/KirkDiggler/coursebot/internal/clients/workshop"
	"github.com/KirkDiggler/coursebot/internal/models"
)

const (
	dateLayout    = "2006-01-02"
	headingLayout = "Monday, January 2, 2006"
	indent        = "      "
)

// service implements the Service interface
type service struct {
	client   workshopClient.Client
	location *time.Location
	logger   *slog.Logger
}

// New creates a new workshop service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Client == nil {
		return nil, ErrNilClient
	}

	location := cfg.Location
	if location == nil {
		location = time.UTC
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		client:   cfg.Client,
		location: location,
		logger:   logger,
	}, nil
}

// GetWorkshopInfo fetches the sessions once and renders them in the order received
func (s *service) GetWorkshopInfo(ctx context.Context, input *GetWorkshopInfoInput) (*GetWorkshopInfoOutput, error) {
	if input == nil || input.CourseCode == "" {
		return nil, ErrEmptyCourseCode
	}

	result, err := s.client.GetSessions(ctx, &workshopClient.GetSessionsInput{
		CourseCode: input.CourseCode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get workshop sessions: %w", err)
	}

	var sb strings.Builder
	count := 0
	for _, session := range result.Sessions {
		if session == nil {
			s.logger.Warn("skipping empty workshop session", "course_code", input.CourseCode)
			continue
		}
		s.writeSession(&sb, session)
		count++
	}

	if count == 0 {
		return &GetWorkshopInfoOutput{
			Message: NoWorkshopsMessage,
		}, nil
	}

	return &GetWorkshopInfoOutput{
		Message:      sb.String(),
		SessionCount: count,
	}, nil
}

func (s *service) writeSession(sb *strings.Builder, session *models.WorkshopSession) {
	fmt.Fprintf(sb, "**%s**\n", s.heading(session.Date))
	fmt.Fprintf(sb, "%sBetween: %s - %s\n", indent, session.StartTime, session.EndTime)
	fmt.Fprintf(sb, "%sLocation: %s\n", indent, session.Location)
	fmt.Fprintf(sb, "%sInstructor: %s\n", indent, session.Instructor)
	sb.WriteString(indent)
	if session.HasDescription() {
		fmt.Fprintf(sb, "Description: %s", session.Description)
	}
	sb.WriteString("\n")
}

// heading renders a session date as "Weekday, Month D, YYYY". Dates that
// parse as neither layout are shown as given.
func (s *service) heading(date string) string {
	if t, err := time.ParseInLocation(dateLayout, date, s.location); err == nil {
		return t.Format(headingLayout)
	}

	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.In(s.location).Format(headingLayout)
	}

	s.logger.Warn("unparseable workshop date", "date", date)
	return date
}
