package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/coursebot/internal/models"
	courseRepo "github.com/KirkDiggler/coursebot/internal/repositories/course"
	courseService "github.com/KirkDiggler/coursebot/internal/services/course"
	guildService "github.com/KirkDiggler/coursebot/internal/services/guild"
	workshopService "github.com/KirkDiggler/coursebot/internal/services/workshop"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting message variants. Handlers run
	// concurrently and rand.Rand is not safe for concurrent use.
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	source := cfg.Source
	if source == nil {
		source = rand.NewSource(time.Now().UnixNano())
	}

	return &service{
		rand: rand.New(source),
	}, nil
}

// GetCourseCreatedMessage returns a message for a newly set up course
func (s *service) GetCourseCreatedMessage(ctx context.Context, input *GetCourseCreatedMessageInput) (*GetCourseCreatedMessageOutput, error) {
	if input == nil || input.Course == nil {
		return nil, errors.New("input and course cannot be nil")
	}

	course := input.Course
	titles := []string{
		"Course Created",
		"New Course Ready",
		"Course Is Open",
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Created course **%s** (%s).", course.FullName, course.Code)
	if input.CategoryName != "" {
		fmt.Fprintf(&sb, "\nCategory: %s with %d channels.", input.CategoryName, input.ChannelCount)
	}
	fmt.Fprintf(&sb, "\nStudents can join with `/join %s`.", course.Name)

	return &GetCourseCreatedMessageOutput{
		Title:   s.pick(titles),
		Message: sb.String(),
	}, nil
}

// GetCourseRemovedMessage returns a message for a course removal attempt
func (s *service) GetCourseRemovedMessage(ctx context.Context, input *GetCourseRemovedMessageInput) (*GetCourseRemovedMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Removed {
		return &GetCourseRemovedMessageOutput{
			Message: fmt.Sprintf("There is no course named **%s**, nothing was removed.", input.Name),
		}, nil
	}

	return &GetCourseRemovedMessageOutput{
		Message: fmt.Sprintf("Removed course **%s**.", input.Name),
	}, nil
}

// GetCourseListMessage renders the stored courses as a list
func (s *service) GetCourseListMessage(ctx context.Context, input *GetCourseListMessageInput) (*GetCourseListMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Courses) == 0 {
		return &GetCourseListMessageOutput{
			Message: "No courses have been created yet.",
		}, nil
	}

	var sb strings.Builder
	for i, course := range input.Courses {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s %s - %s", course.Visibility().Glyph(), course.Code, course.FullName)
	}

	return &GetCourseListMessageOutput{
		Message: sb.String(),
	}, nil
}

// GetCourseJoinedMessage welcomes a member to a course
func (s *service) GetCourseJoinedMessage(ctx context.Context, input *GetCourseJoinedMessageInput) (*GetCourseJoinedMessageOutput, error) {
	if input == nil || input.CourseName == "" {
		return nil, errors.New("input and course name cannot be empty")
	}

	name := input.UserName
	if name == "" {
		name = "there"
	}

	messages := []string{
		fmt.Sprintf("Welcome to **%s**, %s! The course channels are now visible to you.", input.CourseName, name),
		fmt.Sprintf("You're in, %s! Say hi in %s_general.", name, input.CourseName),
		fmt.Sprintf("%s joined **%s**. Check %s_announcement for the latest news.", name, input.CourseName, input.CourseName),
	}

	return &GetCourseJoinedMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetInvitationMessage returns the reply for an invitation request
func (s *service) GetInvitationMessage(ctx context.Context, input *GetInvitationMessageInput) (*GetInvitationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case !input.Posted:
		message = fmt.Sprintf("This server has no #%s channel, so no invitation was posted.", guildService.GuideChannelName)
	case input.InviteURL != "":
		message = fmt.Sprintf("Server invitation posted and pinned in #%s: %s", guildService.GuideChannelName, input.InviteURL)
	default:
		message = fmt.Sprintf("Invitation for **%s** posted and pinned in #%s.", input.Target, guildService.GuideChannelName)
	}

	return &GetInvitationMessageOutput{
		Message: message,
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	err := input.Err
	switch {
	case errors.Is(err, courseService.ErrCourseNotFound), errors.Is(err, courseRepo.ErrCourseNotFound), errors.Is(err, guildService.ErrRoleNotFound):
		return &GetErrorMessageOutput{
			Title:   "Course Not Found",
			Message: "I couldn't find that course. Check the name with `/course list`.",
		}, nil
	case errors.Is(err, courseRepo.ErrCourseAlreadyExists):
		return &GetErrorMessageOutput{
			Title:   "Course Exists",
			Message: "A course with that name already exists.",
		}, nil
	case errors.Is(err, courseService.ErrInvalidInput):
		return &GetErrorMessageOutput{
			Title:   "Missing Details",
			Message: "A course needs a code, a full name and a short name.",
		}, nil
	case errors.Is(err, models.ErrUnrecognizedCategory):
		return &GetErrorMessageOutput{
			Title:   "Unknown Category",
			Message: "That category doesn't belong to a course.",
		}, nil
	case errors.Is(err, guildService.ErrEmptyName), errors.Is(err, workshopService.ErrEmptyCourseCode):
		return &GetErrorMessageOutput{
			Title:   "Missing Name",
			Message: "Please give a name or course code.",
		}, nil
	}

	messages := []string{
		"Something went wrong talking to Discord or the database. Please try again.",
		"That didn't work out. Give it another try in a moment.",
		"I hit a snag doing that. Try again, and ping an admin if it keeps happening.",
	}

	return &GetErrorMessageOutput{
		Title:   "Error",
		Message: s.pick(messages),
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}
