package messaging

import (
	"math/rand"

	"github.com/KirkDiggler/coursebot/internal/models"
)

// Config contains configuration for the messaging service
type Config struct {
	// Source picks between message variants. Seeded from the clock when nil.
	Source rand.Source
}

// GetCourseCreatedMessageInput contains parameters for a course created message
type GetCourseCreatedMessageInput struct {
	Course *models.Course

	// CategoryName is the display name of the course category
	CategoryName string

	// ChannelCount is the number of course channels that now exist
	ChannelCount int
}

// GetCourseCreatedMessageOutput contains a course created message
type GetCourseCreatedMessageOutput struct {
	Title   string
	Message string
}

// GetCourseRemovedMessageInput contains parameters for a course removed message
type GetCourseRemovedMessageInput struct {
	Name    string
	Removed bool
}

// GetCourseRemovedMessageOutput contains a course removed message
type GetCourseRemovedMessageOutput struct {
	Message string
}

// GetCourseListMessageInput contains the courses to list
type GetCourseListMessageInput struct {
	Courses []*models.Course
}

// GetCourseListMessageOutput contains the rendered course list
type GetCourseListMessageOutput struct {
	Message string
}

// GetCourseJoinedMessageInput contains parameters for a course joined message
type GetCourseJoinedMessageInput struct {
	UserName   string
	CourseName string
}

// GetCourseJoinedMessageOutput contains a course joined message
type GetCourseJoinedMessageOutput struct {
	Message string
}

// GetInvitationMessageInput contains parameters for an invitation reply
type GetInvitationMessageInput struct {
	Target string

	// Posted is false when the guild has no guide channel
	Posted bool

	// InviteURL is set when a server invite was created
	InviteURL string
}

// GetInvitationMessageOutput contains an invitation reply
type GetInvitationMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains the error to describe
type GetErrorMessageInput struct {
	Err error
}

// GetErrorMessageOutput contains a user-facing description of an error
type GetErrorMessageOutput struct {
	Title   string
	Message string
}
