package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetCourseCreatedMessage returns a message for a newly set up course
	GetCourseCreatedMessage(ctx context.Context, input *GetCourseCreatedMessageInput) (*GetCourseCreatedMessageOutput, error)

	// GetCourseRemovedMessage returns a message for a course removal attempt
	GetCourseRemovedMessage(ctx context.Context, input *GetCourseRemovedMessageInput) (*GetCourseRemovedMessageOutput, error)

	// GetCourseListMessage renders the stored courses as a list
	GetCourseListMessage(ctx context.Context, input *GetCourseListMessageInput) (*GetCourseListMessageOutput, error)

	// GetCourseJoinedMessage welcomes a member to a course
	GetCourseJoinedMessage(ctx context.Context, input *GetCourseJoinedMessageInput) (*GetCourseJoinedMessageOutput, error)

	// GetInvitationMessage returns the reply for an invitation request
	GetInvitationMessage(ctx context.Context, input *GetInvitationMessageInput) (*GetInvitationMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
