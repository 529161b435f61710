package guild

import "context"

// Service defines find-or-create operations over the resources of one guild
type Service interface {
	// FindOrCreateRole returns the role with the given name, creating it if absent
	FindOrCreateRole(ctx context.Context, input *FindOrCreateRoleInput) (*FindOrCreateRoleOutput, error)

	// FindChannelWithNameAndType looks up a channel by exact name and type
	FindChannelWithNameAndType(ctx context.Context, input *FindChannelWithNameAndTypeInput) (*FindChannelOutput, error)

	// FindChannelWithID looks up a channel by ID
	FindChannelWithID(ctx context.Context, input *FindChannelWithIDInput) (*FindChannelOutput, error)

	// FindOrCreateChannel returns the channel with the given name and type, creating it if absent
	FindOrCreateChannel(ctx context.Context, input *FindOrCreateChannelInput) (*FindOrCreateChannelOutput, error)

	// FindCategoryWithCourseName finds the category of a course, public or private
	FindCategoryWithCourseName(ctx context.Context, input *FindCategoryWithCourseNameInput) (*FindChannelOutput, error)

	// CreateInvitation posts and pins an invitation message on the guide channel
	CreateInvitation(ctx context.Context, input *CreateInvitationInput) (*CreateInvitationOutput, error)

	// JoinCourse grants a member the role of an existing course
	JoinCourse(ctx context.Context, input *JoinCourseInput) (*JoinCourseOutput, error)

	// ProvisionCourse creates the role, category and channels of a course
	ProvisionCourse(ctx context.Context, input *ProvisionCourseInput) (*ProvisionCourseOutput, error)
}
