package guild

import (
	"github.com/KirkDiggler/coursebot/internal/models"
	guildRepo "github.com/KirkDiggler/coursebot/internal/repositories/guild"
	"github.com/bwmarrin/discordgo"
)

// GuideChannelName is the text channel that carries server invitations
const GuideChannelName = "guide"

const everyoneRoleName = "@everyone"

// FindOrCreateRoleInput contains parameters for finding or creating a role
type FindOrCreateRoleInput struct {
	Name string
}

// FindOrCreateRoleOutput contains the role and whether it was created
type FindOrCreateRoleOutput struct {
	Role    *discordgo.Role
	Created bool
}

// FindChannelWithNameAndTypeInput contains parameters for a name and type lookup
type FindChannelWithNameAndTypeInput struct {
	Name string
	Type discordgo.ChannelType
}

// FindChannelWithIDInput contains parameters for an ID lookup
type FindChannelWithIDInput struct {
	ChannelID string
}

// FindChannelOutput holds a lookup result; Channel is nil when nothing matched
type FindChannelOutput struct {
	Channel *discordgo.Channel
}

// FindOrCreateChannelInput describes the channel to find or create
type FindOrCreateChannelInput struct {
	Name    string
	Options guildRepo.ChannelOptions
}

// FindOrCreateChannelOutput contains the channel and whether it was created
type FindOrCreateChannelOutput struct {
	Channel *discordgo.Channel
	Created bool
}

// FindCategoryWithCourseNameInput contains parameters for a category lookup
type FindCategoryWithCourseNameInput struct {
	CourseName string
}

// CreateInvitationInput contains parameters for creating an invitation
type CreateInvitationInput struct {
	// TargetChannelName is either the guide channel or a course name
	TargetChannelName string
}

// CreateInvitationOutput contains the invitation that was posted.
// Message is nil when the guild has no guide channel.
type CreateInvitationOutput struct {
	Invite  *discordgo.Invite
	Message *discordgo.Message
}

// ProvisionCourseInput contains parameters for setting up a course
type ProvisionCourseInput struct {
	CourseName string
	Visibility models.Visibility
}

// ProvisionCourseOutput contains the guild resources of a course
type ProvisionCourseOutput struct {
	Role     *discordgo.Role
	Category *discordgo.Channel
	Channels []*discordgo.Channel
}

// JoinCourseInput contains parameters for joining a course
type JoinCourseInput struct {
	UserID     string
	CourseName string
}

// JoinCourseOutput contains the role granted to the member
type JoinCourseOutput struct {
	Role *discordgo.Role
}
