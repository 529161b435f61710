package guild

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/coursebot/internal/repositories/guild Repository
//go:generate mockgen -package=mocks -destination=mocks/mock_session.go github.com/KirkDiggler/coursebot/internal/repositories/guild Session

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// RoleStore is the role collection of a single guild
type RoleStore interface {
	// GetRoles returns every role in the guild
	GetRoles(ctx context.Context, input *GetRolesInput) ([]*discordgo.Role, error)

	// CreateRole creates a role and adds it to the collection
	CreateRole(ctx context.Context, input *CreateRoleInput) (*discordgo.Role, error)

	// AddMemberRole grants a role to a guild member
	AddMemberRole(ctx context.Context, input *AddMemberRoleInput) error
}

// ChannelStore is the channel collection of a single guild
type ChannelStore interface {
	// GetChannels returns every channel in the guild, categories included
	GetChannels(ctx context.Context, input *GetChannelsInput) ([]*discordgo.Channel, error)

	// CreateChannel creates a channel and adds it to the collection
	CreateChannel(ctx context.Context, input *CreateChannelInput) (*discordgo.Channel, error)

	// CreateInvite creates an invite pointing at a channel
	CreateInvite(ctx context.Context, input *CreateInviteInput) (*discordgo.Invite, error)

	// SendMessage posts a message to a channel
	SendMessage(ctx context.Context, input *SendMessageInput) (*discordgo.Message, error)

	// PinMessage pins a message in its channel
	PinMessage(ctx context.Context, input *PinMessageInput) error
}

// Repository exposes the roles and channels of one guild
type Repository interface {
	RoleStore
	ChannelStore
}

// Session is the subset of *discordgo.Session the Discord repository calls
type Session interface {
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelInviteCreate(channelID string, i discordgo.Invite, options ...discordgo.RequestOption) (*discordgo.Invite, error)
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessagePin(channelID, messageID string, options ...discordgo.RequestOption) error
}
