package guild

import "github.com/bwmarrin/discordgo"

type GetRolesInput struct {
}

type CreateRoleInput struct {
	Name string
}

type AddMemberRoleInput struct {
	UserID string
	RoleID string
}

type GetChannelsInput struct {
}

// ChannelOptions holds the creation options of a channel besides its name
type ChannelOptions struct {
	Type                 discordgo.ChannelType
	Topic                string
	ParentID             string
	PermissionOverwrites []*discordgo.PermissionOverwrite
}

type CreateChannelInput struct {
	Name    string
	Options ChannelOptions
}

type CreateInviteInput struct {
	ChannelID string

	// MaxAge in seconds; zero never expires
	MaxAge int
}

type SendMessageInput struct {
	ChannelID string
	Content   string
}

type PinMessageInput struct {
	ChannelID string
	MessageID string
}
