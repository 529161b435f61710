package guild

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// DiscordConfig holds configuration for the Discord-backed guild repository
type DiscordConfig struct {
	// Session is usually a *discordgo.Session
	Session Session

	// GuildID is the guild whose roles and channels are managed
	GuildID string
}

// discordRepository implements the Repository interface against the Discord
// REST API. Roles and channels are fetched once and kept for the lifetime of
// the repository; creations made through it are appended to that cache.
type discordRepository struct {
	session Session
	guildID string

	mu       sync.Mutex
	roles    []*discordgo.Role
	channels []*discordgo.Channel
}

// NewDiscord creates a new Discord-backed guild repository
func NewDiscord(cfg *DiscordConfig) (*discordRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("discord session cannot be nil")
	}

	if cfg.GuildID == "" {
		return nil, errors.New("guild ID cannot be empty")
	}

	return &discordRepository{
		session: cfg.Session,
		guildID: cfg.GuildID,
	}, nil
}

// GetRoles returns the guild roles, fetching them on first use
func (r *discordRepository) GetRoles(ctx context.Context, input *GetRolesInput) ([]*discordgo.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.roles == nil {
		roles, err := r.session.GuildRoles(r.guildID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to get roles for guild %s: %w", r.guildID, err)
		}
		r.roles = roles
	}

	return append([]*discordgo.Role(nil), r.roles...), nil
}

// CreateRole creates a role in the guild
func (r *discordRepository) CreateRole(ctx context.Context, input *CreateRoleInput) (*discordgo.Role, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and role name cannot be empty")
	}

	role, err := r.session.GuildRoleCreate(r.guildID, &discordgo.RoleParams{
		Name: input.Name,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create role %s: %w", input.Name, err)
	}

	r.mu.Lock()
	if r.roles != nil {
		r.roles = append(r.roles, role)
	}
	r.mu.Unlock()

	return role, nil
}

// AddMemberRole grants a role to a member of the guild
func (r *discordRepository) AddMemberRole(ctx context.Context, input *AddMemberRoleInput) error {
	if input == nil || input.UserID == "" || input.RoleID == "" {
		return errors.New("input, user ID and role ID cannot be empty")
	}

	if err := r.session.GuildMemberRoleAdd(r.guildID, input.UserID, input.RoleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to add role %s to member %s: %w", input.RoleID, input.UserID, err)
	}

	return nil
}

// GetChannels returns the guild channels, fetching them on first use
func (r *discordRepository) GetChannels(ctx context.Context, input *GetChannelsInput) ([]*discordgo.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channels == nil {
		channels, err := r.session.GuildChannels(r.guildID, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to get channels for guild %s: %w", r.guildID, err)
		}
		r.channels = channels
	}

	return append([]*discordgo.Channel(nil), r.channels...), nil
}

// CreateChannel creates a channel in the guild
func (r *discordRepository) CreateChannel(ctx context.Context, input *CreateChannelInput) (*discordgo.Channel, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and channel name cannot be empty")
	}

	channel, err := r.session.GuildChannelCreateComplex(r.guildID, discordgo.GuildChannelCreateData{
		Name:                 input.Name,
		Type:                 input.Options.Type,
		Topic:                input.Options.Topic,
		ParentID:             input.Options.ParentID,
		PermissionOverwrites: input.Options.PermissionOverwrites,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create channel %s: %w", input.Name, err)
	}

	r.mu.Lock()
	if r.channels != nil {
		r.channels = append(r.channels, channel)
	}
	r.mu.Unlock()

	return channel, nil
}

// CreateInvite creates a unique invite for a channel
func (r *discordRepository) CreateInvite(ctx context.Context, input *CreateInviteInput) (*discordgo.Invite, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	invite, err := r.session.ChannelInviteCreate(input.ChannelID, discordgo.Invite{
		MaxAge: input.MaxAge,
		Unique: true,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to create invite for channel %s: %w", input.ChannelID, err)
	}

	return invite, nil
}

// SendMessage posts a text message to a channel
func (r *discordRepository) SendMessage(ctx context.Context, input *SendMessageInput) (*discordgo.Message, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	msg, err := r.session.ChannelMessageSend(input.ChannelID, input.Content, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to send message to channel %s: %w", input.ChannelID, err)
	}

	return msg, nil
}

// PinMessage pins a message in a channel
func (r *discordRepository) PinMessage(ctx context.Context, input *PinMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID and message ID cannot be empty")
	}

	if err := r.session.ChannelMessagePin(input.ChannelID, input.MessageID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to pin message %s: %w", input.MessageID, err)
	}

	return nil
}
