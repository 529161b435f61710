package guild

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// MemoryConfig seeds an in-memory guild
type MemoryConfig struct {
	GuildID  string
	Roles    []*discordgo.Role
	Channels []*discordgo.Channel
}

// Memory is a Repository holding a guild entirely in memory. It backs
// dry runs and tests; every instance owns its own collections.
type Memory struct {
	guildID string

	mu       sync.Mutex
	nextID   int
	roles    []*discordgo.Role
	channels []*discordgo.Channel
	messages map[string][]*discordgo.Message
	pinned   map[string][]string
	invites  []*discordgo.Invite
	members  map[string][]string
}

// NewMemory creates an in-memory guild seeded from cfg
func NewMemory(cfg *MemoryConfig) *Memory {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}

	guildID := cfg.GuildID
	if guildID == "" {
		guildID = "memory-guild"
	}

	return &Memory{
		guildID:  guildID,
		roles:    append([]*discordgo.Role(nil), cfg.Roles...),
		channels: append([]*discordgo.Channel(nil), cfg.Channels...),
		messages: make(map[string][]*discordgo.Message),
		pinned:   make(map[string][]string),
		members:  make(map[string][]string),
	}
}

func (m *Memory) newID() string {
	m.nextID++
	return strconv.Itoa(m.nextID)
}

func (m *Memory) GetRoles(ctx context.Context, input *GetRolesInput) ([]*discordgo.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*discordgo.Role(nil), m.roles...), nil
}

func (m *Memory) CreateRole(ctx context.Context, input *CreateRoleInput) (*discordgo.Role, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and role name cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	role := &discordgo.Role{
		ID:   m.newID(),
		Name: input.Name,
	}
	m.roles = append(m.roles, role)
	return role, nil
}

func (m *Memory) AddMemberRole(ctx context.Context, input *AddMemberRoleInput) error {
	if input == nil || input.UserID == "" || input.RoleID == "" {
		return errors.New("input, user ID and role ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	known := false
	for _, role := range m.roles {
		if role.ID == input.RoleID {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unknown role %s", input.RoleID)
	}

	for _, id := range m.members[input.UserID] {
		if id == input.RoleID {
			return nil
		}
	}
	m.members[input.UserID] = append(m.members[input.UserID], input.RoleID)
	return nil
}

func (m *Memory) GetChannels(ctx context.Context, input *GetChannelsInput) ([]*discordgo.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*discordgo.Channel(nil), m.channels...), nil
}

func (m *Memory) CreateChannel(ctx context.Context, input *CreateChannelInput) (*discordgo.Channel, error) {
	if input == nil || input.Name == "" {
		return nil, errors.New("input and channel name cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	channel := &discordgo.Channel{
		ID:                   m.newID(),
		GuildID:              m.guildID,
		Name:                 input.Name,
		Type:                 input.Options.Type,
		Topic:                input.Options.Topic,
		ParentID:             input.Options.ParentID,
		PermissionOverwrites: input.Options.PermissionOverwrites,
	}
	m.channels = append(m.channels, channel)
	return channel, nil
}

func (m *Memory) findChannel(id string) *discordgo.Channel {
	for _, c := range m.channels {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (m *Memory) CreateInvite(ctx context.Context, input *CreateInviteInput) (*discordgo.Invite, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	channel := m.findChannel(input.ChannelID)
	if channel == nil {
		return nil, fmt.Errorf("unknown channel %s", input.ChannelID)
	}

	invite := &discordgo.Invite{
		Code:    "invite" + m.newID(),
		Channel: channel,
		MaxAge:  input.MaxAge,
		Unique:  true,
	}
	m.invites = append(m.invites, invite)
	return invite, nil
}

func (m *Memory) SendMessage(ctx context.Context, input *SendMessageInput) (*discordgo.Message, error) {
	if input == nil || input.ChannelID == "" {
		return nil, errors.New("input and channel ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findChannel(input.ChannelID) == nil {
		return nil, fmt.Errorf("unknown channel %s", input.ChannelID)
	}

	msg := &discordgo.Message{
		ID:        m.newID(),
		ChannelID: input.ChannelID,
		GuildID:   m.guildID,
		Content:   input.Content,
	}
	m.messages[input.ChannelID] = append(m.messages[input.ChannelID], msg)
	return msg, nil
}

func (m *Memory) PinMessage(ctx context.Context, input *PinMessageInput) error {
	if input == nil || input.ChannelID == "" || input.MessageID == "" {
		return errors.New("input, channel ID and message ID cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, msg := range m.messages[input.ChannelID] {
		if msg.ID == input.MessageID {
			msg.Pinned = true
			m.pinned[input.ChannelID] = append(m.pinned[input.ChannelID], msg.ID)
			return nil
		}
	}
	return fmt.Errorf("unknown message %s in channel %s", input.MessageID, input.ChannelID)
}

// Messages returns the messages sent to a channel in order
func (m *Memory) Messages(channelID string) []*discordgo.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*discordgo.Message(nil), m.messages[channelID]...)
}

// Pinned returns the IDs of the messages pinned in a channel
func (m *Memory) Pinned(channelID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.pinned[channelID]...)
}

// Invites returns every invite created
func (m *Memory) Invites() []*discordgo.Invite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*discordgo.Invite(nil), m.invites...)
}

// MemberRoles returns the IDs of the roles granted to a member
func (m *Memory) MemberRoles(userID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.members[userID]...)
}
