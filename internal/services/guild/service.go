package guild

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/coursebot/internal/models"
	guildRepo "github.com/KirkDiggler/coursebot/internal/repositories/guild"
	"github.com/bwmarrin/discordgo"
)

// Config holds configuration for the guild service
type Config struct {
	// Repository is the guild whose resources are managed
	Repository guildRepo.Repository

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// service implements the Service interface
type service struct {
	repo   guildRepo.Repository
	logger *slog.Logger
}

// New creates a new guild service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Repository == nil {
		return nil, ErrNilRepository
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		repo:   cfg.Repository,
		logger: logger,
	}, nil
}

// FindOrCreateRole returns the role with the given name, creating it if absent
func (s *service) FindOrCreateRole(ctx context.Context, input *FindOrCreateRoleInput) (*FindOrCreateRoleOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	roles, err := s.repo.GetRoles(ctx, &guildRepo.GetRolesInput{})
	if err != nil {
		return nil, err
	}

	for _, role := range roles {
		if role.Name == input.Name {
			return &FindOrCreateRoleOutput{Role: role}, nil
		}
	}

	role, err := s.repo.CreateRole(ctx, &guildRepo.CreateRoleInput{
		Name: input.Name,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created role", "role", role.Name, "role_id", role.ID)

	return &FindOrCreateRoleOutput{
		Role:    role,
		Created: true,
	}, nil
}

// FindChannelWithNameAndType looks up a channel by exact name and type
func (s *service) FindChannelWithNameAndType(ctx context.Context, input *FindChannelWithNameAndTypeInput) (*FindChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	channel, err := s.findChannel(ctx, func(c *discordgo.Channel) bool {
		return c.Name == input.Name && c.Type == input.Type
	})
	if err != nil {
		return nil, err
	}

	return &FindChannelOutput{Channel: channel}, nil
}

// FindChannelWithID looks up a channel by ID
func (s *service) FindChannelWithID(ctx context.Context, input *FindChannelWithIDInput) (*FindChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	channel, err := s.findChannel(ctx, func(c *discordgo.Channel) bool {
		return c.ID == input.ChannelID
	})
	if err != nil {
		return nil, err
	}

	return &FindChannelOutput{Channel: channel}, nil
}

// FindOrCreateChannel returns the channel with the given name and type, creating it if absent
func (s *service) FindOrCreateChannel(ctx context.Context, input *FindOrCreateChannelInput) (*FindOrCreateChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	found, err := s.FindChannelWithNameAndType(ctx, &FindChannelWithNameAndTypeInput{
		Name: input.Name,
		Type: input.Options.Type,
	})
	if err != nil {
		return nil, err
	}
	if found.Channel != nil {
		return &FindOrCreateChannelOutput{Channel: found.Channel}, nil
	}

	channel, err := s.repo.CreateChannel(ctx, &guildRepo.CreateChannelInput{
		Name:    input.Name,
		Options: input.Options,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("created channel", "channel", channel.Name, "channel_id", channel.ID, "type", channel.Type)

	return &FindOrCreateChannelOutput{
		Channel: channel,
		Created: true,
	}, nil
}

// FindCategoryWithCourseName finds the category of a course. When both a
// public and a private category exist, the first one in guild order wins.
func (s *service) FindCategoryWithCourseName(ctx context.Context, input *FindCategoryWithCourseNameInput) (*FindChannelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	channel, err := s.findChannel(ctx, func(c *discordgo.Channel) bool {
		if c.Type != discordgo.ChannelTypeGuildCategory {
			return false
		}
		courseName, err := CourseNameFromChannel(c)
		return err == nil && courseName == input.CourseName
	})
	if err != nil {
		return nil, err
	}

	return &FindChannelOutput{Channel: channel}, nil
}

// CreateInvitation posts and pins an invitation on the guide channel. Only
// an invitation to the guide channel itself creates a Discord invite; other
// targets get a message pointing at the join command.
func (s *service) CreateInvitation(ctx context.Context, input *CreateInvitationInput) (*CreateInvitationOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	found, err := s.FindChannelWithNameAndType(ctx, &FindChannelWithNameAndTypeInput{
		Name: GuideChannelName,
		Type: discordgo.ChannelTypeGuildText,
	})
	if err != nil {
		return nil, err
	}

	guide := found.Channel
	if guide == nil {
		s.logger.Warn("no guide channel, skipping invitation", "target", input.TargetChannelName)
		return &CreateInvitationOutput{}, nil
	}

	output := &CreateInvitationOutput{}
	var content string
	if input.TargetChannelName == GuideChannelName {
		invite, err := s.repo.CreateInvite(ctx, &guildRepo.CreateInviteInput{
			ChannelID: guide.ID,
		})
		if err != nil {
			return nil, err
		}
		output.Invite = invite
		content = fmt.Sprintf("Invitation link for the server %s", InviteURL(invite))
	} else {
		content = fmt.Sprintf("Join the course **%s** with the command `/join %s`", input.TargetChannelName, input.TargetChannelName)
	}

	msg, err := s.repo.SendMessage(ctx, &guildRepo.SendMessageInput{
		ChannelID: guide.ID,
		Content:   content,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.PinMessage(ctx, &guildRepo.PinMessageInput{
		ChannelID: guide.ID,
		MessageID: msg.ID,
	}); err != nil {
		return nil, err
	}

	output.Message = msg
	return output, nil
}

// JoinCourse grants the course role to a member. The role is never created here.
func (s *service) JoinCourse(ctx context.Context, input *JoinCourseInput) (*JoinCourseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.CourseName == "" {
		return nil, ErrEmptyName
	}
	if input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	// Only roles backed by a course category can be joined
	category, err := s.FindCategoryWithCourseName(ctx, &FindCategoryWithCourseNameInput{
		CourseName: input.CourseName,
	})
	if err != nil {
		return nil, err
	}
	if category.Channel == nil {
		return nil, ErrRoleNotFound
	}

	roles, err := s.repo.GetRoles(ctx, &guildRepo.GetRolesInput{})
	if err != nil {
		return nil, err
	}

	var courseRole *discordgo.Role
	for _, role := range roles {
		if role.Name == input.CourseName && isAssignable(role) {
			courseRole = role
			break
		}
	}
	if courseRole == nil {
		return nil, ErrRoleNotFound
	}

	if err := s.repo.AddMemberRole(ctx, &guildRepo.AddMemberRoleInput{
		UserID: input.UserID,
		RoleID: courseRole.ID,
	}); err != nil {
		return nil, err
	}

	s.logger.Info("member joined course", "course", input.CourseName, "user_id", input.UserID)

	return &JoinCourseOutput{Role: courseRole}, nil
}

// ProvisionCourse creates whatever is missing of the course role, the course
// category and the announcement, general and voice channels inside it
func (s *service) ProvisionCourse(ctx context.Context, input *ProvisionCourseInput) (*ProvisionCourseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}
	if input.CourseName == "" {
		return nil, ErrEmptyName
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = models.VisibilityPublic
	}

	roleOutput, err := s.FindOrCreateRole(ctx, &FindOrCreateRoleInput{
		Name: input.CourseName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set up course role: %w", err)
	}

	categoryOutput, err := s.FindCategoryWithCourseName(ctx, &FindCategoryWithCourseNameInput{
		CourseName: input.CourseName,
	})
	if err != nil {
		return nil, err
	}

	category := categoryOutput.Channel
	if category == nil {
		overwrites, err := s.categoryOverwrites(ctx, visibility, roleOutput.Role)
		if err != nil {
			return nil, err
		}

		created, err := s.FindOrCreateChannel(ctx, &FindOrCreateChannelInput{
			Name: models.CategoryName(input.CourseName, visibility),
			Options: guildRepo.ChannelOptions{
				Type:                 discordgo.ChannelTypeGuildCategory,
				PermissionOverwrites: overwrites,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set up course category: %w", err)
		}
		category = created.Channel
	}

	output := &ProvisionCourseOutput{
		Role:     roleOutput.Role,
		Category: category,
	}

	for _, cc := range courseChannels(input.CourseName) {
		channelOutput, err := s.FindOrCreateChannel(ctx, &FindOrCreateChannelInput{
			Name: cc.name,
			Options: guildRepo.ChannelOptions{
				Type:     cc.channelType,
				Topic:    cc.topic,
				ParentID: category.ID,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set up channel %s: %w", cc.name, err)
		}
		output.Channels = append(output.Channels, channelOutput.Channel)
	}

	return output, nil
}

type courseChannel struct {
	name        string
	channelType discordgo.ChannelType
	topic       string
}

func courseChannels(courseName string) []courseChannel {
	return []courseChannel{
		{courseName + "_announcement", discordgo.ChannelTypeGuildText, "Announcements of " + courseName},
		{courseName + "_general", discordgo.ChannelTypeGuildText, "General discussion of " + courseName},
		{courseName + "_voice", discordgo.ChannelTypeGuildVoice, ""},
	}
}

// categoryOverwrites hides private categories from @everyone and shows them to the course role
func (s *service) categoryOverwrites(ctx context.Context, visibility models.Visibility, courseRole *discordgo.Role) ([]*discordgo.PermissionOverwrite, error) {
	if !visibility.IsPrivate() {
		return nil, nil
	}

	roles, err := s.repo.GetRoles(ctx, &guildRepo.GetRolesInput{})
	if err != nil {
		return nil, err
	}

	overwrites := []*discordgo.PermissionOverwrite{{
		ID:    courseRole.ID,
		Type:  discordgo.PermissionOverwriteTypeRole,
		Allow: discordgo.PermissionViewChannel,
	}}
	for _, role := range roles {
		if role.Name == "@everyone" {
			overwrites = append(overwrites, &discordgo.PermissionOverwrite{
				ID:   role.ID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			})
			break
		}
	}

	return overwrites, nil
}

func (s *service) findChannel(ctx context.Context, match func(*discordgo.Channel) bool) (*discordgo.Channel, error) {
	channels, err := s.repo.GetChannels(ctx, &guildRepo.GetChannelsInput{})
	if err != nil {
		return nil, err
	}

	for _, channel := range channels {
		if match(channel) {
			return channel, nil
		}
	}

	return nil, nil
}

// isAssignable reports whether members may be given the role. Integration
// roles and @everyone are managed by Discord.
func isAssignable(role *discordgo.Role) bool {
	return !role.Managed && role.Name != everyoneRoleName
}
