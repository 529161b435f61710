package guild

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/coursebot/internal/models"
	guildRepo "github.com/KirkDiggler/coursebot/internal/repositories/guild"
	"github.com/KirkDiggler/coursebot/internal/repositories/guild/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuildServiceTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *mocks.MockRepository
	service  Service
	ctx      context.Context

	guide            *discordgo.Channel
	testAnnouncement *discordgo.Channel
}

func (s *GuildServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = mocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	s.service = svc

	s.guide = &discordgo.Channel{ID: "guide-id", Name: "guide", Type: discordgo.ChannelTypeGuildText}
	s.testAnnouncement = &discordgo.Channel{ID: "announcement-id", Name: "test_announcement", Type: discordgo.ChannelTypeGuildText}
}

func (s *GuildServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuildServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GuildServiceTestSuite))
}

func (s *GuildServiceTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRepository)
}

// Roles

func (s *GuildServiceTestSuite) TestFindOrCreateRole_CreatesMissingRole() {
	s.mockRepo.EXPECT().
		GetRoles(gomock.Any(), &guildRepo.GetRolesInput{}).
		Return([]*discordgo.Role{{ID: "everyone-id", Name: "@everyone"}}, nil)
	s.mockRepo.EXPECT().
		CreateRole(gomock.Any(), &guildRepo.CreateRoleInput{Name: "test"}).
		Return(&discordgo.Role{ID: "role-id", Name: "test"}, nil).
		Times(1)

	output, err := s.service.FindOrCreateRole(s.ctx, &FindOrCreateRoleInput{Name: "test"})
	s.Require().NoError(err)
	s.True(output.Created)
	s.Equal("role-id", output.Role.ID)
}

func (s *GuildServiceTestSuite) TestFindOrCreateRole_ExistingRoleIsNotCreated() {
	existing := &discordgo.Role{ID: "role-id", Name: "test"}
	s.mockRepo.EXPECT().
		GetRoles(gomock.Any(), gomock.Any()).
		Return([]*discordgo.Role{existing}, nil)
	s.mockRepo.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Times(0)

	output, err := s.service.FindOrCreateRole(s.ctx, &FindOrCreateRoleInput{Name: "test"})
	s.Require().NoError(err)
	s.False(output.Created)
	s.Same(existing, output.Role)
}

func (s *GuildServiceTestSuite) TestFindOrCreateRole_CreateErrorPropagates() {
	expectedError := errors.New("missing permissions")
	s.mockRepo.EXPECT().GetRoles(gomock.Any(), gomock.Any()).Return(nil, nil)
	s.mockRepo.EXPECT().CreateRole(gomock.Any(), gomock.Any()).Return(nil, expectedError)

	output, err := s.service.FindOrCreateRole(s.ctx, &FindOrCreateRoleInput{Name: "test"})
	s.ErrorIs(err, expectedError)
	s.Nil(output)
}

func (s *GuildServiceTestSuite) TestFindOrCreateRole_InvalidInput() {
	_, err := s.service.FindOrCreateRole(s.ctx, nil)
	s.ErrorIs(err, ErrNilInput)

	_, err = s.service.FindOrCreateRole(s.ctx, &FindOrCreateRoleInput{})
	s.ErrorIs(err, ErrEmptyName)
}

// Channels

func (s *GuildServiceTestSuite) TestFindChannelWithNameAndType_NotFound() {
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{}, nil)

	output, err := s.service.FindChannelWithNameAndType(s.ctx, &FindChannelWithNameAndTypeInput{
		Name: "guide",
		Type: discordgo.ChannelTypeGuildText,
	})
	s.Require().NoError(err)
	s.Nil(output.Channel)
}

func (s *GuildServiceTestSuite) TestFindChannelWithNameAndType_MatchesNameAndType() {
	guideVoice := &discordgo.Channel{ID: "voice-id", Name: "guide", Type: discordgo.ChannelTypeGuildVoice}
	s.mockRepo.EXPECT().
		GetChannels(gomock.Any(), gomock.Any()).
		Return([]*discordgo.Channel{guideVoice, s.guide}, nil)

	output, err := s.service.FindChannelWithNameAndType(s.ctx, &FindChannelWithNameAndTypeInput{
		Name: "guide",
		Type: discordgo.ChannelTypeGuildText,
	})
	s.Require().NoError(err)
	s.Same(s.guide, output.Channel)
}

func (s *GuildServiceTestSuite) TestFindChannelWithID() {
	s.mockRepo.EXPECT().
		GetChannels(gomock.Any(), gomock.Any()).
		Return([]*discordgo.Channel{s.testAnnouncement, s.guide}, nil).
		Times(2)

	output, err := s.service.FindChannelWithID(s.ctx, &FindChannelWithIDInput{ChannelID: "guide-id"})
	s.Require().NoError(err)
	s.Equal("guide", output.Channel.Name)
	s.Equal(discordgo.ChannelTypeGuildText, output.Channel.Type)

	output, err = s.service.FindChannelWithID(s.ctx, &FindChannelWithIDInput{ChannelID: "missing"})
	s.Require().NoError(err)
	s.Nil(output.Channel)
}

func (s *GuildServiceTestSuite) TestFindOrCreateChannel_CreatesOnce() {
	input := &FindOrCreateChannelInput{
		Name:    "test",
		Options: guildRepo.ChannelOptions{Type: discordgo.ChannelTypeGuildText},
	}
	created := &discordgo.Channel{ID: "test-id", Name: "test", Type: discordgo.ChannelTypeGuildText}

	gomock.InOrder(
		s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{}, nil),
		s.mockRepo.EXPECT().
			CreateChannel(gomock.Any(), &guildRepo.CreateChannelInput{Name: input.Name, Options: input.Options}).
			Return(created, nil).
			Times(1),
		s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{created}, nil),
	)

	first, err := s.service.FindOrCreateChannel(s.ctx, input)
	s.Require().NoError(err)
	s.True(first.Created)

	second, err := s.service.FindOrCreateChannel(s.ctx, input)
	s.Require().NoError(err)
	s.False(second.Created)
	s.Same(created, second.Channel)
}

func (s *GuildServiceTestSuite) TestFindOrCreateChannel_GetChannelsError() {
	expectedError := errors.New("rate limited")
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return(nil, expectedError)

	_, err := s.service.FindOrCreateChannel(s.ctx, &FindOrCreateChannelInput{Name: "test"})
	s.ErrorIs(err, expectedError)
}

// Categories

func (s *GuildServiceTestSuite) TestFindCategoryWithCourseName_Public() {
	pubChan := &discordgo.Channel{ID: "1", Name: "📚 test", Type: discordgo.ChannelTypeGuildCategory}
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{pubChan}, nil)

	output, err := s.service.FindCategoryWithCourseName(s.ctx, &FindCategoryWithCourseNameInput{CourseName: "test"})
	s.Require().NoError(err)
	s.Equal("📚 test", output.Channel.Name)
}

func (s *GuildServiceTestSuite) TestFindCategoryWithCourseName_Private() {
	privChan := &discordgo.Channel{ID: "1", Name: "👻 test", Type: discordgo.ChannelTypeGuildCategory}
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{privChan}, nil)

	output, err := s.service.FindCategoryWithCourseName(s.ctx, &FindCategoryWithCourseNameInput{CourseName: "test"})
	s.Require().NoError(err)
	s.Equal("👻 test", output.Channel.Name)
}

func (s *GuildServiceTestSuite) TestFindCategoryWithCourseName_FirstMatchWins() {
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{
		{ID: "1", Name: "test", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "2", Name: "📚 test", Type: discordgo.ChannelTypeGuildText},
		{ID: "3", Name: "🔒 test", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "4", Name: "📚 test", Type: discordgo.ChannelTypeGuildCategory},
	}, nil)

	output, err := s.service.FindCategoryWithCourseName(s.ctx, &FindCategoryWithCourseNameInput{CourseName: "test"})
	s.Require().NoError(err)
	s.Equal("3", output.Channel.ID)
}

func (s *GuildServiceTestSuite) TestFindCategoryWithCourseName_NotFound() {
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{
		{ID: "1", Name: "📚 other", Type: discordgo.ChannelTypeGuildCategory},
	}, nil)

	output, err := s.service.FindCategoryWithCourseName(s.ctx, &FindCategoryWithCourseNameInput{CourseName: "test"})
	s.Require().NoError(err)
	s.Nil(output.Channel)
}

// Invitations

func (s *GuildServiceTestSuite) TestCreateInvitation_Guide() {
	msg := &discordgo.Message{ID: "msg-id", ChannelID: "guide-id"}
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{s.guide}, nil)
	s.mockRepo.EXPECT().
		CreateInvite(gomock.Any(), &guildRepo.CreateInviteInput{ChannelID: "guide-id"}).
		Return(&discordgo.Invite{Code: "abc123"}, nil).
		Times(1)
	s.mockRepo.EXPECT().
		SendMessage(gomock.Any(), &guildRepo.SendMessageInput{
			ChannelID: "guide-id",
			Content:   "Invitation link for the server https://discord.gg/abc123",
		}).
		Return(msg, nil)
	s.mockRepo.EXPECT().
		PinMessage(gomock.Any(), &guildRepo.PinMessageInput{ChannelID: "guide-id", MessageID: "msg-id"}).
		Return(nil).
		Times(1)

	output, err := s.service.CreateInvitation(s.ctx, &CreateInvitationInput{TargetChannelName: "guide"})
	s.Require().NoError(err)
	s.Equal("abc123", output.Invite.Code)
	s.Same(msg, output.Message)
}

func (s *GuildServiceTestSuite) TestCreateInvitation_NotGuide() {
	msg := &discordgo.Message{ID: "msg-id", ChannelID: "guide-id"}
	s.mockRepo.EXPECT().
		GetChannels(gomock.Any(), gomock.Any()).
		Return([]*discordgo.Channel{s.guide, s.testAnnouncement}, nil)
	s.mockRepo.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Times(0)
	s.mockRepo.EXPECT().
		SendMessage(gomock.Any(), &guildRepo.SendMessageInput{
			ChannelID: "guide-id",
			Content:   "Join the course **test** with the command `/join test`",
		}).
		Return(msg, nil)
	s.mockRepo.EXPECT().
		PinMessage(gomock.Any(), &guildRepo.PinMessageInput{ChannelID: "guide-id", MessageID: "msg-id"}).
		Return(nil).
		Times(1)

	output, err := s.service.CreateInvitation(s.ctx, &CreateInvitationInput{TargetChannelName: "test"})
	s.Require().NoError(err)
	s.Nil(output.Invite)
	s.Same(msg, output.Message)
}

func (s *GuildServiceTestSuite) TestCreateInvitation_NoGuideChannel() {
	s.mockRepo.EXPECT().
		GetChannels(gomock.Any(), gomock.Any()).
		Return([]*discordgo.Channel{s.testAnnouncement}, nil)

	output, err := s.service.CreateInvitation(s.ctx, &CreateInvitationInput{TargetChannelName: "guide"})
	s.Require().NoError(err)
	s.Nil(output.Message)
	s.Nil(output.Invite)
}

func (s *GuildServiceTestSuite) TestCreateInvitation_SendErrorPropagates() {
	expectedError := errors.New("cannot send")
	s.mockRepo.EXPECT().GetChannels(gomock.Any(), gomock.Any()).Return([]*discordgo.Channel{s.guide}, nil)
	s.mockRepo.EXPECT().SendMessage(gomock.Any(), gomock.Any()).Return(nil, expectedError)

	_, err := s.service.CreateInvitation(s.ctx, &CreateInvitationInput{TargetChannelName: "test"})
	s.ErrorIs(err, expectedError)
}

// In-memory guild

type GuildServiceMemoryTestSuite struct {
	suite.Suite
	repo    *guildRepo.Memory
	service Service
	ctx     context.Context
}

func (s *GuildServiceMemoryTestSuite) SetupTest() {
	s.repo = guildRepo.NewMemory(&guildRepo.MemoryConfig{
		Roles: []*discordgo.Role{{ID: "everyone-id", Name: "@everyone"}},
		Channels: []*discordgo.Channel{
			{ID: "guide-id", Name: "guide", Type: discordgo.ChannelTypeGuildText},
		},
	})

	svc, err := New(&Config{Repository: s.repo})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func TestGuildServiceMemoryTestSuite(t *testing.T) {
	suite.Run(t, new(GuildServiceMemoryTestSuite))
}

func (s *GuildServiceMemoryTestSuite) roleCount() int {
	roles, err := s.repo.GetRoles(s.ctx, &guildRepo.GetRolesInput{})
	s.Require().NoError(err)
	return len(roles)
}

func (s *GuildServiceMemoryTestSuite) TestFindOrCreateRole_Idempotent() {
	before := s.roleCount()

	first, err := s.service.FindOrCreateRole(s.ctx, &FindOrCreateRoleInput{Name: "test"})
	s.Require().NoError(err)
	s.True(first.Created)
	s.Equal(before+1, s.roleCount())

	second, err := s.service.FindOrCreateRole(s.ctx, &FindOrCreateRoleInput{Name: "test"})
	s.Require().NoError(err)
	s.False(second.Created)
	s.Equal(first.Role.ID, second.Role.ID)
	s.Equal(before+1, s.roleCount())
}

func (s *GuildServiceMemoryTestSuite) TestCreateInvitation_PinsOneMessage() {
	_, err := s.service.CreateInvitation(s.ctx, &CreateInvitationInput{TargetChannelName: "guide"})
	s.Require().NoError(err)
	s.Len(s.repo.Pinned("guide-id"), 1)
	s.Len(s.repo.Invites(), 1)

	_, err = s.service.CreateInvitation(s.ctx, &CreateInvitationInput{TargetChannelName: "test"})
	s.Require().NoError(err)
	s.Len(s.repo.Pinned("guide-id"), 2)
	s.Len(s.repo.Invites(), 1)
}

func (s *GuildServiceMemoryTestSuite) TestProvisionCourse_Public() {
	output, err := s.service.ProvisionCourse(s.ctx, &ProvisionCourseInput{CourseName: "test"})
	s.Require().NoError(err)

	s.Equal("test", output.Role.Name)
	s.Equal("📚 test", output.Category.Name)
	s.Equal(discordgo.ChannelTypeGuildCategory, output.Category.Type)
	s.Empty(output.Category.PermissionOverwrites)

	s.Require().Len(output.Channels, 3)
	s.Equal("test_announcement", output.Channels[0].Name)
	s.Equal("test_general", output.Channels[1].Name)
	s.Equal("test_voice", output.Channels[2].Name)
	s.Equal(discordgo.ChannelTypeGuildVoice, output.Channels[2].Type)
	for _, channel := range output.Channels {
		s.Equal(output.Category.ID, channel.ParentID)
	}
}

func (s *GuildServiceMemoryTestSuite) TestProvisionCourse_PrivateHidesCategory() {
	output, err := s.service.ProvisionCourse(s.ctx, &ProvisionCourseInput{
		CourseName: "test",
		Visibility: models.VisibilityPrivate,
	})
	s.Require().NoError(err)
	s.Equal("👻 test", output.Category.Name)

	s.Require().Len(output.Category.PermissionOverwrites, 2)
	s.Equal(output.Role.ID, output.Category.PermissionOverwrites[0].ID)
	s.Equal(int64(discordgo.PermissionViewChannel), output.Category.PermissionOverwrites[0].Allow)
	s.Equal("everyone-id", output.Category.PermissionOverwrites[1].ID)
	s.Equal(int64(discordgo.PermissionViewChannel), output.Category.PermissionOverwrites[1].Deny)
}

func (s *GuildServiceMemoryTestSuite) TestProvisionCourse_Idempotent() {
	first, err := s.service.ProvisionCourse(s.ctx, &ProvisionCourseInput{CourseName: "test"})
	s.Require().NoError(err)

	channelsBefore, err := s.repo.GetChannels(s.ctx, &guildRepo.GetChannelsInput{})
	s.Require().NoError(err)

	second, err := s.service.ProvisionCourse(s.ctx, &ProvisionCourseInput{CourseName: "test"})
	s.Require().NoError(err)

	channelsAfter, err := s.repo.GetChannels(s.ctx, &guildRepo.GetChannelsInput{})
	s.Require().NoError(err)

	s.Len(channelsAfter, len(channelsBefore))
	s.Equal(first.Category.ID, second.Category.ID)
	s.Equal(first.Role.ID, second.Role.ID)
}

func (s *GuildServiceMemoryTestSuite) TestJoinCourse() {
	provisioned, err := s.service.ProvisionCourse(s.ctx, &ProvisionCourseInput{CourseName: "test"})
	s.Require().NoError(err)

	output, err := s.service.JoinCourse(s.ctx, &JoinCourseInput{UserID: "user-1", CourseName: "test"})
	s.Require().NoError(err)
	s.Equal(provisioned.Role.ID, output.Role.ID)
	s.Equal([]string{provisioned.Role.ID}, s.repo.MemberRoles("user-1"))
}

func (s *GuildServiceMemoryTestSuite) TestJoinCourse_UnknownCourseCreatesNothing() {
	before := s.roleCount()

	_, err := s.service.JoinCourse(s.ctx, &JoinCourseInput{UserID: "user-1", CourseName: "missing"})
	s.ErrorIs(err, ErrRoleNotFound)
	s.Equal(before, s.roleCount())
	s.Empty(s.repo.MemberRoles("user-1"))

	_, err = s.service.JoinCourse(s.ctx, &JoinCourseInput{CourseName: "test"})
	s.ErrorIs(err, ErrEmptyUserID)
}

func (s *GuildServiceMemoryTestSuite) TestJoinCourse_RoleWithoutCourseCategory() {
	moderator, err := s.repo.CreateRole(s.ctx, &guildRepo.CreateRoleInput{Name: "Moderator"})
	s.Require().NoError(err)

	_, err = s.service.JoinCourse(s.ctx, &JoinCourseInput{UserID: "user-1", CourseName: moderator.Name})
	s.ErrorIs(err, ErrRoleNotFound)
	s.Empty(s.repo.MemberRoles("user-1"))
}

func (s *GuildServiceMemoryTestSuite) TestJoinCourse_ManagedRolesAreNotGranted() {
	repo := guildRepo.NewMemory(&guildRepo.MemoryConfig{
		Roles: []*discordgo.Role{
			{ID: "everyone-id", Name: "@everyone"},
			{ID: "bot-role", Name: "bots", Managed: true},
		},
		Channels: []*discordgo.Channel{
			{ID: "bots-category", Name: "📚 bots", Type: discordgo.ChannelTypeGuildCategory},
			{ID: "everyone-category", Name: "📚 @everyone", Type: discordgo.ChannelTypeGuildCategory},
		},
	})
	svc, err := New(&Config{Repository: repo})
	s.Require().NoError(err)

	_, err = svc.JoinCourse(s.ctx, &JoinCourseInput{UserID: "user-1", CourseName: "bots"})
	s.ErrorIs(err, ErrRoleNotFound)

	_, err = svc.JoinCourse(s.ctx, &JoinCourseInput{UserID: "user-1", CourseName: "@everyone"})
	s.ErrorIs(err, ErrRoleNotFound)

	s.Empty(repo.MemberRoles("user-1"))
}
