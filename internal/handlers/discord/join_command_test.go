package discord

import (
	"context"
	"testing"

	clockMocks "github.com/KirkDiggler/coursebot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/coursebot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/coursebot/internal/models"
	courseRepo "github.com/KirkDiggler/coursebot/internal/repositories/course"
	courseMocks "github.com/KirkDiggler/coursebot/internal/repositories/course/mocks"
	guildRepo "github.com/KirkDiggler/coursebot/internal/repositories/guild"
	"github.com/KirkDiggler/coursebot/internal/services/course"
	"github.com/KirkDiggler/coursebot/internal/services/guild"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JoinCommandTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockCourseRepo *courseMocks.MockRepository
	guild          *guildRepo.Memory
	command        *JoinCommand
	ctx            context.Context
}

func (s *JoinCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCourseRepo = courseMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	courseService, err := course.New(&course.Config{
		CourseRepo:    s.mockCourseRepo,
		Clock:         clockMocks.NewMockClock(s.mockCtrl),
		UUIDGenerator: uuidMocks.NewMockUUID(s.mockCtrl),
	})
	s.Require().NoError(err)

	s.guild = guildRepo.NewMemory(&guildRepo.MemoryConfig{
		GuildID: "guild-1",
		Roles: []*discordgo.Role{
			{ID: "everyone-id", Name: "@everyone"},
			{ID: "moderator-id", Name: "Moderator"},
		},
		Channels: []*discordgo.Channel{
			{ID: "moderator-category", Name: "📚 Moderator", Type: discordgo.ChannelTypeGuildCategory},
		},
	})

	s.command = NewJoinCommand(&JoinCommandConfig{
		CourseService: courseService,
		GuildServices: func(guildID string) (guild.Service, error) {
			return guild.New(&guild.Config{Repository: s.guild})
		},
	})
}

func (s *JoinCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJoinCommandTestSuite(t *testing.T) {
	suite.Run(t, new(JoinCommandTestSuite))
}

func (s *JoinCommandTestSuite) TestJoin_RoleWithoutCourseRecord() {
	s.mockCourseRepo.EXPECT().
		FindOne(gomock.Any(), &courseRepo.FindOneInput{Name: "Moderator"}).
		Return(nil, courseRepo.ErrCourseNotFound)

	_, err := s.command.join(s.ctx, "guild-1", "user-1", "Moderator")
	s.ErrorIs(err, course.ErrCourseNotFound)
	s.Empty(s.guild.MemberRoles("user-1"))
}

func (s *JoinCommandTestSuite) TestJoin_StoredCourse() {
	guildService, err := guild.New(&guild.Config{Repository: s.guild})
	s.Require().NoError(err)
	provisioned, err := guildService.ProvisionCourse(s.ctx, &guild.ProvisionCourseInput{CourseName: "test"})
	s.Require().NoError(err)

	s.mockCourseRepo.EXPECT().
		FindOne(gomock.Any(), &courseRepo.FindOneInput{Name: "test"}).
		Return(&models.Course{Code: "TKT-101", Name: "test", FullName: "test course"}, nil)

	output, err := s.command.join(s.ctx, "guild-1", "user-1", "test")
	s.Require().NoError(err)
	s.Equal(provisioned.Role.ID, output.Role.ID)
	s.Equal([]string{provisioned.Role.ID}, s.guild.MemberRoles("user-1"))
}
