package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
)

type CommandTestSuite struct {
	suite.Suite
}

func TestCommandTestSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

func (s *CommandTestSuite) TestGetCommand_GuildOnly() {
	cmd := NewJoinCommand(&JoinCommandConfig{}).GetCommand()

	s.Equal("join", cmd.Name)
	s.Require().NotNil(cmd.DMPermission)
	s.False(*cmd.DMPermission)
	s.Nil(cmd.DefaultMemberPermissions)
}

func (s *CommandTestSuite) TestCourseCommand_Definition() {
	cmd := NewCourseCommand(&CourseCommandConfig{}).GetCommand()

	s.Equal("course", cmd.Name)
	s.Require().NotNil(cmd.DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionManageServer), *cmd.DefaultMemberPermissions)

	var subcommands []string
	for _, opt := range cmd.Options {
		s.Equal(discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		subcommands = append(subcommands, opt.Name)
	}
	s.Equal([]string{"create", "remove", "list"}, subcommands)

	create := cmd.Options[0]
	s.Require().Len(create.Options, 3)
	for _, opt := range create.Options {
		s.True(opt.Required, opt.Name)
	}
}

func (s *CommandTestSuite) TestInviteCommand_TargetIsOptional() {
	cmd := NewInviteCommand(nil, nil).GetCommand()

	s.Require().Len(cmd.Options, 1)
	s.Equal("target", cmd.Options[0].Name)
	s.False(cmd.Options[0].Required)
	s.NotNil(cmd.DefaultMemberPermissions)
}

func (s *CommandTestSuite) TestOptionHelpers() {
	options := optionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		{Name: "code", Type: discordgo.ApplicationCommandOptionString, Value: "TKT-101"},
	})

	s.Equal("TKT-101", stringOption(options, "code", ""))
	s.Equal("guide", stringOption(options, "target", "guide"))
}

func (s *CommandTestSuite) TestMemberName() {
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Member: &discordgo.Member{
			User: &discordgo.User{ID: "user-1", Username: "kilves"},
		},
	}}

	userID, name := memberName(i)
	s.Equal("user-1", userID)
	s.Equal("kilves", name)

	i.Member.Nick = "Kalle"
	_, name = memberName(i)
	s.Equal("Kalle", name)

	userID, name = memberName(&discordgo.InteractionCreate{Interaction: &discordgo.Interaction{}})
	s.Empty(userID)
	s.Empty(name)
}

func (s *CommandTestSuite) TestTruncate() {
	s.Equal("short", truncate("short", 10))

	long := strings.Repeat("ä", maxEmbedDescription+10)
	cut := truncate(long, maxEmbedDescription)
	s.Len([]rune(cut), maxEmbedDescription)
	s.True(strings.HasSuffix(cut, "…"))
}
