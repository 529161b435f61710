package discord

import (
	"context"

	"github.com/KirkDiggler/coursebot/internal/services/course"
	"github.com/KirkDiggler/coursebot/internal/services/guild"
	"github.com/KirkDiggler/coursebot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// JoinCommandConfig holds the dependencies of the /join command
type JoinCommandConfig struct {
	CourseService    course.Service
	GuildServices    GuildServiceFactory
	MessagingService messaging.Service
}

// JoinCommand handles the /join command
type JoinCommand struct {
	BaseCommand
	courseService    course.Service
	guildServices    GuildServiceFactory
	messagingService messaging.Service
}

// NewJoinCommand creates a new join command handler
func NewJoinCommand(cfg *JoinCommandConfig) *JoinCommand {
	return &JoinCommand{
		BaseCommand: BaseCommand{
			Name:        "join",
			Description: "Join a course to see its channels",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "course",
					Description: "Short name of the course",
					Required:    true,
				},
			},
		},
		courseService:    cfg.CourseService,
		guildServices:    cfg.GuildServices,
		messagingService: cfg.MessagingService,
	}
}

// Handle grants the course role to the calling member
func (c *JoinCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i.ApplicationCommandData().Options)
	courseName := stringOption(options, "course", "")
	userID, userName := memberName(i)

	if _, err := c.join(ctx, i.GuildID, userID, courseName); err != nil {
		title, message := describeError(ctx, c.messagingService, err)
		if respondErr := RespondWithError(s, i, title, message); respondErr != nil {
			return respondErr
		}
		return err
	}

	reply, err := c.messagingService.GetCourseJoinedMessage(ctx, &messaging.GetCourseJoinedMessageInput{
		UserName:   userName,
		CourseName: courseName,
	})
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(s, i, reply.Message)
}

// join grants the role of a stored course. Names without a course record
// are rejected before any role is looked up.
func (c *JoinCommand) join(ctx context.Context, guildID, userID, courseName string) (*guild.JoinCourseOutput, error) {
	if _, err := c.courseService.GetCourse(ctx, &course.GetCourseInput{Name: courseName}); err != nil {
		return nil, err
	}

	guildService, err := c.guildServices(guildID)
	if err != nil {
		return nil, err
	}

	return guildService.JoinCourse(ctx, &guild.JoinCourseInput{
		UserID:     userID,
		CourseName: courseName,
	})
}
