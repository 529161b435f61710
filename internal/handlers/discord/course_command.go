package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/coursebot/internal/models"
	"github.com/KirkDiggler/coursebot/internal/services/course"
	"github.com/KirkDiggler/coursebot/internal/services/guild"
	"github.com/KirkDiggler/coursebot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// CourseCommandConfig holds the dependencies of the /course command
type CourseCommandConfig struct {
	CourseService    course.Service
	GuildServices    GuildServiceFactory
	MessagingService messaging.Service
	Logger           *slog.Logger
}

// CourseCommand handles the /course command
type CourseCommand struct {
	BaseCommand
	courseService    course.Service
	guildServices    GuildServiceFactory
	messagingService messaging.Service
	logger           *slog.Logger
}

// NewCourseCommand creates a new course command handler
func NewCourseCommand(cfg *CourseCommandConfig) *CourseCommand {
	manageServer := int64(discordgo.PermissionManageServer)

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CourseCommand{
		BaseCommand: BaseCommand{
			Name:        "course",
			Description: "Manage the courses of this server",
			Permissions: &manageServer,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Create a course with its role, category and channels",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "code",
							Description: "Course code, e.g. TKT-101",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "full_name",
							Description: "Full name of the course",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Short name used for the role and channels",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove",
					Description: "Remove a course record",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Short name of the course",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List every course",
				},
			},
		},
		courseService:    cfg.CourseService,
		guildServices:    cfg.GuildServices,
		messagingService: cfg.MessagingService,
		logger:           logger,
	}
}

// Handle processes a Discord interaction for the course command
func (c *CourseCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	options := optionMap(sub.Options)

	switch sub.Name {
	case "create":
		return c.handleCreate(ctx, s, i, options)
	case "remove":
		return c.handleRemove(ctx, s, i, options)
	case "list":
		return c.handleList(ctx, s, i)
	default:
		return errors.New("unknown subcommand")
	}
}

// handleCreate stores the course record, then provisions and announces it.
// Provisioning is slow enough that the reply is deferred.
func (c *CourseCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	if err := DeferResponse(s, i); err != nil {
		return err
	}

	createOutput, err := c.courseService.CreateCourse(ctx, &course.CreateCourseInput{
		Code:     stringOption(options, "code", ""),
		FullName: stringOption(options, "full_name", ""),
		Name:     stringOption(options, "name", ""),
	})
	if err != nil {
		return c.editWithError(ctx, s, i, fmt.Errorf("failed to create course: %w", err))
	}
	created := createOutput.Course

	guildService, err := c.guildServices(i.GuildID)
	if err != nil {
		return c.editWithError(ctx, s, i, err)
	}

	provisioned, err := guildService.ProvisionCourse(ctx, &guild.ProvisionCourseInput{
		CourseName: created.Name,
		Visibility: created.Visibility(),
	})
	if err != nil {
		return c.editWithError(ctx, s, i, fmt.Errorf("failed to provision course %s: %w", created.Name, err))
	}

	if _, err := guildService.CreateInvitation(ctx, &guild.CreateInvitationInput{
		TargetChannelName: created.Name,
	}); err != nil {
		c.logger.Warn("failed to post course invitation", "course", created.Name, "error", err)
	}

	reply, err := c.messagingService.GetCourseCreatedMessage(ctx, &messaging.GetCourseCreatedMessageInput{
		Course:       created,
		CategoryName: models.CategoryName(created.Name, created.Visibility()),
		ChannelCount: len(provisioned.Channels),
	})
	if err != nil {
		return err
	}

	return EditResponseWithEmbed(s, i, reply.Title, reply.Message, []*discordgo.MessageEmbedField{
		{Name: "Code", Value: created.Code, Inline: true},
		{Name: "Role", Value: provisioned.Role.Name, Inline: true},
	})
}

func (c *CourseCommand) handleRemove(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, options map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	name := stringOption(options, "name", "")

	removeOutput, err := c.courseService.RemoveCourse(ctx, &course.RemoveCourseInput{Name: name})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	reply, err := c.messagingService.GetCourseRemovedMessage(ctx, &messaging.GetCourseRemovedMessageInput{
		Name:    name,
		Removed: removeOutput.Removed,
	})
	if err != nil {
		return err
	}

	return RespondWithMessage(s, i, reply.Message)
}

func (c *CourseCommand) handleList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	listOutput, err := c.courseService.ListCourses(ctx, &course.ListCoursesInput{})
	if err != nil {
		return c.respondWithError(ctx, s, i, err)
	}

	reply, err := c.messagingService.GetCourseListMessage(ctx, &messaging.GetCourseListMessageInput{
		Courses: listOutput.Courses,
	})
	if err != nil {
		return err
	}

	return RespondWithEmbed(s, i, "Courses", reply.Message, nil)
}

func (c *CourseCommand) respondWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cause error) error {
	title, message := describeError(ctx, c.messagingService, cause)
	if err := RespondWithError(s, i, title, message); err != nil {
		return err
	}
	return cause
}

func (c *CourseCommand) editWithError(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, cause error) error {
	title, message := describeError(ctx, c.messagingService, cause)
	if err := EditResponseWithError(s, i, title, message); err != nil {
		return err
	}
	return cause
}

// describeError turns a service error into the title and text shown to the user
func describeError(ctx context.Context, messagingService messaging.Service, cause error) (string, string) {
	output, err := messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: cause})
	if err != nil {
		return "Error", "Something went wrong."
	}
	return output.Title, output.Message
}
