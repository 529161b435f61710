package discord

import (
	"context"

	"github.com/KirkDiggler/coursebot/internal/services/messaging"
	"github.com/KirkDiggler/coursebot/internal/services/workshop"
	"github.com/bwmarrin/discordgo"
)

// WorkshopsCommand handles the /workshops command
type WorkshopsCommand struct {
	BaseCommand
	workshopService  workshop.Service
	messagingService messaging.Service
}

// NewWorkshopsCommand creates a new workshops command handler
func NewWorkshopsCommand(workshopService workshop.Service, messagingService messaging.Service) *WorkshopsCommand {
	return &WorkshopsCommand{
		BaseCommand: BaseCommand{
			Name:        "workshops",
			Description: "Show the workshop schedule of a course",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "code",
					Description: "Course code, e.g. TKT-101",
					Required:    true,
				},
			},
		},
		workshopService:  workshopService,
		messagingService: messagingService,
	}
}

// Handle fetches the schedule and replies with it. The workshop API may be
// slow, so the reply is deferred.
func (c *WorkshopsCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i.ApplicationCommandData().Options)
	code := stringOption(options, "code", "")

	if err := DeferResponse(s, i); err != nil {
		return err
	}

	info, err := c.workshopService.GetWorkshopInfo(ctx, &workshop.GetWorkshopInfoInput{
		CourseCode: code,
	})
	if err != nil {
		title, message := describeError(ctx, c.messagingService, err)
		if editErr := EditResponseWithError(s, i, title, message); editErr != nil {
			return editErr
		}
		return err
	}

	return EditResponseWithEmbed(s, i, "Workshops for "+code, info.Message, nil)
}
