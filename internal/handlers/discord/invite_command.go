package discord

import (
	"context"

	"github.com/KirkDiggler/coursebot/internal/services/guild"
	"github.com/KirkDiggler/coursebot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

// InviteCommand handles the /invite command
type InviteCommand struct {
	BaseCommand
	guildServices    GuildServiceFactory
	messagingService messaging.Service
}

// NewInviteCommand creates a new invite command handler
func NewInviteCommand(guildServices GuildServiceFactory, messagingService messaging.Service) *InviteCommand {
	manageServer := int64(discordgo.PermissionManageServer)

	return &InviteCommand{
		BaseCommand: BaseCommand{
			Name:        "invite",
			Description: "Post and pin an invitation in the guide channel",
			Permissions: &manageServer,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "target",
					Description: "A course name, or guide for a server invite (default)",
				},
			},
		},
		guildServices:    guildServices,
		messagingService: messagingService,
	}
}

// Handle posts the invitation and tells the caller where it went
func (c *InviteCommand) Handle(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := optionMap(i.ApplicationCommandData().Options)
	target := stringOption(options, "target", guild.GuideChannelName)

	guildService, err := c.guildServices(i.GuildID)
	if err != nil {
		return err
	}

	invitation, err := guildService.CreateInvitation(ctx, &guild.CreateInvitationInput{
		TargetChannelName: target,
	})
	if err != nil {
		title, message := describeError(ctx, c.messagingService, err)
		if respondErr := RespondWithError(s, i, title, message); respondErr != nil {
			return respondErr
		}
		return err
	}

	input := &messaging.GetInvitationMessageInput{
		Target: target,
		Posted: invitation.Message != nil,
	}
	if invitation.Invite != nil {
		input.InviteURL = guild.InviteURL(invitation.Invite)
	}

	reply, err := c.messagingService.GetInvitationMessage(ctx, input)
	if err != nil {
		return err
	}

	return RespondWithEphemeralMessage(s, i, reply.Message)
}
