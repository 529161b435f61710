package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	guildRepo "github.com/KirkDiggler/coursebot/internal/repositories/guild"
	"github.com/KirkDiggler/coursebot/internal/services/course"
	"github.com/KirkDiggler/coursebot/internal/services/guild"
	"github.com/KirkDiggler/coursebot/internal/services/messaging"
	"github.com/KirkDiggler/coursebot/internal/services/workshop"
	"github.com/bwmarrin/discordgo"
)

const commandTimeout = 30 * time.Second

// GuildServiceFactory builds the guild service for one guild
type GuildServiceFactory func(guildID string) (guild.Service, error)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
	logger     *slog.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	CourseService    course.Service
	WorkshopService  workshop.Service
	MessagingService messaging.Service

	// GuildServices defaults to services backed by the bot's own Discord session
	GuildServices GuildServiceFactory

	Logger *slog.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.CourseService == nil {
		return nil, errors.New("course service cannot be nil")
	}

	if cfg.WorkshopService == nil {
		return nil, errors.New("workshop service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
		logger:     logger,
	}

	if cfg.GuildServices == nil {
		cfg.GuildServices = bot.discordGuildService
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// discordGuildService builds a guild service over a fresh repository, so
// roles and channels are read from Discord once per command
func (b *Bot) discordGuildService(guildID string) (guild.Service, error) {
	repo, err := guildRepo.NewDiscord(&guildRepo.DiscordConfig{
		Session: b.session,
		GuildID: guildID,
	})
	if err != nil {
		return nil, err
	}

	return guild.New(&guild.Config{
		Repository: repo,
		Logger:     b.logger.With("guild_id", guildID),
	})
}

// Commands returns the handlers of every command the bot serves
func (b *Bot) Commands() []CommandHandler {
	return []CommandHandler{
		NewCourseCommand(&CourseCommandConfig{
			CourseService:    b.config.CourseService,
			GuildServices:    b.config.GuildServices,
			MessagingService: b.config.MessagingService,
			Logger:           b.logger,
		}),
		NewJoinCommand(&JoinCommandConfig{
			CourseService:    b.config.CourseService,
			GuildServices:    b.config.GuildServices,
			MessagingService: b.config.MessagingService,
		}),
		NewInviteCommand(b.config.GuildServices, b.config.MessagingService),
		NewWorkshopsCommand(b.config.WorkshopService, b.config.MessagingService),
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.Commands() {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command", "command", cmdName, "command_id", cmdID, "error", err)
		} else {
			b.logger.Debug("deleted command", "command", cmdName, "command_id", cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord. If a guild ID is
// configured the command is registered for that guild only.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command", "command", cmd.GetName(), "command_id", createdCmd.ID, "guild_id", b.config.GuildID)

	return nil
}

// handleInteraction dispatches slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}

	if i.GuildID == "" {
		if err := RespondWithEphemeralMessage(s, i, "This command only works inside a server."); err != nil {
			b.logger.Error("failed to respond", "command", name, "error", err)
		}
		return
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic handling command", "command", name, "guild_id", i.GuildID, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	started := time.Now()
	err := h.Handle(ctx, s, i)
	took := guild.MinutesAndSeconds(time.Since(started).Milliseconds())

	if err != nil {
		b.logger.Error("error handling command", "command", name, "guild_id", i.GuildID, "took", took, "error", err)
		return
	}
	b.logger.Info("handled command", "command", name, "guild_id", i.GuildID, "took", took)
}
