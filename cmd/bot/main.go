package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	workshopClient "github.com/KirkDiggler/coursebot/internal/clients/workshop"
	"github.com/KirkDiggler/coursebot/internal/common/clock"
	"github.com/KirkDiggler/coursebot/internal/common/uuid"
	"github.com/KirkDiggler/coursebot/internal/config"
	"github.com/KirkDiggler/coursebot/internal/handlers/discord"
	courseRepo "github.com/KirkDiggler/coursebot/internal/repositories/course"
	courseService "github.com/KirkDiggler/coursebot/internal/services/course"
	"github.com/KirkDiggler/coursebot/internal/services/messaging"
	workshopService "github.com/KirkDiggler/coursebot/internal/services/workshop"
	"github.com/redis/go-redis/v9"
	"github.com/urfave/cli/v2"
	bolt "go.etcd.io/bbolt"
)

func main() {
	app := &cli.App{
		Name:  "coursebot",
		Usage: "Discord bot for course servers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "config.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"COURSEBOT_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "env-file",
				Value: ".env",
				Usage: "dotenv file loaded before the configuration",
			},
		},
		Commands: []*cli.Command{
			newRunCommand(),
			newWorkshopsCommand(),
			newCoursesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("coursebot failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig reads the dotenv file, the YAML file and the environment, and
// installs the configured log level on the default logger
func loadConfig(c *cli.Context) (*config.Config, *slog.Logger, error) {
	if err := config.LoadDotEnv(c.String("env-file")); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}

func newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "connect to Discord and serve slash commands",
		Action: func(c *cli.Context) error {
			cfg, logger, err := loadConfig(c)
			if err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			repo, closeRepo, err := openCourseRepository(c.Context, cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepo()

			courses, err := courseService.New(&courseService.Config{
				CourseRepo:    repo,
				Clock:         clock.New(),
				UUIDGenerator: uuid.New(),
			})
			if err != nil {
				return fmt.Errorf("failed to create course service: %w", err)
			}

			workshops, err := newWorkshopService(cfg, logger)
			if err != nil {
				return err
			}

			messages, err := messaging.New(&messaging.Config{})
			if err != nil {
				return fmt.Errorf("failed to create messaging service: %w", err)
			}

			bot, err := discord.New(&discord.Config{
				Token:            cfg.Discord.Token,
				ApplicationID:    cfg.Discord.ApplicationID,
				GuildID:          cfg.Discord.GuildID,
				CourseService:    courses,
				WorkshopService:  workshops,
				MessagingService: messages,
				Logger:           logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create Discord bot: %w", err)
			}

			if err := bot.Start(); err != nil {
				return fmt.Errorf("failed to start Discord bot: %w", err)
			}

			// Wait for interrupt signal to gracefully shutdown
			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			if err := bot.Stop(); err != nil {
				logger.Error("error stopping bot", "error", err)
			}

			logger.Info("bot has been shut down")
			return nil
		},
	}
}

func newWorkshopsCommand() *cli.Command {
	return &cli.Command{
		Name:      "workshops",
		Usage:     "print the workshop schedule of a course",
		ArgsUsage: "<course code>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("expected exactly one course code", 2)
			}

			cfg, logger, err := loadConfig(c)
			if err != nil {
				return err
			}

			if err := cfg.ValidateWorkshop(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			workshops, err := newWorkshopService(cfg, logger)
			if err != nil {
				return err
			}

			info, err := workshops.GetWorkshopInfo(c.Context, &workshopService.GetWorkshopInfoInput{
				CourseCode: c.Args().First(),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(c.App.Writer, info.Message)
			return err
		},
	}
}

func newCoursesCommand() *cli.Command {
	return &cli.Command{
		Name:  "courses",
		Usage: "list the stored course records",
		Action: func(c *cli.Context) error {
			cfg, logger, err := loadConfig(c)
			if err != nil {
				return err
			}

			repo, closeRepo, err := openCourseRepository(c.Context, cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepo()

			output, err := repo.FindAll(c.Context, &courseRepo.FindAllInput{})
			if err != nil {
				return err
			}

			for _, course := range output.Courses {
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\t%s\n", course.Visibility().Glyph(), course.Code, course.Name, course.FullName)
			}
			return nil
		},
	}
}

// openCourseRepository opens the configured course store. The returned
// func releases it.
func openCourseRepository(ctx context.Context, cfg *config.Config, logger *slog.Logger) (courseRepo.Repository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverBolt:
		db, err := bolt.Open(cfg.Storage.Bolt.Path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open bolt database: %w", err)
		}

		repo, err := courseRepo.NewBolt(&courseRepo.BoltConfig{DB: db})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to create course repository: %w", err)
		}

		logger.Info("using bolt course store", "path", cfg.Storage.Bolt.Path)
		return repo, func() { db.Close() }, nil

	case config.StorageDriverSQLite:
		db, err := sql.Open("sqlite3", cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		repo, err := courseRepo.NewSQLite(&courseRepo.SQLiteConfig{DB: db})
		if err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to create course repository: %w", err)
		}

		logger.Info("using sqlite course store", "path", cfg.Storage.SQLite.Path)
		return repo, func() { db.Close() }, nil

	case config.StorageDriverRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})

		// Test Redis connection
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}

		repo, err := courseRepo.NewRedis(&courseRepo.RedisConfig{RedisClient: redisClient})
		if err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create course repository: %w", err)
		}

		logger.Info("using redis course store", "addr", cfg.Storage.Redis.Addr)
		return repo, func() { redisClient.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func newWorkshopService(cfg *config.Config, logger *slog.Logger) (workshopService.Service, error) {
	client, err := workshopClient.NewHTTP(&workshopClient.Config{
		BaseURL:    cfg.Workshop.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Workshop.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create workshop client: %w", err)
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	return workshopService.New(&workshopService.Config{
		Client:   client,
		Location: location,
		Logger:   logger,
	})
}
