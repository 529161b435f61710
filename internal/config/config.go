package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	StorageDriverRedis  = "redis"
	StorageDriverBolt   = "bolt"
	StorageDriverSQLite = "sqlite"
)

// Config holds the configuration of the bot
type Config struct {
	Discord  DiscordConfig  `yaml:"discord"`
	Storage  StorageConfig  `yaml:"storage"`
	Workshop WorkshopConfig `yaml:"workshop"`
	Log      LogConfig      `yaml:"log"`
}

// DiscordConfig holds Discord credentials
type DiscordConfig struct {
	Token         string `yaml:"token"`
	ApplicationID string `yaml:"application_id"`

	// GuildID registers commands on one guild only. Empty registers them globally.
	GuildID string `yaml:"guild_id"`
}

// StorageConfig selects and configures the course store
type StorageConfig struct {
	Driver string       `yaml:"driver"`
	Redis  RedisConfig  `yaml:"redis"`
	Bolt   BoltConfig   `yaml:"bolt"`
	SQLite SQLiteConfig `yaml:"sqlite"`
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// BoltConfig holds the bbolt database location
type BoltConfig struct {
	Path string `yaml:"path"`
}

// SQLiteConfig holds the SQLite database location
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// WorkshopConfig holds workshop API settings
type WorkshopConfig struct {
	BaseURL  string        `yaml:"base_url"`
	Timeout  time.Duration `yaml:"timeout"`
	Timezone string        `yaml:"timezone"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used for any setting left unset
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Driver: StorageDriverRedis,
			Redis:  RedisConfig{Addr: "localhost:6379"},
			Bolt:   BoltConfig{Path: "coursebot.db"},
			SQLite: SQLiteConfig{Path: "coursebot.sqlite"},
		},
		Workshop: WorkshopConfig{
			Timeout:  10 * time.Second,
			Timezone: "UTC",
		},
		Log: LogConfig{Level: "info"},
	}
}

// LoadDotEnv loads environment variables from the given files. Missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	for _, filename := range filenames {
		if err := godotenv.Load(filename); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", filename, err)
		}
	}
	return nil
}

// Load reads the YAML file on top of the defaults and applies environment
// overrides. A missing file leaves the defaults and environment in charge.
func Load(filename string) (*Config, error) {
	cfg := Default()

	if filename != "" {
		data, err := os.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("DISCORD_TOKEN"); v != "" {
		c.Discord.Token = v
	}
	if v := os.Getenv("APPLICATION_ID"); v != "" {
		c.Discord.ApplicationID = v
	}
	if v := os.Getenv("GUILD_ID"); v != "" {
		c.Discord.GuildID = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Storage.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Storage.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB value: %w", err)
		}
		c.Storage.Redis.DB = db
	}
	if v := os.Getenv("BOLT_PATH"); v != "" {
		c.Storage.Bolt.Path = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Storage.SQLite.Path = v
	}
	if v := os.Getenv("WORKSHOP_BASE_URL"); v != "" {
		c.Workshop.BaseURL = v
	}
	if v := os.Getenv("WORKSHOP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid WORKSHOP_TIMEOUT value: %w", err)
		}
		c.Workshop.Timeout = d
	}
	if v := os.Getenv("WORKSHOP_TIMEZONE"); v != "" {
		c.Workshop.Timezone = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the settings needed to run the bot
func (c *Config) Validate() error {
	if c.Discord.Token == "" {
		return errors.New("discord token is required (DISCORD_TOKEN)")
	}

	if c.Discord.ApplicationID == "" {
		return errors.New("application ID is required (APPLICATION_ID)")
	}

	switch c.Storage.Driver {
	case StorageDriverRedis:
		if c.Storage.Redis.Addr == "" {
			return errors.New("redis address is required (REDIS_ADDR)")
		}
	case StorageDriverBolt:
		if c.Storage.Bolt.Path == "" {
			return errors.New("bolt path is required (BOLT_PATH)")
		}
	case StorageDriverSQLite:
		if c.Storage.SQLite.Path == "" {
			return errors.New("sqlite path is required (SQLITE_PATH)")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	return c.ValidateWorkshop()
}

// ValidateWorkshop checks the settings needed to query the workshop API
func (c *Config) ValidateWorkshop() error {
	if c.Workshop.BaseURL == "" {
		return errors.New("workshop base URL is required (WORKSHOP_BASE_URL)")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// Location resolves the workshop timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Workshop.Timezone == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Workshop.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid workshop timezone %q: %w", c.Workshop.Timezone, err)
	}
	return loc, nil
}

// SlogLevel parses the configured log level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
