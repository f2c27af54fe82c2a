package utils

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s %s", e.Key, e.Reason)
}

type Config struct {
	port string

	discordGuildID  string
	discordAppToken string
	discordClientId string

	backendURL string

	metricCollectionInterval time.Duration
	logLevel                 slog.Level
}

// NewConfig reads the process environment and exits when it's unusable.
func NewConfig() *Config {
	config, err := LoadConfig(os.Getenv)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	return config
}

// LoadConfig reads every setting through getenv and reports all missing
// or malformed ones at once.
func LoadConfig(getenv func(string) string) (*Config, error) {
	var result *multierror.Error
	fail := func(key, reason string) {
		result = multierror.Append(result, &ConfigError{Key: key, Reason: reason})
	}

	config := &Config{
		port: func() string {
			port := getenv("PORT")
			if port == "" {
				port = "8080"
			}
			slog.Debug("env", "PORT", port)
			return port
		}(),

		discordGuildID: func() string {
			discordGuildID := getenv("DISCORD_GUILD_ID")
			if discordGuildID == "" {
				slog.Debug("DISCORD_GUILD_ID is not set, registering commands globally")
			}
			slog.Debug("env", "DISCORD_GUILD_ID", discordGuildID)
			return discordGuildID
		}(),
		discordAppToken: func() string {
			discordAppToken := getenv("DISCORD_TOKEN")
			if discordAppToken == "" {
				fail("DISCORD_TOKEN", "is not set")
				return ""
			}
			slog.Debug("env", "DISCORD_TOKEN", redact(discordAppToken))
			return discordAppToken
		}(),
		discordClientId: func() string {
			discordClientId := getenv("DISCORD_CLIENT_ID")
			if discordClientId == "" {
				fail("DISCORD_CLIENT_ID", "is not set")
				return ""
			}
			slog.Debug("env", "DISCORD_CLIENT_ID", discordClientId)
			return discordClientId
		}(),

		backendURL: func() string {
			backendURL := strings.TrimRight(getenv("BACKEND_URL"), "/")
			if backendURL == "" {
				backendURL = "https://timezone-bot-backend.vercel.app"
			}
			if !strings.HasPrefix(backendURL, "http://") && !strings.HasPrefix(backendURL, "https://") {
				fail("BACKEND_URL", "must start with http:// or https://")
			}
			slog.Debug("env", "BACKEND_URL", backendURL)
			return backendURL
		}(),

		metricCollectionInterval: func() time.Duration {
			raw := getenv("METRIC_COLLECTION_INTERVAL")
			if raw == "" {
				raw = "5s"
			}
			interval, err := time.ParseDuration(raw)
			if err != nil || interval <= 0 {
				fail("METRIC_COLLECTION_INTERVAL", "must be a positive duration")
				return 0
			}
			slog.Debug("env", "METRIC_COLLECTION_INTERVAL", interval)
			return interval
		}(),
		logLevel: func() slog.Level {
			raw := getenv("LOG_LEVEL")
			if raw == "" {
				return slog.LevelDebug
			}
			var level slog.Level
			if err := level.UnmarshalText([]byte(raw)); err != nil {
				fail("LOG_LEVEL", "must be one of debug, info, warn, error")
				return slog.LevelDebug
			}
			return level
		}(),
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return config, nil
}

func redact(secret string) string {
	if len(secret) <= 3 {
		return "..."
	}
	return secret[0:3] + "..."
}

// Get PORT env, default to 8080
func (c *Config) GetPort() string {
	return c.port
}

// Get DISCORD_GUILD_ID env, empty means global commands
func (c *Config) GetDiscordGuildID() string {
	return c.discordGuildID
}

// Get DISCORD_TOKEN env
func (c *Config) GetDiscordAppToken() string {
	return c.discordAppToken
}

// Get DISCORD_CLIENT_ID env
func (c *Config) GetDiscordClientId() string {
	return c.discordClientId
}

// Get BACKEND_URL env, without trailing slash
func (c *Config) GetBackendURL() string {
	return c.backendURL
}

// Get METRIC_COLLECTION_INTERVAL env, default to 5s
func (c *Config) GetMetricCollectionInterval() time.Duration {
	return c.metricCollectionInterval
}

// Get LOG_LEVEL env, default to debug
func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}
