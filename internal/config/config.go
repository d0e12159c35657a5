package config

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/spf13/viper"
)

// Config is the environment-sourced process configuration.
type Config struct {
	// Token is the messaging-platform access token. Required.
	Token string

	// ManagerChatID identifies the reviewer's chat. Zero disables
	// manager features; the process still serves intake.
	ManagerChatID int64

	// MongoURI selects the document store. When empty the process
	// falls back to a local SQLite file at SQLitePath.
	MongoURI      string
	MongoDatabase string
	SQLitePath    string

	Port     int
	LogLevel string
}

// Load reads configuration from environment variables and validates the
// required keys. A missing token is fatal; a missing or unparseable
// manager chat id only disables manager features.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", 8080)
	v.SetDefault("MONGO_DATABASE", "telebot")
	v.SetDefault("SQLITE_PATH", "./data/telebot.db")
	v.SetDefault("LOG_LEVEL", "info")

	cfg := Config{
		Token:         v.GetString("TELEGRAM_BOT_TOKEN"),
		MongoURI:      v.GetString("MONGO_URI"),
		MongoDatabase: v.GetString("MONGO_DATABASE"),
		SQLitePath:    v.GetString("SQLITE_PATH"),
		Port:          v.GetInt("PORT"),
		LogLevel:      v.GetString("LOG_LEVEL"),
	}

	if cfg.Token == "" {
		return Config{}, errors.New("TELEGRAM_BOT_TOKEN is not set")
	}

	cfg.ManagerChatID = parseManagerChatID(v.GetString("MANAGER_CHAT_ID"))

	return cfg, nil
}

func parseManagerChatID(raw string) int64 {
	if raw == "" {
		slog.Warn("MANAGER_CHAT_ID is not set, manager features disabled")
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		slog.Warn("MANAGER_CHAT_ID is not a number, manager features disabled", "value", raw)
		return 0
	}
	return id
}
