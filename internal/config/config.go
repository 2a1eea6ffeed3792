// Package config loads the service configuration from the environment.
// The Config struct is built once in main and passed into the components
// that need it; business logic never reads environment variables directly.
package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings for the contact backend.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `envconfig:"ADDR" default:":8080"`

	// TelegramBotToken and TelegramChatID identify the bot and destination
	// chat for contact notifications. There are deliberately no fallback
	// values: when either is empty the notification sender is disabled and
	// submissions report telegram_sent=false.
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `envconfig:"TELEGRAM_CHAT_ID"`

	// TelegramAPIURL is the Telegram Bot API base URL. Overridable for tests.
	TelegramAPIURL string `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org"`

	// GeoAPIURL is the ip-api.com compatible geolocation base URL.
	GeoAPIURL string `envconfig:"GEO_API_URL" default:"http://ip-api.com"`

	// MessagesFile is the path of the JSON array holding stored submissions.
	MessagesFile string `envconfig:"MESSAGES_FILE" default:"data/messages.json"`

	// AllowedOrigin is the CORS Access-Control-Allow-Origin value for API
	// routes. The contact form is served from arbitrary static frontends,
	// so the default is the wildcard.
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"*"`

	// ContactRateLimit accepted submissions per client address per
	// ContactRateWindow on POST /api/contact.
	ContactRateLimit  int           `envconfig:"CONTACT_RATE_LIMIT" default:"5"`
	ContactRateWindow time.Duration `envconfig:"CONTACT_RATE_WINDOW" default:"1h"`
}

// Load reads .env (if present) and the process environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.MessagesFile == "" {
		return errors.New("config: MESSAGES_FILE must not be empty")
	}
	if c.ContactRateLimit <= 0 {
		return errors.New("config: CONTACT_RATE_LIMIT must be positive")
	}
	if c.ContactRateWindow <= 0 {
		return errors.New("config: CONTACT_RATE_WINDOW must be positive")
	}
	return nil
}

// TelegramEnabled reports whether a bot credential and destination chat are
// both configured.
func (c Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}
