package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Assistant specifics
	Calendar       CalendarConfig
	CalDAV         CalDAVConfig
	GoogleCalendar GoogleCalendarConfig
	DeepSeek       DeepSeekConfig
	Session        SessionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// CalendarConfig selects and tunes the remote calendar store.
type CalendarConfig struct {
	Provider        string // "caldav" or "google"
	Timezone        string // IANA name, e.g. "Asia/Shanghai"
	DefaultCalendar string
}

type CalDAVConfig struct {
	ServerURL string
	Username  string
	Password  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type DeepSeekConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// SessionConfig tunes conversation history handling.
type SessionConfig struct {
	MaxTurns        int // hard cap per session; oldest turns evicted first
	ContextTurns    int // how many recent turns are sent to the LLM
	RateLimitPerMin int // execute-command requests per session per minute
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Calendar store
	cfg.Calendar.Provider = viper.GetString("calendar.provider")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.DefaultCalendar = viper.GetString("calendar.default_calendar")

	cfg.CalDAV.ServerURL = viper.GetString("caldav.server_url")
	cfg.CalDAV.Username = viper.GetString("caldav.username")
	cfg.CalDAV.Password = viper.GetString("caldav.password")
	if serverURL := viper.GetString("caldav_server_url"); serverURL != "" {
		cfg.CalDAV.ServerURL = serverURL
	}
	if password := viper.GetString("caldav_password"); password != "" {
		cfg.CalDAV.Password = password
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// DeepSeek
	cfg.DeepSeek.APIKey = viper.GetString("deepseek.api_key")
	cfg.DeepSeek.BaseURL = viper.GetString("deepseek.base_url")
	cfg.DeepSeek.Model = viper.GetString("deepseek.model")
	cfg.DeepSeek.Timeout = viper.GetDuration("deepseek.timeout")
	if apiKey := viper.GetString("deepseek_api_key"); apiKey != "" {
		cfg.DeepSeek.APIKey = apiKey
	}

	// Session history
	cfg.Session.MaxTurns = viper.GetInt("session.max_turns")
	cfg.Session.ContextTurns = viper.GetInt("session.context_turns")
	cfg.Session.RateLimitPerMin = viper.GetInt("session.rate_limit_per_min")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Calendar.Provider {
	case "caldav":
		if cfg.CalDAV.ServerURL == "" {
			return fmt.Errorf("caldav.server_url is required when calendar.provider is caldav")
		}
	case "google":
		if cfg.GoogleCalendar.CredentialsPath == "" {
			return fmt.Errorf("google_calendar.credentials_path is required when calendar.provider is google")
		}
	default:
		return fmt.Errorf("unknown calendar provider %q (expected caldav or google)", cfg.Calendar.Provider)
	}

	if cfg.Session.MaxTurns < cfg.Session.ContextTurns {
		return fmt.Errorf("session.max_turns (%d) must be >= session.context_turns (%d)",
			cfg.Session.MaxTurns, cfg.Session.ContextTurns)
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("calendar.provider", "caldav")
	viper.SetDefault("calendar.timezone", "Asia/Shanghai")

	viper.SetDefault("deepseek.base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("deepseek.model", "deepseek-chat")
	viper.SetDefault("deepseek.timeout", "30s")

	viper.SetDefault("session.max_turns", 20)
	viper.SetDefault("session.context_turns", 10)
	viper.SetDefault("session.rate_limit_per_min", 30)
}
