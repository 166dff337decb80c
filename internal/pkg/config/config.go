package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Admin    AdminConfig
	Calendar CalendarConfig
	CRM      CRMConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/New_York"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"https://airbooth.rent,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PATCH,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Admin-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/New_York"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type AdminConfig struct {
	Token string `envconfig:"ADMIN_TOKEN" required:"true"`
}

// CalendarConfig drives the external calendar mirror. Provider selects the
// strategy: "google" talks to the Calendar API with a service account,
// "synthetic" generates deterministic availability for development.
type CalendarConfig struct {
	Provider    string        `envconfig:"CALENDAR_PROVIDER" default:"synthetic"`
	CalendarID  string        `envconfig:"CALENDAR_ID" default:"info@openairphotobooth.rentals"`
	TimeZone    string        `envconfig:"CALENDAR_TIMEZONE" default:"America/New_York"`
	ClientEmail string        `envconfig:"GOOGLE_CLIENT_EMAIL"`
	PrivateKey  string        `envconfig:"GOOGLE_PRIVATE_KEY"`
	TokenURL    string        `envconfig:"GOOGLE_TOKEN_URL" default:"https://oauth2.googleapis.com/token"`
	APIBaseURL  string        `envconfig:"GOOGLE_CALENDAR_BASE_URL" default:"https://www.googleapis.com/calendar/v3"`
	HTTPTimeout time.Duration `envconfig:"CALENDAR_HTTP_TIMEOUT" default:"10s"`
}

type CRMConfig struct {
	AccessToken string        `envconfig:"HUBSPOT_ACCESS_TOKEN"`
	BaseURL     string        `envconfig:"HUBSPOT_BASE_URL" default:"https://api.hubapi.com"`
	OwnerID     string        `envconfig:"HUBSPOT_OWNER_ID" default:"49154975"`
	HTTPTimeout time.Duration `envconfig:"HUBSPOT_HTTP_TIMEOUT" default:"10s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/New_York",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "America/New_York",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Admin: AdminConfig{
			Token: "test-admin-token",
		},
		Calendar: CalendarConfig{
			Provider:   "synthetic",
			CalendarID: "info@openairphotobooth.rentals",
			TimeZone:   "America/New_York",
		},
	}
}
