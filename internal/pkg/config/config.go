package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - empty default: optional integration that stays disabled until configured
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Schedule  ScheduleConfig
	Timeouts  TimeoutConfig
	Google    GoogleConfig
	Mail      MailConfig
	Events    EventsConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Telemetry TelemetryConfig
	Links     LinksConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"1"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"America/Santo_Domingo"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Issuer   string        `envconfig:"JWT_ISSUER" default:"agenda-engine"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
	StateTTL time.Duration `envconfig:"JWT_STATE_TTL" default:"15m"`
}

type ScheduleConfig struct {
	DefaultTimezone string `envconfig:"DEFAULT_TIMEZONE" default:"America/Santo_Domingo"`
	PlanCatalogPath string `envconfig:"PLAN_CATALOG_PATH"`
}

type TimeoutConfig struct {
	Provider           time.Duration `envconfig:"PROVIDER_TIMEOUT" default:"8s"`
	Storage            time.Duration `envconfig:"STORAGE_TIMEOUT" default:"5s"`
	Notify             time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
	CredentialAttempts int           `envconfig:"CREDENTIAL_REFRESH_ATTEMPTS" default:"3"`
	CredentialBackoff  time.Duration `envconfig:"CREDENTIAL_REFRESH_BACKOFF" default:"250ms"`
}

type GoogleConfig struct {
	ClientID     string `envconfig:"GOOGLE_CLIENT_ID"`
	ClientSecret string `envconfig:"GOOGLE_CLIENT_SECRET"`
	RedirectURL  string `envconfig:"GOOGLE_REDIRECT_URL" default:"http://localhost:8080/api/oauth/callback"`
	CalendarID   string `envconfig:"GOOGLE_CALENDAR_ID" default:"primary"`
}

type MailConfig struct {
	Driver           string `envconfig:"MAIL_DRIVER" default:"log"` // mailersend | smtp | log
	FromEmail        string `envconfig:"MAIL_FROM_EMAIL" default:"no-reply@agenda.local"`
	FromName         string `envconfig:"MAIL_FROM_NAME" default:"Agenda"`
	MailerSendAPIKey string `envconfig:"MAILERSEND_API_KEY"`
	SMTPHost         string `envconfig:"SMTP_HOST"`
	SMTPPort         int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser         string `envconfig:"SMTP_USER"`
	SMTPPassword     string `envconfig:"SMTP_PASSWORD"`
}

type EventsConfig struct {
	Driver       string   `envconfig:"EVENTS_DRIVER" default:"none"` // nats | kafka | none
	NATSURL      string   `envconfig:"NATS_URL" default:"nats://localhost:4222"`
	Subject      string   `envconfig:"EVENTS_SUBJECT" default:"agenda.bookings"`
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	BookingsPerWindow int           `envconfig:"RATE_LIMIT_BOOKINGS" default:"10"`
	Window            time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
}

type TelemetryConfig struct {
	ServiceName    string `envconfig:"OTEL_SERVICE_NAME" default:"agenda-engine"`
	OTLPEndpoint   string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
}

type LinksConfig struct {
	CancelBaseURL string `envconfig:"CANCEL_BASE_URL" default:"http://localhost:8080/api/bookings/cancel/"`
	ReconnectURL  string `envconfig:"RECONNECT_URL" default:"http://localhost:8080/api/oauth/start"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// LoadConfig reads a local .env when present; real environment variables win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

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
			TimeZone: "UTC",
			MaxConns: 5,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-agenda-engine",
			Issuer:   "agenda-engine",
			Duration: time.Hour,
			StateTTL: 15 * time.Minute,
		},
		Schedule: ScheduleConfig{
			DefaultTimezone: "America/Santo_Domingo",
		},
		Timeouts: TimeoutConfig{
			Provider:           2 * time.Second,
			Storage:            2 * time.Second,
			Notify:             time.Second,
			CredentialAttempts: 1,
		},
		Google: GoogleConfig{
			RedirectURL: "http://localhost:8889/api/oauth/callback",
			CalendarID:  "primary",
		},
		Mail: MailConfig{
			Driver:    "log",
			FromEmail: "no-reply@agenda.test",
			FromName:  "Agenda",
		},
		Events: EventsConfig{
			Driver:  "none",
			Subject: "agenda.bookings",
		},
		RateLimit: RateLimitConfig{
			BookingsPerWindow: 100,
			Window:            time.Minute,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "agenda-engine-test",
		},
		Links: LinksConfig{
			CancelBaseURL: "http://localhost:8889/api/bookings/cancel/",
			ReconnectURL:  "http://localhost:8889/api/oauth/start",
		},
	}
}
