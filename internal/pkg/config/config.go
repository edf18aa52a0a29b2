package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (store identity, webhook target)
// - default: Values common across all environments (fees, timeouts, timezone)
// -----------------------------------------------------------------------------

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	Log        LogConfig
	Store      StoreConfig
	DB         DBConfig
	Storefront StorefrontConfig
	Order      OrderConfig
	Webhook    WebhookConfig
	Coupon     CouponConfig
	Catalog    CatalogConfig
	Session    SessionConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Session-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Sao_Paulo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"memory"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Sao_Paulo"`
	// AutoMigrate applies the embedded migrations when the service starts.
	AutoMigrate bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type StorefrontConfig struct {
	Slug          string `envconfig:"STORE_SLUG" required:"true"`
	SourceDomain  string `envconfig:"SOURCE_DOMAIN" required:"true"`
	Name          string `envconfig:"STORE_NAME" default:"Na Brasa"`
	ChatBaseURL   string `envconfig:"CHAT_BASE_URL" default:"https://wa.me"`
	ChatRecipient string `envconfig:"CHAT_RECIPIENT" required:"true"`
	TimeZone      string `envconfig:"STORE_TIMEZONE" default:"America/Sao_Paulo"`
}

type OrderConfig struct {
	DeliveryFee   decimal.Decimal `envconfig:"DELIVERY_FEE" default:"4.00"`
	TrioFee       decimal.Decimal `envconfig:"TRIO_FEE" default:"10.00"`
	ExtraSauceFee decimal.Decimal `envconfig:"EXTRA_SAUCE_FEE" default:"2.00"`
}

type WebhookConfig struct {
	URL       string        `envconfig:"WEBHOOK_URL"`
	APIKey    string        `envconfig:"WEBHOOK_API_KEY"`
	Timeout   time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"3s"`
	Workers   int           `envconfig:"WEBHOOK_WORKERS" default:"2"`
	QueueSize int           `envconfig:"WEBHOOK_QUEUE_SIZE" default:"64"`
}

// Enabled is false when no intake URL is configured; checkout then only builds the deep link.
func (c WebhookConfig) Enabled() bool { return c.URL != "" }

type CouponConfig struct {
	RedeemOnCheckout bool `envconfig:"COUPON_REDEEM_ON_CHECKOUT" default:"false"`
}

type CatalogConfig struct {
	File string `envconfig:"CATALOG_FILE"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"SESSION_COOKIE_NAME" default:"nb_session"`
	Domain     string        `envconfig:"SESSION_COOKIE_DOMAIN"`
	Secure     bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SameSite   string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
	TTL        time.Duration `envconfig:"SESSION_TTL" default:"6h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory:
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.Password == "" || c.DB.DBName == "" {
			return errors.New("DB_USER, DB_PASSWORD and DB_NAME are required for the postgres store")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Order.DeliveryFee.IsNegative() || c.Order.TrioFee.IsNegative() || c.Order.ExtraSauceFee.IsNegative() {
		return errors.New("fees cannot be negative")
	}
	if c.Webhook.Enabled() && c.Webhook.Workers < 1 {
		return errors.New("WEBHOOK_WORKERS must be at least 1")
	}
	return nil
}

// LoadConfig reads an optional .env (ENV_FILE overrides the path) before the environment.
func LoadConfig() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Sao_Paulo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
		Store: StoreConfig{Driver: StoreDriverMemory},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Sao_Paulo",
		},
		Storefront: StorefrontConfig{
			Slug:          "na-brasa",
			SourceDomain:  "nabrasa.test",
			Name:          "Na Brasa",
			ChatBaseURL:   "https://wa.me",
			ChatRecipient: "556199133181",
			TimeZone:      "America/Sao_Paulo",
		},
		Order: OrderConfig{
			DeliveryFee:   decimal.RequireFromString("4.00"),
			TrioFee:       decimal.RequireFromString("10.00"),
			ExtraSauceFee: decimal.RequireFromString("2.00"),
		},
		Webhook: WebhookConfig{
			Timeout:   3 * time.Second,
			Workers:   1,
			QueueSize: 8,
		},
		Session: SessionConfig{
			CookieName: "nb_session",
			SameSite:   "Lax",
			TTL:        time.Hour,
		},
	}
}
