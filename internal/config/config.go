package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig - конфигурация не прошла проверку, сервис не должен стартовать
var ErrInvalidConfig = errors.New("invalid configuration")

const defaultFeedURL = "https://services1.arcgis.com/lcwc/arcgis/rest/services/LiveIncidents/FeatureServer/0/query?where=1%3D1&outFields=*&outSR=4326&f=json"

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL" validate:"required"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080" validate:"required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379" validate:"required"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0" validate:"gte=0"`

	// Feed Config
	FeedURL      string        `env:"FEED_URL" validate:"required,url"`
	FeedTimeout  time.Duration `env:"FEED_TIMEOUT" envDefault:"15s" validate:"gt=0"`
	FeedParser   string        `env:"FEED_PARSER" envDefault:"dispatch-feed-arcgis" validate:"required"`
	PollInterval time.Duration `env:"FEED_POLL_INTERVAL" envDefault:"60s" validate:"gt=0"`
	WarmStart    bool          `env:"FEED_WARM_START" envDefault:"false"`

	// Reconcile Config
	ReactivateOnSighting bool `env:"RECONCILE_REACTIVATE_ON_SIGHTING" envDefault:"true"`

	// Resolver Config
	ResolverEnabled          bool          `env:"RESOLVER_ENABLED" envDefault:"true"`
	ResolverInterval         time.Duration `env:"RESOLVER_INTERVAL" envDefault:"1h" validate:"gt=0"`
	ResolverThresholdMinutes int           `env:"RESOLVER_THRESHOLD_MINUTES" envDefault:"120" validate:"gt=0"`

	// Geocoding Config
	GeocodingEnabled       bool          `env:"GEOCODING_ENABLED" envDefault:"false"`
	GoogleMapsAPIKey       string        `env:"GOOGLE_MAPS_API_KEY" validate:"required_if=GeocodingEnabled true"`
	GeocodingTimeout       time.Duration `env:"GEOCODING_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	GeocodingRPS           float64       `env:"GEOCODING_RPS" envDefault:"5" validate:"gt=0"`
	GeocodingCacheTTL      time.Duration `env:"GEOCODING_CACHE_TTL" envDefault:"720h" validate:"gt=0"`
	GeocodingAddressSuffix string        `env:"GEOCODING_ADDRESS_SUFFIX" envDefault:"LANCASTER COUNTY, PA"`

	// Events Config
	EventsSink   string   `env:"EVENTS_SINK" envDefault:"redis" validate:"oneof=none redis kafka"`
	KafkaBrokers []string `env:"KAFKA_BROKERS" envDefault:"localhost:9092" validate:"required_if=EventsSink kafka"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"incident-changes" validate:"required_if=EventsSink kafka"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL" validate:"omitempty,url"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s" validate:"gt=0"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3" validate:"gte=1"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s" validate:"gt=0"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// ResolverThreshold возвращает порог устаревания как длительность
func (c *Config) ResolverThreshold() time.Duration {
	return time.Duration(c.ResolverThresholdMinutes) * time.Minute
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	env := &envReader{}
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     env.int("REDIS_DB", 0),

		FeedURL:      getEnv("FEED_URL", defaultFeedURL),
		FeedTimeout:  env.duration("FEED_TIMEOUT", 15*time.Second),
		FeedParser:   getEnv("FEED_PARSER", "dispatch-feed-arcgis"),
		PollInterval: env.duration("FEED_POLL_INTERVAL", 60*time.Second),
		WarmStart:    env.bool("FEED_WARM_START", false),

		ReactivateOnSighting: env.bool("RECONCILE_REACTIVATE_ON_SIGHTING", true),

		ResolverEnabled:          env.bool("RESOLVER_ENABLED", true),
		ResolverInterval:         env.duration("RESOLVER_INTERVAL", time.Hour),
		ResolverThresholdMinutes: env.int("RESOLVER_THRESHOLD_MINUTES", 120),

		GeocodingEnabled:       env.bool("GEOCODING_ENABLED", false),
		GoogleMapsAPIKey:       os.Getenv("GOOGLE_MAPS_API_KEY"),
		GeocodingTimeout:       env.duration("GEOCODING_TIMEOUT", 5*time.Second),
		GeocodingRPS:           env.float("GEOCODING_RPS", 5),
		GeocodingCacheTTL:      env.duration("GEOCODING_CACHE_TTL", 720*time.Hour),
		GeocodingAddressSuffix: getEnv("GEOCODING_ADDRESS_SUFFIX", "LANCASTER COUNTY, PA"),

		EventsSink:   getEnv("EVENTS_SINK", "redis"),
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "incident-changes"),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    env.duration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: env.int("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  env.duration("WEBHOOK_BASE_DELAY", time.Second),

		// Загрузка API ключей
		APIKeys: splitList(os.Getenv("API_KEYS")),
	}

	if err := env.err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения конфигурации по тегам validate
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// envReader читает типизированные переменные и копит ошибки разбора,
// чтобы опечатка в интервале не подменялась молча значением по умолчанию
type envReader struct {
	errs []error
}

func (r *envReader) int(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return intValue
}

func (r *envReader) float(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return floatValue
}

func (r *envReader) bool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return boolValue
}

func (r *envReader) duration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	durationValue, err := time.ParseDuration(value)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s: %w", key, err))
		return defaultValue
	}
	return durationValue
}

func (r *envReader) err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(r.errs...))
}
