// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	BackendBaseURL string
	BackendTimeout time.Duration

	SessionCookie string
	SessionTTL    time.Duration
	CookieSecure  bool

	RedisAddr string
	DBURL     string

	KafkaBroker      string
	KafkaCartTopic   string
	KafkaCartGroup   string
	KafkaEventsTopic string
	OutboxInterval   time.Duration
	OutboxBatchSize  int

	PaymentProvider      string
	StripeSecretKey      string
	MidtransServerKey    string
	MidtransIsProduction bool

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	OrdersPath string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:   getEnv("PORT", "3000"),
		AppEnv: getEnv("APP_ENV", "development"),

		BackendBaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:5000"), "/"),
		BackendTimeout: durEnv("BACKEND_TIMEOUT", 10*time.Second),

		SessionCookie: getEnv("SESSION_COOKIE", "sf_session"),
		SessionTTL:    durEnv("SESSION_TTL", 24*time.Hour),
		CookieSecure:  boolEnv("COOKIE_SECURE", false),

		RedisAddr: getEnv("REDIS_ADDR", ""),
		DBURL:     getEnv("DB_URL", ""),

		KafkaBroker:      getEnv("KAFKA_BROKER", ""),
		KafkaCartTopic:   getEnv("KAFKA_CART_TOPIC", "order.events"),
		KafkaCartGroup:   getEnv("KAFKA_CART_GROUP", "storefront-cart-group"),
		KafkaEventsTopic: getEnv("KAFKA_EVENTS_TOPIC", "storefront.events"),
		OutboxInterval:   durEnv("OUTBOX_INTERVAL", 5*time.Second),
		OutboxBatchSize:  intEnv("OUTBOX_BATCH_SIZE", 10),

		PaymentProvider:      strings.ToLower(getEnv("PAYMENT_PROVIDER", "stripe")),
		StripeSecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
		MidtransServerKey:    getEnv("MIDTRANS_SERVER_KEY", ""),
		MidtransIsProduction: boolEnv("MIDTRANS_IS_PRODUCTION", false),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "storefront/products"),

		OrdersPath: getEnv("CHECKOUT_SUCCESS_PATH", "/orders"),
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return strings.Trim(value, "\"")
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func boolEnv(key string, fallback bool) bool {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// durEnv accepts Go durations ("15s") or plain seconds ("15").
func durEnv(key string, fallback time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return fallback
}
