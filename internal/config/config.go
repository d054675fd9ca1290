// Package config loads service settings from the environment (and an optional .env
// file) with viper.
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all the configuration variables for the relief service.
type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`

	AWSRegion            string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID       string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey   string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint     string `mapstructure:"DYNAMODB_ENDPOINT"`
	NeedsTable           string `mapstructure:"NEEDS_TABLE"`
	PeopleTable          string `mapstructure:"PEOPLE_TABLE"`
	VolunteersTable      string `mapstructure:"VOLUNTEERS_TABLE"`
	ServiceRequestsTable string `mapstructure:"SERVICE_REQUESTS_TABLE"`
	VolunteerEventsTable string `mapstructure:"VOLUNTEER_EVENTS_TABLE"`

	RegistryDBPath string `mapstructure:"REGISTRY_DB_PATH"`

	RabbitMQURL    string `mapstructure:"RABBITMQ_URL"`
	EventsExchange string `mapstructure:"EVENTS_EXCHANGE"`

	RedisURL                string `mapstructure:"REDIS_URL"`
	RedisKeyPrefix          string `mapstructure:"REDIS_KEY_PREFIX"`
	PinMaxAttempts          int    `mapstructure:"-"`
	PinLockoutWindowSeconds int    `mapstructure:"-"`
	PinHashCost             int    `mapstructure:"-"`

	TxMaxRetries           int `mapstructure:"-"`
	ReopenGracePeriodHours int `mapstructure:"-"`

	JWTSecret          string `mapstructure:"JWT_SECRET"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

var keys = []string{
	"SERVER_PORT",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"NEEDS_TABLE", "PEOPLE_TABLE", "VOLUNTEERS_TABLE", "SERVICE_REQUESTS_TABLE", "VOLUNTEER_EVENTS_TABLE",
	"REGISTRY_DB_PATH",
	"RABBITMQ_URL", "EVENTS_EXCHANGE",
	"REDIS_URL", "REDIS_KEY_PREFIX", "PIN_MAX_ATTEMPTS", "PIN_LOCKOUT_WINDOW_SECONDS", "PIN_HASH_COST",
	"TX_MAX_RETRIES", "REOPEN_GRACE_PERIOD_HOURS",
	"JWT_SECRET", "CORS_ALLOWED_ORIGINS",
}

// LoadConfig reads configuration from the environment, falling back to a .env file in path.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("NEEDS_TABLE", "needs")
	v.SetDefault("PEOPLE_TABLE", "people")
	v.SetDefault("VOLUNTEERS_TABLE", "volunteers")
	v.SetDefault("SERVICE_REQUESTS_TABLE", "service_requests")
	v.SetDefault("VOLUNTEER_EVENTS_TABLE", "volunteer_events")
	v.SetDefault("REGISTRY_DB_PATH", "registry.db")
	v.SetDefault("EVENTS_EXCHANGE", "relief_events")
	v.SetDefault("REDIS_KEY_PREFIX", "athwela:pin_attempts")
	v.SetDefault("PIN_MAX_ATTEMPTS", 5)
	v.SetDefault("PIN_LOCKOUT_WINDOW_SECONDS", 600)
	v.SetDefault("PIN_HASH_COST", bcrypt.DefaultCost)
	v.SetDefault("TX_MAX_RETRIES", 5)
	v.SetDefault("REOPEN_GRACE_PERIOD_HOURS", 48)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Bind explicitly so Unmarshal sees variables without a config file entry.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return
	}

	// Numbers are read leniently: an unparsable value becomes 0 and is defaulted below.
	config.PinMaxAttempts = v.GetInt("PIN_MAX_ATTEMPTS")
	config.PinLockoutWindowSeconds = v.GetInt("PIN_LOCKOUT_WINDOW_SECONDS")
	config.PinHashCost = v.GetInt("PIN_HASH_COST")
	config.TxMaxRetries = v.GetInt("TX_MAX_RETRIES")
	config.ReopenGracePeriodHours = v.GetInt("REOPEN_GRACE_PERIOD_HOURS")

	config.ServerPort = strings.TrimSpace(config.ServerPort)
	if config.ServerPort == "" {
		config.ServerPort = "8080"
	}
	config.RabbitMQURL = strings.TrimSpace(config.RabbitMQURL)
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	config.RedisKeyPrefix = strings.TrimSpace(config.RedisKeyPrefix)
	if config.RedisKeyPrefix == "" {
		config.RedisKeyPrefix = "athwela:pin_attempts"
	}

	if config.PinMaxAttempts <= 0 {
		log.Printf("level=warn component=config msg=\"invalid PIN_MAX_ATTEMPTS; using default\" value=%d", config.PinMaxAttempts)
		config.PinMaxAttempts = 5
	}
	if config.PinLockoutWindowSeconds <= 0 {
		log.Printf("level=warn component=config msg=\"invalid PIN_LOCKOUT_WINDOW_SECONDS; using default\" value=%d", config.PinLockoutWindowSeconds)
		config.PinLockoutWindowSeconds = 600
	}
	if config.PinHashCost < bcrypt.MinCost || config.PinHashCost > bcrypt.MaxCost {
		log.Printf("level=warn component=config msg=\"invalid PIN_HASH_COST; using default\" value=%d", config.PinHashCost)
		config.PinHashCost = bcrypt.DefaultCost
	}
	if config.TxMaxRetries <= 0 {
		log.Printf("level=warn component=config msg=\"invalid TX_MAX_RETRIES; using default\" value=%d", config.TxMaxRetries)
		config.TxMaxRetries = 5
	}
	if config.ReopenGracePeriodHours < 0 {
		log.Printf("level=warn component=config msg=\"invalid REOPEN_GRACE_PERIOD_HOURS; using default\" value=%d", config.ReopenGracePeriodHours)
		config.ReopenGracePeriodHours = 48
	}
	if strings.TrimSpace(config.JWTSecret) == "" {
		log.Println("level=warn component=config msg=\"JWT_SECRET not set; admin routes will reject every request\"")
	}
	return
}

func (c Config) PinLockoutWindow() time.Duration {
	return time.Duration(c.PinLockoutWindowSeconds) * time.Second
}

func (c Config) ReopenGracePeriod() time.Duration {
	return time.Duration(c.ReopenGracePeriodHours) * time.Hour
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
