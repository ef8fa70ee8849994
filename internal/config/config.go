package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// SubmitDelay is the simulated processing latency of the report
	// submission pipeline.
	SubmitDelay time.Duration

	// NotifyTTL is how long a notification stays visible before
	// auto-dismissal.
	NotifyTTL time.Duration

	// AttentionWindow bounds how recently an entity must have been created
	// to trigger the camera fly-to.
	AttentionWindow time.Duration

	// Alert dispatch side channel. Disabled means the simulated dispatcher
	// is used and nothing ever leaves the process.
	DispatchEnabled   bool
	DispatchRecipient string
	KafkaBrokers      []string
	KafkaAlertTopic   string

	// AI suggestion service. An empty key degrades to canned responses.
	AIAPIKey   string
	AIEndpoint string
	AITimeout  time.Duration

	// Device positioning endpoint for the location lock. Empty means the
	// static development provider is used.
	PositionEndpoint string
	PositionTimeout  time.Duration

	NewsRefreshInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}
	submitDelay, err := parseDuration("SUBMIT_DELAY", "10s")
	if err != nil {
		return nil, err
	}
	notifyTTL, err := parseDuration("NOTIFY_TTL", "7s")
	if err != nil {
		return nil, err
	}
	attentionWindow, err := parseDuration("ATTENTION_WINDOW", "10s")
	if err != nil {
		return nil, err
	}
	aiTimeout, err := parseDuration("AI_TIMEOUT", "15s")
	if err != nil {
		return nil, err
	}
	positionTimeout, err := parseDuration("POSITION_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}
	newsInterval, err := parseDuration("NEWS_REFRESH_INTERVAL", "5m")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		SubmitDelay:     submitDelay,
		NotifyTTL:       notifyTTL,
		AttentionWindow: attentionWindow,

		DispatchEnabled:   envOrDefault("DISPATCH_ENABLED", "false") == "true",
		DispatchRecipient: envOrDefault("DISPATCH_RECIPIENT", "7675072828"),
		KafkaBrokers:      splitBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaAlertTopic:   envOrDefault("KAFKA_ALERT_TOPIC", "incident-alerts"),

		AIAPIKey:   os.Getenv("AI_API_KEY"),
		AIEndpoint: envOrDefault("AI_ENDPOINT", "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"),
		AITimeout:  aiTimeout,

		PositionEndpoint: os.Getenv("POSITION_ENDPOINT"),
		PositionTimeout:  positionTimeout,

		NewsRefreshInterval: newsInterval,
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid LOG_LEVEL: %q", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("invalid LOG_FORMAT: %q", c.LogFormat)
	}
	if c.DispatchEnabled {
		if len(c.KafkaBrokers) == 0 {
			return errors.New("DISPATCH_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if c.KafkaAlertTopic == "" {
			return errors.New("DISPATCH_ENABLED is true but KAFKA_ALERT_TOPIC is empty")
		}
	}
	if c.DispatchRecipient == "" {
		return errors.New("DISPATCH_RECIPIENT is required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	s := envOrDefault(key, fallback)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

func splitBrokers(s string) []string {
	var brokers []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
