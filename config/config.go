package config

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	EmailRelay    EmailRelayConfig
	Company       CompanyConfig
	Submission    SubmissionConfig
	ReCAPTCHA     ReCAPTCHAConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
}

// EmailRelayConfig identifies the relay account and the two message templates.
// The identifiers are public by nature of the relay product.
type EmailRelayConfig struct {
	Endpoint               string
	ServiceID              string
	NotificationTemplate   string
	AcknowledgmentTemplate string
	PublicKey              string
	PrivateKey             string // Optional: sent as accessToken when set
	Origin                 string
	TimeoutSeconds         int
}

type CompanyConfig struct {
	Name             string
	Inbox            string
	Website          string
	Location         string
	Signatory        string
	SignatoryTitle   string
	LegalLastUpdated string
}

type SubmissionConfig struct {
	FormTokenSecret           string
	FormTokenTTLMinutes       int
	InFlightTTLSeconds        int
	AcknowledgmentTimeoutSecs int
}

type ReCAPTCHAConfig struct {
	SecretKey string
	SiteKey   string
}

type LoggingConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := fromViper(v)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "https://www.codecraftpakistan.com")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "https://www.codecraftpakistan.com,https://codecraftpakistan.com")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("LOG_MAX_SIZE_MB", 100)
	v.SetDefault("LOG_MAX_BACKUPS", 5)
	v.SetDefault("LOG_MAX_AGE_DAYS", 14)

	// Relay identifiers fall back to the account baked into the public site build
	v.SetDefault("EMAIL_RELAY_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("EMAILJS_SERVICE_ID", "service_ul211pn")
	v.SetDefault("EMAILJS_TEMPLATE_ID", "template_8p37vwx")
	v.SetDefault("EMAILJS_AUTO_REPLY_TEMPLATE_ID", "template_autoreply")
	v.SetDefault("EMAILJS_PUBLIC_KEY", "ENc8vDenN56kJFs3S")
	v.SetDefault("EMAIL_RELAY_TIMEOUT_SECONDS", 15)

	v.SetDefault("COMPANY_NAME", "Code Craft Pakistan")
	v.SetDefault("COMPANY_INBOX", "codecraftpakistan@gmail.com")
	v.SetDefault("COMPANY_WEBSITE", "www.codecraftpakistan.com")
	v.SetDefault("COMPANY_LOCATION", "Abdara road, peshawar, Pakistan")
	v.SetDefault("COMPANY_SIGNATORY", "Bilal Ahmad")
	v.SetDefault("COMPANY_SIGNATORY_TITLE", "CEO")
	v.SetDefault("LEGAL_LAST_UPDATED", "January 2025")

	v.SetDefault("FORM_TOKEN_TTL_MINUTES", 120)
	v.SetDefault("SUBMISSION_IN_FLIGHT_TTL_SECONDS", 60)
	v.SetDefault("ACKNOWLEDGMENT_TIMEOUT_SECONDS", 30)

	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "codecraft-site")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "codecraft")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "codecraft-site")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        v.GetString("BASE_URL"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
		},
		EmailRelay: EmailRelayConfig{
			Endpoint:               v.GetString("EMAIL_RELAY_ENDPOINT"),
			ServiceID:              v.GetString("EMAILJS_SERVICE_ID"),
			NotificationTemplate:   v.GetString("EMAILJS_TEMPLATE_ID"),
			AcknowledgmentTemplate: v.GetString("EMAILJS_AUTO_REPLY_TEMPLATE_ID"),
			PublicKey:              v.GetString("EMAILJS_PUBLIC_KEY"),
			PrivateKey:             v.GetString("EMAILJS_PRIVATE_KEY"),
			Origin:                 v.GetString("EMAIL_RELAY_ORIGIN"),
			TimeoutSeconds:         v.GetInt("EMAIL_RELAY_TIMEOUT_SECONDS"),
		},
		Company: CompanyConfig{
			Name:             v.GetString("COMPANY_NAME"),
			Inbox:            v.GetString("COMPANY_INBOX"),
			Website:          v.GetString("COMPANY_WEBSITE"),
			Location:         v.GetString("COMPANY_LOCATION"),
			Signatory:        v.GetString("COMPANY_SIGNATORY"),
			SignatoryTitle:   v.GetString("COMPANY_SIGNATORY_TITLE"),
			LegalLastUpdated: v.GetString("LEGAL_LAST_UPDATED"),
		},
		Submission: SubmissionConfig{
			FormTokenSecret:           v.GetString("FORM_TOKEN_SECRET"),
			FormTokenTTLMinutes:       v.GetInt("FORM_TOKEN_TTL_MINUTES"),
			InFlightTTLSeconds:        v.GetInt("SUBMISSION_IN_FLIGHT_TTL_SECONDS"),
			AcknowledgmentTimeoutSecs: v.GetInt("ACKNOWLEDGMENT_TIMEOUT_SECONDS"),
		},
		ReCAPTCHA: ReCAPTCHAConfig{
			SecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
			SiteKey:   v.GetString("RECAPTCHA_SITE_KEY"),
		},
		Logging: LoggingConfig{
			Level:      v.GetString("LOG_LEVEL"),
			Dir:        v.GetString("LOG_DIR"),
			MaxSizeMB:  v.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
	}
}

// splitList parses a comma-separated list, dropping empty entries
func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.BaseURL == "" {
		return fmt.Errorf("BASE_URL is required")
	}

	// Email relay
	if c.EmailRelay.Endpoint == "" {
		return fmt.Errorf("EMAIL_RELAY_ENDPOINT is required")
	}
	if c.EmailRelay.ServiceID == "" {
		return fmt.Errorf("EMAILJS_SERVICE_ID is required")
	}
	if c.EmailRelay.NotificationTemplate == "" {
		return fmt.Errorf("EMAILJS_TEMPLATE_ID is required")
	}
	if c.EmailRelay.AcknowledgmentTemplate == "" {
		return fmt.Errorf("EMAILJS_AUTO_REPLY_TEMPLATE_ID is required")
	}
	if c.EmailRelay.PublicKey == "" {
		return fmt.Errorf("EMAILJS_PUBLIC_KEY is required")
	}
	if c.EmailRelay.TimeoutSeconds <= 0 {
		return fmt.Errorf("EMAIL_RELAY_TIMEOUT_SECONDS must be positive")
	}

	if _, err := mail.ParseAddress(c.Company.Inbox); err != nil {
		return fmt.Errorf("COMPANY_INBOX must be a valid email address: %w", err)
	}

	if c.ReCAPTCHA.SecretKey != "" && c.ReCAPTCHA.SiteKey == "" {
		return fmt.Errorf("RECAPTCHA_SITE_KEY is required when RECAPTCHA_SECRET_KEY is set")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}

// CaptchaEnabled reports whether submissions must carry a verified reCAPTCHA token
func (c *Config) CaptchaEnabled() bool {
	return c.ReCAPTCHA.SecretKey != ""
}

// RelayTimeout is the deadline for a single relay call
func (c *Config) RelayTimeout() time.Duration {
	return time.Duration(c.EmailRelay.TimeoutSeconds) * time.Second
}

// AcknowledgmentTimeout bounds the detached acknowledgment call
func (c *Config) AcknowledgmentTimeout() time.Duration {
	if c.Submission.AcknowledgmentTimeoutSecs <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.Submission.AcknowledgmentTimeoutSecs) * time.Second
}

// InFlightTTL bounds how long an unfinished submission blocks its duplicates
func (c *Config) InFlightTTL() time.Duration {
	if c.Submission.InFlightTTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.Submission.InFlightTTLSeconds) * time.Second
}
