// Package config reads service configuration from the environment.
package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Server holds the settings shared by every HTTP service.
type Server struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// Identity selects how bearer tokens are verified.
// A JWT secret enables local verification, otherwise the identity service is asked.
type Identity struct {
	URL       string `env:"SUPABASE_URL"`
	APIKey    string `env:"SUPABASE_SERVICE_ROLE_KEY"`
	JWTSecret string `env:"SUPABASE_JWT_SECRET"`
}

// RateLimit bounds mutating requests per caller.
type RateLimit struct {
	PerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"30"`
	Burst     int `env:"RATE_LIMIT_BURST" envDefault:"5"`
}

// Proxy is the edge proxy configuration.
type Proxy struct {
	Server
	Identity
	RateLimit

	BasePath        string        `env:"BASE_PATH" envDefault:"/twilio"`
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`

	// Telecom provider
	TwilioAccountSID  string `env:"TWILIO_ACCOUNT_SID,required,notEmpty"`
	TwilioAuthToken   string `env:"TWILIO_AUTH_TOKEN,required,notEmpty"`
	TwilioPhoneNumber string `env:"TWILIO_PHONE_NUMBER,required,notEmpty"`
	TwilioBaseURL     string `env:"TWILIO_API_BASE_URL" envDefault:"https://api.twilio.com/2010-04-01"`
	TwilioVoiceURL    string `env:"TWILIO_VOICE_URL" envDefault:"http://demo.twilio.com/docs/voice.xml"`
}

// Contacts is the contact service configuration.
type Contacts struct {
	Server
	Identity
	RateLimit

	BasePath           string        `env:"BASE_PATH" envDefault:"/api"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"15s"`
	DBConnectionString string        `env:"DB_CONNECTION_STRING,required,notEmpty"`
}

// LoadDotEnv loads a .env file if one is present. A missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
}

// LoadProxy parses the edge proxy configuration from the environment.
func LoadProxy() (*Proxy, error) {
	cfg := &Proxy{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Identity.validate(); err != nil {
		return nil, err
	}
	if err := validateBasePath(cfg.BasePath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadContacts parses the contact service configuration from the environment.
func LoadContacts() (*Contacts, error) {
	cfg := &Contacts{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Identity.validate(); err != nil {
		return nil, err
	}
	if err := validateBasePath(cfg.BasePath); err != nil {
		return nil, err
	}
	return cfg, nil
}

// MustLoadProxy is LoadProxy for main, it exits on error.
func MustLoadProxy() *Proxy {
	cfg, err := LoadProxy()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// MustLoadContacts is LoadContacts for main, it exits on error.
func MustLoadContacts() *Contacts {
	cfg, err := LoadContacts()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}

// UsesJWT reports whether tokens are verified locally.
func (i Identity) UsesJWT() bool {
	return i.JWTSecret != ""
}

func (i Identity) validate() error {
	if i.UsesJWT() {
		return nil
	}
	if i.URL == "" || i.APIKey == "" {
		return errors.New("identity: set SUPABASE_JWT_SECRET or both SUPABASE_URL and SUPABASE_SERVICE_ROLE_KEY")
	}
	return nil
}

func validateBasePath(p string) error {
	if !strings.HasPrefix(p, "/") || strings.Trim(p, "/") == "" {
		return errors.New("BASE_PATH must be a non-root path starting with /")
	}
	return nil
}
