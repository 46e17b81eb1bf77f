package config

import (
	"github.com/kbukum/laracore/validation"
)

// Default application settings.
const (
	DefaultName   = "Laracore"
	DefaultEnv    = "production"
	DefaultCipher = "chacha20-poly1305"
)

// AppSettings is the typed view of the app section.
type AppSettings struct {
	Name      string   `mapstructure:"name" validate:"required"`
	Env       string   `mapstructure:"env" validate:"required"`
	Debug     bool     `mapstructure:"debug"`
	Key       string   `mapstructure:"key" validate:"app_key"`
	Cipher    string   `mapstructure:"cipher" validate:"oneof=chacha20-poly1305 aes-256-gcm"`
	Providers []string `mapstructure:"providers" validate:"dive,required"`
}

// ApplyDefaults fills unset fields.
func (s *AppSettings) ApplyDefaults() {
	if s.Name == "" {
		s.Name = DefaultName
	}
	if s.Env == "" {
		s.Env = DefaultEnv
	}
	if s.Cipher == "" {
		s.Cipher = DefaultCipher
	}
}

// Validate validates the settings.
func (s *AppSettings) Validate() error {
	return validation.Validate(s)
}

// AppSettings reads, defaults and validates the app section. Keys are read
// one by one so environment overrides bound with BindAppEnv apply.
func (r *Repository) AppSettings() (AppSettings, error) {
	s := AppSettings{
		Name:      r.GetString("app.name"),
		Env:       r.GetString("app.env"),
		Debug:     r.GetBool("app.debug"),
		Key:       r.GetString("app.key"),
		Cipher:    r.GetString("app.cipher"),
		Providers: r.GetStringSlice("app.providers"),
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
