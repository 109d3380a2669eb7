package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "QUIZGEN"

type Settings struct {
	ListenAddress string        `mapstructure:"listen_address"`
	LogLevel      string        `mapstructure:"log_level"`
	Model         ModelSettings `mapstructure:"model"`
	CORS          CORSSettings  `mapstructure:"cors"`
}

type ModelSettings struct {
	Provider    string  `mapstructure:"provider"`
	Name        string  `mapstructure:"name"`
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`
	MaxLength   int     `mapstructure:"max_length"`
	NumBeams    int     `mapstructure:"num_beams"`
	Temperature float64 `mapstructure:"temperature"`
}

type CORSSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_address", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("model.provider", "gemini")
	v.SetDefault("model.name", "")
	v.SetDefault("model.api_key", "")
	v.SetDefault("model.base_url", "")
	v.SetDefault("model.max_length", 150)
	v.SetDefault("model.num_beams", 5)
	v.SetDefault("model.temperature", 0.7)
	// TODO: replace the wildcard with the deployed frontend origin.
	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads settings from QUIZGEN_* environment variables and, when
// configFile is set, from a YAML file. Flags bound to v take precedence.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	apiKey, err := ResolveSecret(s.Model.APIKey)
	if err != nil {
		return nil, fmt.Errorf("model.api_key: %w", err)
	}
	s.Model.APIKey = apiKey

	return &s, nil
}

// Upper bounds accepted by every backend. Gemini caps candidates at 8.
const (
	MaxModelLength = 65536
	MaxNumBeams    = 8
)

func (s *Settings) validate() error {
	if s.Model.Provider == "" {
		return errors.New("model.provider is required")
	}
	if s.Model.MaxLength < 1 || s.Model.MaxLength > MaxModelLength {
		return fmt.Errorf("model.max_length must be between 1 and %d", MaxModelLength)
	}
	if s.Model.NumBeams < 1 || s.Model.NumBeams > MaxNumBeams {
		return fmt.Errorf("model.num_beams must be between 1 and %d", MaxNumBeams)
	}
	if s.Model.Temperature < 0 {
		return errors.New("model.temperature must not be negative")
	}
	return nil
}
