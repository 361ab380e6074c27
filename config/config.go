package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	Port          string       `mapstructure:"port"`
	Provider      string       `mapstructure:"provider"`
	Model         string       `mapstructure:"model"`
	GoogleAPIKey  string       `mapstructure:"GOOGLE_API_KEY"`
	OpenAI        OpenAIConfig `mapstructure:"openai"`
	MaxUploadSize int64        `mapstructure:"max_upload_size"`
	OCR           OCRConfig    `mapstructure:"ocr"`
	LogLevel      string       `mapstructure:"log_level"`
	LogFormat     string       `mapstructure:"log_format"`
}

type OpenAIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"OPENAI_API_KEY"`
}

type OCRConfig struct {
	Command  string `mapstructure:"command"`
	Language string `mapstructure:"language"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "7860")
	v.SetDefault("provider", ProviderGemini)
	v.SetDefault("model", "gemini-2.0-flash")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("max_upload_size", 20<<20)
	v.SetDefault("ocr.command", "tesseract")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
}

// LoadConfig reads configPath when it exists, then lets environment variables
// override it. An empty or missing path yields defaults plus environment.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Secrets come from the environment only.
	v.BindEnv("GOOGLE_API_KEY")
	v.BindEnv("openai.OPENAI_API_KEY", "OPENAI_API_KEY")
	v.BindEnv("provider", "AI_PROVIDER")
	v.BindEnv("port", "PORT")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max_upload_size must be positive, got %d", c.MaxUploadSize)
	}
	return nil
}
