package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	EnvTableName  = "MOVIE_AWARDS_TABLE_NAME"
	EnvTableParam = "MOVIE_AWARDS_TABLE_PARAM"
	EnvRegion     = "REGION"
	EnvAWSRegion  = "AWS_REGION"
	EnvLogLevel   = "LOG_LEVEL"

	defaultLogLevel = "info"
)

// Config is the process configuration, read once at cold start.
type Config struct {
	// TableName is the DynamoDB table holding award records.
	TableName string `validate:"required_without=TableParam"`
	// TableParam names an SSM parameter holding the table name. It is only
	// consulted when TableName is empty.
	TableParam string `validate:"required_without=TableName"`
	Region     string `validate:"required"`
	LogLevel   string `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Load reads the configuration through getenv and validates it.
func Load(getenv func(string) string) (Config, error) {
	if getenv == nil {
		return Config{}, errors.New("config: getenv must not be nil")
	}

	cfg := Config{
		TableName:  strings.TrimSpace(getenv(EnvTableName)),
		TableParam: strings.TrimSpace(getenv(EnvTableParam)),
		Region:     strings.TrimSpace(getenv(EnvRegion)),
		LogLevel:   strings.ToLower(strings.TrimSpace(getenv(EnvLogLevel))),
	}
	if cfg.Region == "" {
		cfg.Region = strings.TrimSpace(getenv(EnvAWSRegion))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, e := range validationErrors {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", e.Field(), e.Tag()))
			}
			return Config{}, fmt.Errorf("config: invalid: %s", strings.Join(msgs, "; "))
		}
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
