package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	env "github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/diogo/msgboard/internal/models"
)

// Environment holds the process-level settings read once at startup
type Environment struct {
	APIURL   string `env:"MSGBOARD_API_URL"`
	Mode     string `env:"MSGBOARD_ENV" validate:"omitempty,oneof=production development"`
	Origin   string `env:"MSGBOARD_ORIGIN,default=http://localhost" validate:"required,url"`
	LogLevel string `env:"MSGBOARD_LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	LogFile  string `env:"MSGBOARD_LOG_FILE"`
}

var envValidator = validator.New()

// LoadEnvironment reads the environment, loading dotenvPath first if it
// exists. Variables already set in the process are not overridden.
func LoadEnvironment(dotenvPath string) (Environment, error) {
	var e Environment

	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return e, fmt.Errorf("failed to load %s: %w", dotenvPath, err)
		}
	}

	if _, err := env.UnmarshalFromEnviron(&e); err != nil {
		return e, fmt.Errorf("failed to read environment: %w", err)
	}

	e.Mode = strings.ToLower(strings.TrimSpace(e.Mode))
	e.LogLevel = strings.ToLower(strings.TrimSpace(e.LogLevel))

	if err := envValidator.Struct(e); err != nil {
		return e, fmt.Errorf("invalid environment: %w", err)
	}

	return e, nil
}

// EffectiveMode returns the environment mode, or buildMode when unset
func (e Environment) EffectiveMode(buildMode string) string {
	if e.Mode != "" {
		return e.Mode
	}
	if buildMode == "" {
		return models.ModeDevelopment
	}
	return buildMode
}
