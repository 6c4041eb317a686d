package fieldvalidation

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables read from FIELDVALIDATION_* environment variables.
type Config struct {
	// GenericMessage is the fallback error message; %s is replaced by the field type.
	GenericMessage string `env:"GENERIC_MESSAGE" envDefault:"Please check %s requirements"`

	// ValidatingDelay is the minimum time a presentation layer should keep a
	// validating indicator visible. Evaluation never waits on it.
	ValidatingDelay time.Duration `env:"VALIDATING_DELAY" envDefault:"300ms"`

	// CheckTimeout bounds external checks started with [Field.RunCheck].
	CheckTimeout time.Duration `env:"CHECK_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		GenericMessage:  "Please check %s requirements",
		ValidatingDelay: 300 * time.Millisecond,
		CheckTimeout:    5 * time.Second,
	}
}

// withDefaults fills zero fields from [DefaultConfig].
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.GenericMessage == "" {
		c.GenericMessage = def.GenericMessage
	}
	if c.ValidatingDelay <= 0 {
		c.ValidatingDelay = def.ValidatingDelay
	}
	if c.CheckTimeout <= 0 {
		c.CheckTimeout = def.CheckTimeout
	}
	return c
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "FIELDVALIDATION_"})
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
