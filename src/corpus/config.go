package corpus

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"

	"github.com/vealkind/kgram/src"
	"github.com/vealkind/kgram/src/pkg/utils"
	"github.com/vealkind/kgram/src/rolling"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

// Config carries the service-level defaults for corpus fingerprinting. The
// hashing core itself takes no environment input; these settings bind only
// here.
type Config struct {
	Environment   string `envconfig:"ENVIRONMENT" default:"dev"`
	WindowSize    int    `envconfig:"WINDOW_SIZE"  default:"5"`
	Mode          string `envconfig:"MODE"         default:"modular"`
	FilterPattern string `envconfig:"FILTER_PATTERN"`
	Workers       int    `envconfig:"WORKERS"      default:"4"`
}

func (c Config) HashMode() (rolling.Mode, error) {
	switch c.Mode {
	case "modular":
		return rolling.ModeModular, nil
	case "unbounded":
		return rolling.ModeUnbounded, nil
	default:
		return 0, fmt.Errorf("unknown hash mode %q", c.Mode)
	}
}

// LoadConfig reads a .env file when one is present, then binds KGRAM_*
// environment variables on top of the defaults.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("kgram", &cfg); err != nil {
		return Config{}, fmt.Errorf("corpus config: %w", err)
	}

	return cfg, nil
}

func MustLoadConfig() Config {
	return utils.Must(LoadConfig())
}

// NewLogger builds the process logger for the given environment.
func NewLogger(environment string) src.Logger {
	if environment == EnvDev {
		return utils.Must(zap.NewDevelopment()).Sugar()
	}

	return utils.Must(zap.NewProduction()).Sugar()
}
