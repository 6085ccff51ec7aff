package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/validator"
)

type Config struct {
	LogLevel          string        `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	PlayerName        string        `yaml:"player-name" env:"TICTACTOE_PLAYER_NAME" env-default:"player" validate:"required,max=64"`
	Agent             string        `yaml:"agent" env:"TICTACTOE_AGENT" env-default:"search" validate:"oneof=random search easy hard smart"`
	AgentFirst        bool          `yaml:"agent-first" env:"TICTACTOE_AGENT_FIRST"`
	Seed              uint64        `yaml:"seed" env:"TICTACTOE_SEED" env-default:"0"`
	ThinkDelay        time.Duration `yaml:"think-delay" env:"TICTACTOE_THINK_DELAY" env-default:"0s" validate:"gte=0s,lte=10s"`
	Redis             Redis         `yaml:"redis"`
	SQLiteStoragePath string        `yaml:"sqlite-storage-path" env:"TICTACTOE_SQLITE_STORAGE_PATH" env-default:"tictactoe.db" validate:"required"`
	Telemetry         Telemetry     `yaml:"telemetry"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost" validate:"required_if=Enabled true"`
	Port    string `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379" validate:"omitempty,numeric"`
}

// Telemetry - traces and metrics are written to the given files; empty disables them.
type Telemetry struct {
	TraceFile  string `yaml:"trace-file" env:"TICTACTOE_TELEMETRY_TRACE_FILE"`
	MetricFile string `yaml:"metric-file" env:"TICTACTOE_TELEMETRY_METRIC_FILE"`
}

// Load - reads config.yml when it exists, otherwise the environment only.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)

	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.GetValidator().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
