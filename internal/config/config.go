package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Environment variables
const (
	EnvAddr            = "GOBEAM_ADDR"
	EnvRate            = "GOBEAM_RATE"
	EnvBurst           = "GOBEAM_BURST"
	EnvWorkers         = "GOBEAM_WORKERS"
	EnvFactor          = "GOBEAM_FACTOR"
	EnvShutdownTimeout = "GOBEAM_SHUTDOWN_TIMEOUT"
)

// Config holds the runtime settings of the server and batch runner
type Config struct {
	Addr            string        // HTTP listen address
	Rate            float64       // Requests per second allowed per client
	Burst           int           // Burst size per client
	Workers         int           // Batch worker count
	Factor          float64       // Default deflection factor j
	ShutdownTimeout time.Duration // Graceful shutdown limit
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		Rate:            5,
		Burst:           10,
		Workers:         4,
		Factor:          1,
		ShutdownTimeout: 5 * time.Second,
	}
}

// Load reads .env style files, when present, and then the process environment.
// Variables already set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Default()

	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvRate); v != "" {
		rate, err := cast.ToFloat64E(v)
		if err != nil || rate <= 0 {
			return nil, fmt.Errorf("invalid %s=%q", EnvRate, v)
		}
		cfg.Rate = rate
	}
	if v := os.Getenv(EnvBurst); v != "" {
		burst, err := cast.ToIntE(v)
		if err != nil || burst <= 0 {
			return nil, fmt.Errorf("invalid %s=%q", EnvBurst, v)
		}
		cfg.Burst = burst
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		workers, err := cast.ToIntE(v)
		if err != nil || workers <= 0 {
			return nil, fmt.Errorf("invalid %s=%q", EnvWorkers, v)
		}
		cfg.Workers = workers
	}
	if v := os.Getenv(EnvFactor); v != "" {
		factor, err := cast.ToFloat64E(v)
		if err != nil || factor <= 0 {
			return nil, fmt.Errorf("invalid %s=%q", EnvFactor, v)
		}
		cfg.Factor = factor
	}
	if v := os.Getenv(EnvShutdownTimeout); v != "" {
		timeout, err := cast.ToDurationE(v)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("invalid %s=%q", EnvShutdownTimeout, v)
		}
		cfg.ShutdownTimeout = timeout
	}

	return cfg, nil
}
