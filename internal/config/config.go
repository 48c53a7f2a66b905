package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	LogLevel        string
	OutputPrecision int32
}

func Load() (*Config, error) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	precision := int32(4)
	if v := os.Getenv("OUTPUT_PRECISION"); v != "" {
		p, err := strconv.ParseInt(v, 10, 32)
		if err != nil || p < 0 {
			return nil, fmt.Errorf("OUTPUT_PRECISION must be a non-negative integer, got %q", v)
		}
		precision = int32(p)
	}

	return &Config{
		LogLevel:        logLevel,
		OutputPrecision: precision,
	}, nil
}
