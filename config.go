package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the process settings of the agent service.
type Config struct {
	LibDir       string
	UserPath     string
	LogDir       string
	LogLevel     zerolog.Level
	ConsoleLevel zerolog.Level
}

// LoadConfig reads the settings from the environment, after loading .env
// from the working directory if there is one.
func LoadConfig() (*Config, error) {
	// 没有 .env 文件时忽略
	_ = godotenv.Load()

	cwd := getCwd()

	cfg := &Config{
		LibDir:   getEnv("MAA_LIB_DIR", filepath.Join(cwd, "maafw")),
		UserPath: getEnv("MAA_USER_PATH", cwd),
		LogDir:   getEnv("ROIBOX_LOG_DIR", filepath.Join(".", "debug")),
	}

	var err error
	if cfg.LogLevel, err = parseLevel("ROIBOX_LOG_LEVEL", zerolog.DebugLevel); err != nil {
		return nil, err
	}
	if cfg.ConsoleLevel, err = parseLevel("ROIBOX_CONSOLE_LEVEL", zerolog.ErrorLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(key string, def zerolog.Level) (zerolog.Level, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	lvl, err := zerolog.ParseLevel(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return lvl, nil
}

func getCwd() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
