package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvDir     = "FOLDERNORM_DIR"
	EnvLog     = "FOLDERNORM_LOG"
	EnvJournal = "FOLDERNORM_JOURNAL"
	EnvColor   = "FOLDERNORM_COLOR"
	EnvVerbose = "FOLDERNORM_VERBOSE"
)

// ApplyEnv loads envFiles (".env" when none are given; missing files are
// ignored) and overrides cfg from the FOLDERNORM_* variables. Variables
// already set in the process environment win over file values. Flags parsed
// afterwards win over both.
func ApplyEnv(cfg *Config, envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg.Dir = getEnv(EnvDir, cfg.Dir)
	cfg.LogFile = getEnv(EnvLog, cfg.LogFile)
	cfg.JournalPath = getEnv(EnvJournal, cfg.JournalPath)
	cfg.Verbose = getEnvBool(EnvVerbose, cfg.Verbose)

	if v := getEnv(EnvColor, ""); v != "" {
		if err := (&colorModeValue{&cfg.ColorMode}).Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvColor, err)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	switch value {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
