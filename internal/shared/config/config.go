package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	Env             string

	// Results directory shared by the engine and the demo generator.
	ResultsDir string

	// Engine settings. DemoMode forces synthetic results; StrictEngine
	// disables the demo fallback when the engine is missing or broken.
	DemoMode      bool
	StrictEngine  bool
	EngineCmd     string
	EngineDir     string
	EngineTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173")),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		ResultsDir:      getEnv("RESULTS_DIR", "./results"),
		DemoMode:        getBool("DEMO_MODE", false),
		StrictEngine:    getBool("STRICT_MATLAB", false),
		EngineCmd:       getEnv("MATLAB_CMD", "matlab"),
		EngineDir:       getEnv("MATLAB_SCRIPT_DIR", "."),
		EngineTimeout:   getDurationSeconds("MATLAB_TIMEOUT_SECONDS", 600),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getDurationSeconds(key string, defSeconds int) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return time.Duration(defSeconds) * time.Second
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return time.Duration(defSeconds) * time.Second
	}
	return time.Duration(n) * time.Second
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}
