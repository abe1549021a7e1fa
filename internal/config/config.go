package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Addr          string
	DataDir       string
	DBPath        string
	StaticDir     string
	LogLevel      string
	EnableSwagger bool

	// Turnstile challenge verification for public write endpoints.
	TurnstileSecret    string
	TurnstileHostnames []string
	TurnstileRequired  bool

	// Geoapify key for the geocode/places proxy. Server-only; never
	// exposed to the browser.
	GeoapifyAPIKey string
}

func Load() Config {
	addr := os.Getenv("YATRA_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dataDir := os.Getenv("YATRA_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	dbPath := os.Getenv("YATRA_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "yatra.db")
	}
	staticDir := os.Getenv("YATRA_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := os.Getenv("YATRA_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:               addr,
		DataDir:            filepath.Clean(dataDir),
		DBPath:             filepath.Clean(dbPath),
		StaticDir:          filepath.Clean(staticDir),
		LogLevel:           logLevel,
		EnableSwagger:      os.Getenv("YATRA_ENABLE_SWAGGER") == "true",
		TurnstileSecret:    os.Getenv("TURNSTILE_SECRET_KEY"),
		TurnstileHostnames: splitList(os.Getenv("TURNSTILE_ALLOWED_HOSTNAMES")),
		TurnstileRequired:  os.Getenv("TURNSTILE_REQUIRED") != "false",
		GeoapifyAPIKey:     os.Getenv("GEOAPIFY_API_KEY"),
	}
}

// splitList parses a comma-separated env value, dropping empty items.
func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
