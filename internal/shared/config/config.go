package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	Env             string
	CORSAllowOrigin []string
	MongoURI        string
	MongoDB         string
	GroqAPIKey      string
	GroqModel       string
	AuthURL         string
	AuthAPIKey      string
	TmpDir          string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env", "cmd/.env")

	return Config{
		Port:            getEnv("PORT", "8080"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDB:         getEnv("MONGODB_DB", "resumetailor"),
		GroqAPIKey:      os.Getenv("GROQ_API_KEY"),
		GroqModel:       getEnv("GROQ_MODEL", "llama3-8b-8192"),
		AuthURL:         os.Getenv("AUTH_URL"),
		AuthAPIKey:      os.Getenv("AUTH_API_KEY"),
		TmpDir:          getEnv("TMP_DIR", os.TempDir()),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
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
