package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string // sqlite|postgres; empty keeps attempts in memory
	DBDSN    string

	NewsAPIKey       string
	FetchTimeoutSecs int

	// MaxQuestions caps a single generation request.
	MaxQuestions int

	AuthEnabled   bool
	AuthSecret    string
	AdminUser     string
	AdminPassHash string // bcrypt

	CORSOrigins []string
}

func FromEnv() Config {
	return Config{
		HTTPAddr:         envOr("QUIZ_HTTP_ADDR", ":8080"),
		DBDriver:         envOr("QUIZ_DB_DRIVER", ""),
		DBDSN:            envOr("QUIZ_DB_DSN", ""),
		NewsAPIKey:       os.Getenv("NEWS_API_KEY"),
		FetchTimeoutSecs: envInt("QUIZ_FETCH_TIMEOUT_SECS", 15),
		MaxQuestions:     envInt("QUIZ_MAX_QUESTIONS", 20),
		AuthEnabled:      envBool("QUIZ_AUTH_ENABLED", false),
		AuthSecret:       envOr("QUIZ_AUTH_SECRET", ""),
		AdminUser:        envOr("ADMIN_USER", "admin"),
		AdminPassHash:    envOr("ADMIN_PASS_HASH", ""),
		CORSOrigins:      csvOr("QUIZ_CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v, err := strconv.Atoi(os.Getenv(k))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
