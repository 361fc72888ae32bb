package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Glossary storage
	DBDriver string // "sqlite" or "postgres"
	DBDSN    string

	// Glossary files imported at startup, e.g. "Zoology_Terms_Bilingual.xlsx"
	GlossaryFiles []string
	LoaderWorkers int

	// Drill policy
	MaxRounds         int
	QuestionsPerRound int
	MaxMistakes       int
	SessionTTL        time.Duration // idle HTTP sessions are dropped after this; 0 keeps them

	CORSAllowedOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:      getenvDefault("SERVER_ADDRESS", ":8080"),
		ShutdownTimeout:    getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		DBDriver:           getenvDefault("DB_DRIVER", "sqlite"),
		DBDSN:              getenvDefault("DB_DSN", "zoology.db"),
		GlossaryFiles:      getList("GLOSSARY_FILES"),
		LoaderWorkers:      getIntDefault("LOADER_WORKERS", 4),
		MaxRounds:          getIntDefault("DRILL_MAX_ROUNDS", 3),
		QuestionsPerRound:  getIntDefault("DRILL_QUESTIONS_PER_ROUND", 10),
		MaxMistakes:        getIntDefault("DRILL_MAX_MISTAKES", 0),
		SessionTTL:         getDurationDefault("DRILL_SESSION_TTL", 2*time.Hour),
		CORSAllowedOrigins: getListDefault("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Fatalf("config: %s=%q is not a valid non-negative integer", k, v)
	}
	return n
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

// getList splits a comma separated variable, dropping blanks.
func getList(k string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(k), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getListDefault(k string, fallback []string) []string {
	if list := getList(k); len(list) > 0 {
		return list
	}
	return fallback
}
