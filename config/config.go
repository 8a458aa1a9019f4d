package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"article-analyzer/internal/db"
	"article-analyzer/internal/services"
)

// Environment variable names.
const (
	envModelPath     = "KEYPHRASE_MODEL_PATH"
	envTopN          = "EXTRACTION_TOP_N"
	envMinProb       = "KEYPHRASE_MIN_PROBABILITY"
	envMinSimilarity = "SIMILARITY_MIN"
	envMaxSimilarity = "SIMILARITY_MAX"
	envMaxResults    = "SIMILARITY_MAX_RESULTS"
	envHistoryWindow = "HISTORY_WINDOW"
	envRedisHost     = "REDIS_HOST"
	envRedisPort     = "REDIS_PORT"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"

	defaultModelPath = "keyphrase_model.json"
)

// Config holds the runtime settings of the analyzer.
type Config struct {
	ModelPath      string
	TopN           int
	MinProbability float64
	Similarity     services.SimilarityOptions
	HistoryWindow  int
	Redis          db.RedisConfig
}

// Load reads configuration from a .env file (when present) and the
// process environment, falling back to the tuned defaults for anything
// unset.
func Load() Config {
	// A missing .env file is fine; env vars still apply.
	_ = godotenv.Load()

	cfg := Config{
		ModelPath:      getEnv(envModelPath, defaultModelPath),
		TopN:           getEnvInt(envTopN, services.DefaultTopN),
		MinProbability: getEnvFloat(envMinProb, services.DefaultMinProbability),
		Similarity:     services.DefaultSimilarityOptions(),
		HistoryWindow:  getEnvInt(envHistoryWindow, services.HistoryWindowLimit),
		Redis:          db.DefaultRedisConfig(),
	}
	cfg.Similarity.MinSimilarity = getEnvFloat(envMinSimilarity, cfg.Similarity.MinSimilarity)
	cfg.Similarity.MaxSimilarity = getEnvFloat(envMaxSimilarity, cfg.Similarity.MaxSimilarity)
	cfg.Similarity.MaxResults = getEnvInt(envMaxResults, cfg.Similarity.MaxResults)
	cfg.Redis.Host = getEnv(envRedisHost, cfg.Redis.Host)
	cfg.Redis.Port = getEnvInt(envRedisPort, cfg.Redis.Port)
	cfg.Redis.Password = getEnv(envRedisPassword, cfg.Redis.Password)
	cfg.Redis.DB = getEnvInt(envRedisDB, cfg.Redis.DB)

	if cfg.HistoryWindow <= 0 || cfg.HistoryWindow > services.HistoryWindowLimit {
		cfg.HistoryWindow = services.HistoryWindowLimit
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
