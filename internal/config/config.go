package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	ServerPort string

	// QuizPinnedResultID, when set to an id present in the result
	// catalog, makes every completed quiz return that entry instead of
	// the scored one. Used for content review; empty means live scoring.
	QuizPinnedResultID string
}

func Load() *Config {
	return &Config{
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", "postgres"),
		DBName:             getEnv("DB_NAME", "rainbowbell"),
		JWTSecret:          getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		QuizPinnedResultID: getEnv("QUIZ_PINNED_RESULT_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
