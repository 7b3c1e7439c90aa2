package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config содержит настройки приложения.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string
	Store     StoreConfig
	Trivia    TriviaConfig
	Offline   bool
	Quiz      QuizConfig
}

// StoreConfig выбирает хранилище: memory, sqlite, postgres или redis.
type StoreConfig struct {
	Driver string
	DSN    string // путь к файлу SQLite, URL Postgres или Redis
	Prefix string
}

type TriviaConfig struct {
	BaseURL string
	Amount  int
	Timeout time.Duration
}

type QuizConfig struct {
	QuestionTime time.Duration
	RevealPause  time.Duration
	MaxQuestions int
}

// Load читает настройки из переменных окружения или использует значения по умолчанию.
func Load() *Config {
	return &Config{
		Addr:      getEnv("QUIZ_ADDR", ":8001"),
		LogLevel:  getEnv("QUIZ_LOG_LEVEL", "info"),
		LogFormat: getEnv("QUIZ_LOG_FORMAT", "text"),
		Store: StoreConfig{
			Driver: strings.ToLower(getEnv("QUIZ_STORE", "sqlite")),
			DSN:    getEnv("QUIZ_STORE_DSN", "./quizmaster.db"),
			Prefix: getEnv("QUIZ_STORE_PREFIX", "quizmaster:"),
		},
		Trivia: TriviaConfig{
			BaseURL: getEnv("QUIZ_TRIVIA_URL", "https://opentdb.com/api.php"),
			Amount:  getEnvInt("QUIZ_TRIVIA_AMOUNT", 30),
			Timeout: getEnvDuration("QUIZ_TRIVIA_TIMEOUT", 5*time.Second),
		},
		Offline: getEnvBool("QUIZ_OFFLINE", false),
		Quiz: QuizConfig{
			QuestionTime: time.Duration(getEnvInt("QUIZ_QUESTION_SECONDS", 30)) * time.Second,
			RevealPause:  getEnvDuration("QUIZ_REVEAL_PAUSE", 1500*time.Millisecond),
			MaxQuestions: getEnvInt("QUIZ_MAX_QUESTIONS", 20),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
