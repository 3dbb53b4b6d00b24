package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const DefaultPort = "3000"

type MergeMode string

const (
	MergeTruthy   MergeMode = "truthy"
	MergePresence MergeMode = "presence"
)

type Settings struct {
	DatabaseURL string
	Port        string
	MergeMode   MergeMode

	LogLevel     string
	LogFile      string
	LogMaxSizeMB int

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	APIName   string
	APIAuthor string

	AllowedOrigins []string
}

// Load reads an optional .env file and then the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("Arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	return &Settings{
		DatabaseURL:     os.Getenv("URL_BD"),
		Port:            getEnv("PORT", DefaultPort),
		MergeMode:       ParseMergeMode(os.Getenv("MERGE_MODE")),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFile:         os.Getenv("LOG_FILE"),
		LogMaxSizeMB:    getEnvInt("LOG_MAX_SIZE_MB", 10),
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 25),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		APIName:         getEnv("API_NAME", "API da Amanda"),
		APIAuthor:       getEnv("API_AUTHOR", "Amanda Rodrigues de Sousa"),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// ParseMergeMode falls back to MergeTruthy for empty or unknown values.
func ParseMergeMode(v string) MergeMode {
	switch MergeMode(strings.ToLower(strings.TrimSpace(v))) {
	case MergePresence:
		return MergePresence
	default:
		return MergeTruthy
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		logrus.WithError(err).Warnf("Valor inválido para %s, usando %d", key, fallback)
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		logrus.WithError(err).Warnf("Valor inválido para %s, usando %s", key, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
