package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	ProjectID      string
	Dataset        string
	LogLevel       string
	TargetYear     int
	OTBWeeks       int
	CacheTTL       time.Duration
	AllowedOrigins []string
}

func New() *Config {
	return &Config{
		Port:           getDefault("PORT", "8080"),
		ProjectID:      os.Getenv("PROJECTID"),
		Dataset:        getDefault("DATASET", "pulse"),
		LogLevel:       os.Getenv("LOGLEVEL"),
		TargetYear:     getInt("TARGETYEAR", 2026),
		OTBWeeks:       getInt("OTBWEEKS", 6),
		CacheTTL:       getDuration("CACHETTL", 60*time.Second),
		AllowedOrigins: getList("ALLOWEDORIGINS", []string{"*"}),
	}
}

func getDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
