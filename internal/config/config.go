package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Config struct {
	RedMode     string
	YellowMode  string
	SearchDepth int
	Seed        int64
	Games       int
	LogLevel    string
	NoColor     bool
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		RedMode:     GetEnv("RED_MODE", "human"),
		YellowMode:  GetEnv("YELLOW_MODE", "alphabeta"),
		SearchDepth: GetEnvAsInt("SEARCH_DEPTH", 4),
		Seed:        GetEnvAsInt64("RANDOM_SEED", 0), // 0 means seed from the clock
		Games:       GetEnvAsInt("SERIES_GAMES", 100),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		NoColor:     GetEnvAsBool("NO_COLOR", false),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
