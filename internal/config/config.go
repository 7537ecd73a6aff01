package config

import "os"

type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string
}

func Load() *Config {
	return &Config{
		DBPath:   getEnv("DB_PATH", "assets.db"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
