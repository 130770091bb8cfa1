package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	CalendarID string
	APIKey     string
	DBPath     string
	// Timezone fixes event formatting so output does not drift with the
	// host's ambient settings.
	Timezone *time.Location
}

// Load reads configuration values and prepares defaults where applicable.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	timezoneName := getenvDefault("LOCAL_TIMEZONE", "America/Denver")
	location, err := time.LoadLocation(timezoneName)
	if err != nil {
		log.Printf("config: invalid LOCAL_TIMEZONE %q, defaulting to system local: %v", timezoneName, err)
		location = time.Local
	}

	return &Config{
		CalendarID: os.Getenv("CALENDAR_ID"),
		APIKey:     os.Getenv("GOOGLE_API_KEY"),
		DBPath:     getenvDefault("DB_PATH", "chapterapp.db"),
		Timezone:   location,
	}
}

func getenvDefault(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	return value
}
