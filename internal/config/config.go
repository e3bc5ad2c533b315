package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string
	CORSOrigins []string
	NewsFeedURL string
}

// Load reads configuration from the environment, with a .env file as a
// development convenience. Missing keys fall back to defaults; the database
// URL and JWT secret have none and must be provided.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("NEWS_FEED_URL", "https://rss.app/feeds/GM4Esjp1er5JUZSi.xml")

	cfg := &Config{
		Port:        v.GetString("PORT"),
		PostgresURL: v.GetString("POSTGRES_URL"),
		JWTSecret:   v.GetString("JWT_SECRET"),
		NewsFeedURL: v.GetString("NEWS_FEED_URL"),
	}

	if origins := v.GetString("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}
