package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string        `mapstructure:"PORT"`
	APIURL       string        `mapstructure:"API_URL"`
	RedisURL     string        `mapstructure:"REDIS_URL"`
	RedisEnabled bool          `mapstructure:"REDIS_ENABLED"`
	SessionTTL   time.Duration `mapstructure:"SESSION_TTL"`
	Env          string        `mapstructure:"ENV"`
}

func LoadConfig() *Config {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found; using environment variables and defaults")
		} else {
			log.Fatalf("Error reading config file: %s", err)
		}
	}

	// Set default values
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("API_URL", "http://localhost:8080/v1")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("SESSION_TTL", "72h")
	viper.SetDefault("ENV", "development")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}
