package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

type Config struct {
	App     AppConfig
	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port           string
	Env            string
	CurrencySymbol string
}

type BackendConfig struct {
	URL string
	// Timeout zero means no client-side timeout; requests rely on the
	// transport's defaults.
	Timeout time.Duration
}

type SessionConfig struct {
	// Store selects where the session token is persisted: "file" or "redis".
	Store     string
	TokenFile string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	timeout, err := time.ParseDuration(viper.GetString("BACKEND_TIMEOUT"))
	if err != nil {
		timeout = 0
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			CurrencySymbol: viper.GetString("CURRENCY_SYMBOL"),
		},
		Backend: BackendConfig{
			URL:     viper.GetString("BACKEND_URL"),
			Timeout: timeout,
		},
		Session: SessionConfig{
			Store:     viper.GetString("SESSION_STORE"),
			TokenFile: viper.GetString("TOKEN_FILE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	if config.App.Port == "" {
		config.App.Port = "4000"
	}
	if config.App.CurrencySymbol == "" {
		config.App.CurrencySymbol = "$"
	}
	if config.Session.Store == "" {
		config.Session.Store = SessionStoreFile
	}
	if config.Session.TokenFile == "" {
		config.Session.TokenFile = ".prescripto/token"
	}

	return config, nil
}
