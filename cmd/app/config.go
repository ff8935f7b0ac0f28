package main

import (
	"fmt"
	"strings"

	"moonradar/internal/repository"
	"moonradar/internal/session"

	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
)

const (
	storagePostgres = "postgres"
	storageMemory   = "memory"

	sessionStoreRedis  = "redis"
	sessionStoreMemory = "memory"
)

type Config struct {
	Database repository.Config   `yaml:"database"`
	Redis    session.RedisConfig `yaml:"redis"`
	Server   ServerConfig        `yaml:"server"`
	Storage  StorageConfig       `yaml:"storage"`
	Session  SessionConfig       `yaml:"session"`
	Invite   InviteConfig        `yaml:"invite"`

	LogLevel string `yaml:"logLevel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

// StorageConfig selects the repository implementation: "postgres" or
// "memory".
type StorageConfig struct {
	Driver string `yaml:"driver"`
}

// SessionConfig selects the session store ("memory" or "redis") and the
// cookie the session id travels in.
type SessionConfig struct {
	Store      string `yaml:"store"`
	CookieName string `yaml:"cookieName"`
	TTLHours   int    `yaml:"ttlHours"`
}

type InviteConfig struct {
	BaseURL string `yaml:"baseURL"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(configName)
	viper.AddConfigPath(configPath)
	viper.SetConfigType(configFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("storage.driver", storagePostgres)
	viper.SetDefault("session.store", sessionStoreMemory)
	viper.SetDefault("session.cookieName", "moonradar_session")
	viper.SetDefault("session.ttlHours", 24*7)
	viper.SetDefault("invite.baseURL", "https://moonradar.app")
	viper.SetDefault("logLevel", "info")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
