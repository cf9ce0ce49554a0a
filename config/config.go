package config

import (
	"github.com/spf13/viper"
)

// Storage backend names accepted by STORAGE_BACKEND
const (
	StorageBackendMemory = "memory"
	StorageBackendFile   = "file"
	StorageBackendRedis  = "redis"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	Backend  string
	FilePath string
	RedisKey string
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

	// A missing .env is fine; environment variables alone are enough
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", StorageBackendFile)
	viper.SetDefault("STORAGE_FILE_PATH", "clinic-state.json")
	viper.SetDefault("STORAGE_REDIS_KEY", "clinic:state")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			Backend:  viper.GetString("STORAGE_BACKEND"),
			FilePath: viper.GetString("STORAGE_FILE_PATH"),
			RedisKey: viper.GetString("STORAGE_REDIS_KEY"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
