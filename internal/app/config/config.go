package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is read once at startup and injected into the components that need
// it. Nothing mutates it afterwards.
type Config struct {
	ServiceHost string
	ServicePort int
	GinMode     string

	RedisEndpoint  string
	RedisPassword  string
	HaulerCacheTTL time.Duration

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	SeedOnStartup bool
}

var envBindings = map[string]string{
	"ServiceHost":    "SERVICE_HOST",
	"ServicePort":    "SERVICE_PORT",
	"GinMode":        "GIN_MODE",
	"RedisEndpoint":  "REDIS_ENDPOINT",
	"RedisPassword":  "REDIS_PASSWORD",
	"HaulerCacheTTL": "HAULER_CACHE_TTL",
	"MinioEndpoint":  "MINIO_ENDPOINT",
	"MinioAccessKey": "MINIO_ACCESS_KEY",
	"MinioSecretKey": "MINIO_SECRET_KEY",
	"MinioBucket":    "MINIO_BUCKET",
	"MinioUseSSL":    "MINIO_USE_SSL",
	"SeedOnStartup":  "SEED_ON_STARTUP",
}

// LoadEnv copies .env from the working directory into the process
// environment. Variables that are already set win. A missing file is not an
// error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Error loading .env file, using defaults")
	}
}

func NewConfig() (*Config, error) {
	var err error
	configName := "config"
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetDefault("ServiceHost", "0.0.0.0")
	v.SetDefault("ServicePort", 8080)
	v.SetDefault("GinMode", "release")
	v.SetDefault("HaulerCacheTTL", "5m")
	v.SetDefault("MinioBucket", "harbormaster-photos")
	v.SetDefault("SeedOnStartup", true)

	err = v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	LoadEnv()

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err = v.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	logrus.Info("config parsed")
	return cfg, nil
}
