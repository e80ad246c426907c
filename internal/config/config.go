package config

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverNone     = "none"
)

type DBConfig struct {
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

type ServerConfig struct {
	Port           string
	Handler        http.Handler
	MaxHeaderBytes int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MongoConfig struct {
	URI      string
	Database string
}

type StorageConfig struct {
	Driver string
	Key    string
}

type HTTPConfig struct {
	ClientOrigins []string
	AccessSecret  string
}

type Config struct {
	Env             string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Storage         StorageConfig
	HTTP            HTTPConfig
	Postgres        DBConfig
	Redis           RedisConfig
	Mongo           MongoConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "production")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.readTimeout", 10*time.Second)
	v.SetDefault("app.writeTimeout", 10*time.Second)
	v.SetDefault("app.shutdownTimeout", 5*time.Second)
	v.SetDefault("storage.driver", DriverMemory)
	v.SetDefault("storage.key", "posts")
	v.SetDefault("mongo.database", "blog")
	v.SetDefault("postgres.sslmode", "disable")
}

// FromViper reads the yaml settings from v and the secrets from the
// environment. Missing values fall back to defaults.
func FromViper(v *viper.Viper) Config {
	setDefaults(v)

	return Config{
		Env:             v.GetString("app.env"),
		Port:            v.GetString("app.port"),
		ReadTimeout:     v.GetDuration("app.readTimeout"),
		WriteTimeout:    v.GetDuration("app.writeTimeout"),
		ShutdownTimeout: v.GetDuration("app.shutdownTimeout"),
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
			Key:    v.GetString("storage.key"),
		},
		HTTP: HTTPConfig{
			ClientOrigins: splitOrigins(v.GetString("client.origin")),
			AccessSecret:  os.Getenv("ACCESS_SECRET"),
		},
		Postgres: DBConfig{
			Username: os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			DBName:   os.Getenv("POSTGRES_DATABASE"),
			SSLMode:  envOr("POSTGRES_SSLMODE", v.GetString("postgres.sslmode")),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       v.GetInt("redis.db"),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: v.GetString("mongo.database"),
		},
	}
}

// Load reads the global viper instance.
func Load() Config {
	return FromViper(viper.GetViper())
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
