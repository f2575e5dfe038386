package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Server struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // debug | release
}

type Database struct {
	Driver string `mapstructure:"driver"` // sqlite | postgres
	DSN    string `mapstructure:"dsn"`
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Cache struct {
	// IndexTTL bounds staleness of the cached index page. Expiry is the
	// only invalidation; writes do not purge entries.
	IndexTTL time.Duration `mapstructure:"index_ttl"`
}

type Auth struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type Config struct {
	Server    Server    `mapstructure:"server"`
	Database  Database  `mapstructure:"database"`
	Redis     Redis     `mapstructure:"redis"`
	Cache     Cache     `mapstructure:"cache"`
	Auth      Auth      `mapstructure:"auth"`
	RateLimit RateLimit `mapstructure:"rate_limit"`
	SentryDSN string    `mapstructure:"sentry_dsn"`
	OTLPHost  string    `mapstructure:"otlp_host"`
}

// Load reads config from the given file (optional) with MICROBLOG_*
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "microblog.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.index_ttl", 20*time.Second)
	v.SetDefault("auth.jwt_secret", "dev-secret")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("rate_limit.rps", 50)
	v.SetDefault("rate_limit.burst", 100)

	v.SetEnvPrefix("MICROBLOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
