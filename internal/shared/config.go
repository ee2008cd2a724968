package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string
	HTTPAddr      string
	MetricsAddr   string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	CatalogDriver string // memory | mysql
	RateLimitRPS  int
	Workers       int
	CacheTTL      time.Duration
	SubmitLatency time.Duration
}

func Load() Config {
	// .env is a local development convenience; absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env file")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:        env("APP_ENV", "prod"),
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		MetricsAddr:   env("METRICS_ADDR", ":9100"),
		MySQLDSN:      env("MYSQL_DSN", "root:root@tcp(localhost:3306)/siamstay?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		CatalogDriver: env("CATALOG_DRIVER", "memory"),
		RateLimitRPS:  atoi("RATE_LIMIT_RPS", 50),
		Workers:       atoi("SEED_WORKERS", 8),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		SubmitLatency: time.Duration(atoi("SUBMIT_LATENCY_MS", 1500)) * time.Millisecond,
	}
	if c.CatalogDriver != "memory" && c.CatalogDriver != "mysql" {
		log.Warn().Str("driver", c.CatalogDriver).Msg("unknown CATALOG_DRIVER, falling back to memory")
		c.CatalogDriver = "memory"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
