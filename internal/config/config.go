package config

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	SentimentModeRemote  = "remote"
	SentimentModeLocal   = "local"
	SentimentModeKeyword = "keyword"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisStore struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Tables carries the key prefixes of the two logical store tables.
type Tables struct {
	Watchlist string
	Reviews   string
}

type Sentiment struct {
	Mode string
	URL  string
}

type Catalog struct {
	Source string
}

type Metrics struct {
	Enabled bool
}

type Logging struct {
	Debug bool
}

type Config struct {
	HTTP      HTTPServer
	Redis     RedisStore
	Postgres  Postgres
	Tables    Tables
	Sentiment Sentiment
	Catalog   Catalog
	Metrics   Metrics
	Logging   Logging
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:      *newHTTP(),
		Redis:     *newRedis(),
		Postgres:  *newPostgres(),
		Tables:    *newTables(),
		Sentiment: *newSentiment(),
		Catalog:   *newCatalog(),
		Metrics:   *newMetrics(),
		Logging:   *newLogging(),
	}

	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisStore {
	return &RedisStore{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", ""),
		DBName:   getenv("DB_NAME", "moodplay"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTables() *Tables {
	return &Tables{
		Watchlist: getenv("WATCHLIST_TABLE", "MoodPlayWatchlist"),
		Reviews:   getenv("REVIEWS_TABLE", "MoodPlayReviews"),
	}
}

func newSentiment() *Sentiment {
	return &Sentiment{
		Mode: getenv("SENTIMENT_MODE", SentimentModeKeyword),
		URL:  getenv("SENTIMENT_URL", ""),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		Source: getenv("CATALOG_SOURCE", CatalogSourceStatic),
	}
}

func newMetrics() *Metrics {
	return &Metrics{
		Enabled: getenv("METRICS_ENABLED", "true") == "true",
	}
}

func newLogging() *Logging {
	return &Logging{
		Debug: getenv("LOG_DEBUG", "false") == "true",
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}
