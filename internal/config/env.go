package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDriver       string
	DatabaseURL    string
	DBSchema       string
	DBMaxOpenConns int

	SecretKey      string
	LogLevel       string
	CORSOrigins    []string
	RequestTimeout time.Duration
	FilterStrict   bool
}

// LoadEnv reads .env (when present) and then the process environment.
// Variables already set in the environment win over .env values.
func LoadEnv() Env {
	_ = godotenv.Load()
	return envFrom(os.Getenv)
}

func envFrom(get func(string) string) Env {
	str := func(key, def string) string {
		if v := strings.TrimSpace(get(key)); v != "" {
			return v
		}
		return def
	}

	appAddr := str("APP_ADDR", "")
	if appAddr == "" {
		if port := str("PORT", ""); port != "" {
			appAddr = ":" + port
		} else {
			appAddr = ":8000"
		}
	}

	driver := strings.ToLower(str("DB_DRIVER", "pgx"))
	schemaDefault := "RandomName"
	if driver == "mysql" {
		schemaDefault = ""
	}

	maxOpen, err := strconv.Atoi(str("DB_MAX_OPEN_CONNS", "25"))
	if err != nil || maxOpen < 1 {
		maxOpen = 25
	}

	timeout, err := time.ParseDuration(str("REQUEST_TIMEOUT", "15s"))
	if err != nil || timeout <= 0 {
		timeout = 15 * time.Second
	}

	strict, _ := strconv.ParseBool(str("FILTER_STRICT", "false"))

	origins := []string{}
	for _, o := range strings.Split(str("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        str("GIN_MODE", ""),
		DBDriver:       driver,
		DatabaseURL:    str("DATABASE_URL", ""),
		DBSchema:       str("DB_SCHEMA", schemaDefault),
		DBMaxOpenConns: maxOpen,
		SecretKey:      str("SECRET_KEY", ""),
		LogLevel:       str("LOG_LEVEL", "info"),
		CORSOrigins:    origins,
		RequestTimeout: timeout,
		FilterStrict:   strict,
	}
}
