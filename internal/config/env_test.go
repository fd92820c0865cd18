package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fakeEnv(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestEnvDefaults(t *testing.T) {
	env := envFrom(fakeEnv(nil))

	assert.Equal(t, ":8000", env.AppAddr)
	assert.Equal(t, "pgx", env.DBDriver)
	assert.Equal(t, "RandomName", env.DBSchema)
	assert.Equal(t, 25, env.DBMaxOpenConns)
	assert.Equal(t, "info", env.LogLevel)
	assert.Equal(t, []string{"*"}, env.CORSOrigins)
	assert.Equal(t, 15*time.Second, env.RequestTimeout)
	assert.False(t, env.FilterStrict)
}

func TestEnvOverrides(t *testing.T) {
	env := envFrom(fakeEnv(map[string]string{
		"PORT":                 "9000",
		"DB_DRIVER":            "MySQL",
		"DB_MAX_OPEN_CONNS":    "bogus",
		"CORS_ALLOWED_ORIGINS": "http://a.test, ,http://b.test",
		"REQUEST_TIMEOUT":      "2s",
		"FILTER_STRICT":        "true",
		"SECRET_KEY":           "s3cret",
	}))

	assert.Equal(t, ":9000", env.AppAddr)
	assert.Equal(t, "mysql", env.DBDriver)
	assert.Equal(t, "", env.DBSchema)
	assert.Equal(t, 25, env.DBMaxOpenConns)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, env.CORSOrigins)
	assert.Equal(t, 2*time.Second, env.RequestTimeout)
	assert.True(t, env.FilterStrict)
	assert.Equal(t, "s3cret", env.SecretKey)
}

func TestEnvAppAddrWinsOverPort(t *testing.T) {
	env := envFrom(fakeEnv(map[string]string{"APP_ADDR": "127.0.0.1:7000", "PORT": "9000"}))
	assert.Equal(t, "127.0.0.1:7000", env.AppAddr)
}
