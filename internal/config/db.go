package config

import (
	"context"
	"errors"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	intdb "eventbackend/internal/db"
)

// OpenDB opens and pings the connection pool described by env. The caller
// owns the returned handle and must Close it on shutdown.
func OpenDB(ctx context.Context, env Env, log *logrus.Entry) (*sqlx.DB, intdb.Dialect, error) {
	dialect, err := intdb.NewDialect(env.DBDriver, env.DBSchema)
	if err != nil {
		return nil, intdb.Dialect{}, err
	}
	if env.DatabaseURL == "" {
		return nil, intdb.Dialect{}, errors.New("DATABASE_URL is not set")
	}

	db, err := sqlx.Open(dialect.Driver, env.DatabaseURL)
	if err != nil {
		return nil, intdb.Dialect{}, err
	}

	db.SetMaxOpenConns(env.DBMaxOpenConns)
	db.SetMaxIdleConns(env.DBMaxOpenConns)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, intdb.Dialect{}, err
	}

	log.WithFields(logrus.Fields{
		"driver": dialect.Driver,
		"schema": dialect.Schema,
	}).Info("database connected")
	return db, dialect, nil
}
