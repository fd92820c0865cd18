package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"eventbackend/internal/auth"
	intconfig "eventbackend/internal/config"
	api "eventbackend/internal/http"
	"eventbackend/internal/http/handlers"
	"eventbackend/internal/http/middleware"
	"eventbackend/internal/query"
	"eventbackend/internal/repositories"
	"eventbackend/internal/services"
	"eventbackend/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	log := utils.SetupLogger(env.LogLevel)
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	if env.SecretKey == "" {
		log.Fatal("SECRET_KEY is not set")
	}

	db, dialect, err := intconfig.OpenDB(context.Background(), env, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	filter := query.ParseOptions{Strict: env.FilterStrict}
	users := repositories.UserRepository{DB: db, Dialect: dialect, Filter: filter}
	tokens := auth.NewIssuer(env.SecretKey)

	r := api.NewRouter(api.Deps{
		Handler: handlers.Handler{
			Users:   services.UserService{Users: users},
			Events:  services.UserEventService{Events: repositories.UserEventRepository{DB: db, Dialect: dialect}},
			Gifts:   services.UserGiftService{Gifts: repositories.UserGiftRepository{DB: db, Dialect: dialect, Filter: filter}},
			Auth:    services.AuthService{Users: users, Tokens: tokens},
			DB:      db,
			Dialect: dialect,
			Log:     log,
		},
		Tokens:         tokens,
		Metrics:        middleware.NewMetrics(),
		Log:            log,
		CORSOrigins:    env.CORSOrigins,
		RequestTimeout: env.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      env.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithField("addr", env.AppAddr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		return
	}
	log.Info("server stopped")
}
