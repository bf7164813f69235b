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
	"github.com/sirupsen/logrus"

	config "github.com/phillip/campus-clubs-go/config"
	logger "github.com/phillip/campus-clubs-go/logger"
	routes "github.com/phillip/campus-clubs-go/routes"
	store "github.com/phillip/campus-clubs-go/store"
	utils "github.com/phillip/campus-clubs-go/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
	gin.SetMode(cfg.GinMode)

	db, err := openStore(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("could not open store")
	}

	app := &config.App{
		Config:  cfg,
		Store:   db,
		Courses: utils.NewCourseClient(cfg.CoursesTermsURL, cfg.CoursesCatalogURL, cfg.CoursesTimeout()),
		Log:     log,
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.NewRouter(app),
	}

	go func() {
		log.Infof("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server shutdown")
	}
	if err := db.Close(ctx); err != nil {
		log.WithError(err).Error("store close")
	}
}

func openStore(cfg *config.Config, log *logrus.Logger) (store.Store, error) {
	if cfg.StoreDriver == "memory" {
		log.Warn("using in-memory store, data is lost on exit")
		return store.NewMemory(), nil
	}

	creds, err := config.LoadCredentials(cfg.MongoKeyFile)
	if err != nil {
		return nil, err
	}
	dbName := creds.Database
	if cfg.DBName != "" {
		dbName = cfg.DBName
	}

	client, err := store.Connect(creds.ConnectionURI, cfg.ConnectRetry(), log)
	if err != nil {
		return nil, err
	}
	return store.NewMongo(client, dbName, cfg.StoreTimeout()), nil
}
