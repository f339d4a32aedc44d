package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bodylogger/config"
	"bodylogger/handler"
	"bodylogger/logging"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var Version = "development"

func main() {
	cli, err := config.ParseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}
	if cli.Version {
		fmt.Println("bodylogger version " + Version)
		os.Exit(0)
	}

	log := logging.InitLogger(logrus.InfoLevel)

	cfg, err := config.LoadConfig(cli.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %s", err)
	}

	level, err := logLevel(cfg, cli.Debug)
	if err != nil {
		log.Fatalf("Failed to set log level: %s", err)
	}
	log.SetLevel(level)
	if cli.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server := newServer(cfg, log)

	serverCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", cfg.ListenAddress)
		serverCh <- server.ListenAndServe()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	case s := <-signalCh:
		log.Infof("Received signal %s, shutting down", s)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Server shutdown failed: %v", err)
		os.Exit(1)
	}
}

// logLevel returns the configured level, or debug when the debug flag is set.
func logLevel(cfg *config.Config, debug bool) (logrus.Level, error) {
	if debug {
		return logrus.DebugLevel, nil
	}
	return logrus.ParseLevel(cfg.LogLevel)
}

func newServer(cfg *config.Config, log *logrus.Logger) *http.Server {
	return &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: handler.NewRouter(log, os.Stdout),
	}
}
