package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tygcalc.metabolicrisk.org/internal/app"
	"tygcalc.metabolicrisk.org/internal/appconf"
	"tygcalc.metabolicrisk.org/internal/logging"
	"tygcalc.metabolicrisk.org/internal/restapi"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger := logging.NewStructuredLogger(os.Stdout, cfg.SlogLevel())
	slog.SetDefault(logger)

	application := app.New(cfg, logger)
	api := restapi.NewRestAPI(application)
	defer api.Shutdown()

	handler, err := buildHandler(api)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logging.LogOperation(logger, "starting server",
			slog.String("addr", srv.Addr),
			slog.String("env", cfg.Env.String()),
			slog.String("thresholds", application.ActiveThresholds().Name))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = srv.Shutdown(shutdownCtx)
		if err == nil {
			err = <-serveErr
		}
	}

	logging.LogServerExit(logger, err)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// loadConfig reads the config file and environment first, then lets explicitly
// set flags override them.
func loadConfig(args []string) (appconf.Config, error) {
	fs := flag.NewFlagSet("tygcalc", flag.ContinueOnError)

	configFile := fs.String("config", "", "Path to a yaml, json or toml config file")
	port := fs.Int("port", 4000, "API server port")
	env := fs.String("env", "development", "Environment (development|test|production)")
	apiKeys := fs.String("api-keys", "test", "Comma Separated API Keys (test, etc)")
	rateLimit := fs.Int("rate-limit", 100, "Requests per second per client, 0 disables")
	logLevel := fs.String("log-level", "info", "Log level (debug|info|warn|error)")
	thresholds := fs.String("thresholds", "incidence", "Cut points used for classification (incidence|prevalence)")

	if err := fs.Parse(args); err != nil {
		return appconf.Config{}, err
	}

	cfg, err := appconf.Load(*configFile)
	if err != nil {
		return appconf.Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "env":
			cfg.Env = appconf.EnvFlagToEnvironment(*env)
		case "api-keys":
			cfg.ApiKeys = appconf.SplitAPIKeys(*apiKeys)
		case "rate-limit":
			cfg.RateLimit = *rateLimit
		case "log-level":
			cfg.LogLevel = *logLevel
		case "thresholds":
			cfg.Thresholds = *thresholds
		}
	})

	return cfg, cfg.Validate()
}
