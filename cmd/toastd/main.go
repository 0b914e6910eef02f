package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/toastkit/pkg/config"
	"github.com/dmitrymomot/toastkit/pkg/httpfeed"
	"github.com/dmitrymomot/toastkit/pkg/httpserver"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/theme"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

type appConfig struct {
	LogLevel   slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string     `env:"LOG_FORMAT" envDefault:"json"`
	ThemePath  string     `env:"THEME_PATH"`
	StackLimit int        `env:"STACK_LIMIT" envDefault:"5"`
	FeedBuffer int        `env:"FEED_BUFFER" envDefault:"8"`
}

func main() {
	var appCfg appConfig
	config.MustLoad(&appCfg)

	var srvCfg httpserver.Config
	config.MustLoad(&srvCfg)

	log := logger.New(
		logger.WithLevel(appCfg.LogLevel),
		logger.WithFormat(logger.Format(appCfg.LogFormat)),
		logger.WithAttr(slog.String("service", "toastd")),
	)
	logger.SetAsDefault(log)

	dispatcher := toast.New(
		toast.WithLogger(log),
		toast.WithFeedBuffer(appCfg.FeedBuffer),
	)
	defer dispatcher.Close()

	routeOpts := []httpfeed.RouterOption{
		httpfeed.WithLogger(log),
		httpfeed.WithRenderOptions(toast.WithStackLimit(appCfg.StackLimit)),
	}
	if appCfg.ThemePath != "" {
		t, err := theme.Load(appCfg.ThemePath)
		if err != nil {
			log.Error("failed to load theme", logger.Error(err))
			os.Exit(1)
		}
		routeOpts = append(routeOpts, httpfeed.WithTheme(t))
	}

	ctx := context.Background()

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Mount("/", httpfeed.Routes(dispatcher, routeOpts...))

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("notification feed listening", slog.String("addr", srvCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("notification feed stopped")
		}),
	)

	if err := srv.Run(ctx, r); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
