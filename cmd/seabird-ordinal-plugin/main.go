package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/seabird-chat/seabird-ordinal-plugin/plugin"
)

func Env(logger *slog.Logger, key string) string {
	ret, ok := os.LookupEnv(key)

	if !ok {
		logger.With(slog.Any("var", key)).Error("Required environment variable not found")
		os.Exit(1)
	}

	return ret
}

func EnvDefault(key string, def string) string {
	if ret, ok := os.LookupEnv(key); ok {
		return ret
	}
	return def
}

func main() {
	var logger *slog.Logger

	tty := isatty.IsTerminal(os.Stdout.Fd())

	level := slog.LevelInfo
	if tty {
		level = slog.LevelDebug
	}
	rawLevel := EnvDefault("LOG_LEVEL", level.String())

	var levelErr error
	if err := level.UnmarshalText([]byte(rawLevel)); err != nil {
		levelErr = err
	}

	if tty {
		logger = slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		}))
	}

	slog.SetDefault(logger)

	if levelErr != nil {
		logger.With(slog.String("value", rawLevel), slog.Any("error", levelErr)).Warn("Invalid LOG_LEVEL, using default")
	}

	config := plugin.Config{
		SeabirdHost:  Env(logger, "SEABIRD_HOST"),
		SeabirdToken: Env(logger, "SEABIRD_TOKEN"),
	}

	p, err := plugin.NewPlugin(logger, config)
	if err != nil {
		logger.With(slog.Any("error", err)).Error("failed to load backend")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = p.Run(ctx)
	if err != nil && ctx.Err() == nil {
		logger.With(slog.Any("error", err)).Error("failed to run backend")
		os.Exit(3)
	}
}
