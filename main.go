package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"shellconf/cmd"
	"shellconf/internal/config"
	"shellconf/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() (exitCode int) {
	slog.SetDefault(logger.NewLogger())
	ctx := context.Background()

	// Recover from logger.Fatal panics so deferred cleanup still runs.
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(logger.FatalError); ok {
				exitCode = 1
			} else {
				panic(r)
			}
		}
	}()

	cmd.InitFlags()
	pflag.Usage = cmd.PrintUsage
	pflag.Parse()

	conf, err := config.Load()
	if err != nil {
		logger.Warn(ctx, "Ignoring unreadable configuration '%s': %v", config.Path(), err)
	}

	if err := cmd.Execute(ctx, conf); err != nil {
		logger.Error(ctx, "%v", err)
		return 1
	}
	return 0
}
