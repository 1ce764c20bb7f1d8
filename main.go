package main

import (
	"context"
	"fmt"
	"os"

	"gosiwon-finder/commands"
	"gosiwon-finder/config"
	"gosiwon-finder/utils"
)

func main() {
	cfg := config.Load()
	logger := utils.NewLoggerWithLevel(cfg.LogLevel)
	defer logger.Sync()

	app := &commands.App{Config: cfg, Logger: logger}
	if err := commands.RootCmd(app).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}
