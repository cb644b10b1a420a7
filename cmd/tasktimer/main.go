package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/tasktimer/internal/cli"
	"github.com/alexanderramin/tasktimer/internal/config"
	"github.com/alexanderramin/tasktimer/internal/storage"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	app := &cli.App{
		Store:      storage.NewSessionStore(cfg.DataDir),
		State:      storage.NewStateStore(cfg.DataDir),
		Categories: config.LoadCategories(cfg.DataDir),
		Config:     cfg,
	}

	// Interactive prompts and the watch view only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
