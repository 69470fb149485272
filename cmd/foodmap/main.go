package main

import (
	"errors"
	"fmt"
	"os"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/config"
	"codeberg.org/foodmap/client/internal/guard"
	"codeberg.org/foodmap/client/internal/i18n"
	"codeberg.org/foodmap/client/internal/logger"
	"codeberg.org/foodmap/client/internal/oauthloop"
	"codeberg.org/foodmap/client/internal/session"
	"codeberg.org/foodmap/client/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

// bad command line arguments, reported with exit status 2
type usageError struct {
	err error
}

func (e usageError) Error() string { return "invalid arguments: " + e.err.Error() }

func (e usageError) Unwrap() error { return e.err }

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var usage usageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// deferred cleanup runs before main decides the exit status
func run() error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := config.ParseClientFlags(os.Args[1:], cfg); err != nil {
		return usageError{err: err}
	}

	if !term.IsTerminal(os.Stdout.Fd()) {
		return errors.New("foodmap needs an interactive terminal")
	}

	logFile, err := logger.SetupFile(cfg.Environment, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close() //nolint:errcheck

	logger.Info("starting foodmap", "api", cfg.APIURL, "lang", cfg.Language)

	client, err := apiclient.New(apiclient.Options{
		BaseURL:           cfg.APIURL,
		Timeout:           cfg.RequestTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.RequestBurst,
		Language:          cfg.Language,
	})
	if err != nil {
		logger.ErrorErr(err, "failed to create API client")
		return fmt.Errorf("error creating API client: %w", err)
	}

	store := session.NewStore(client)

	app := tui.NewApp(tui.Deps{
		Store:        store,
		Guard:        guard.New(store, guard.DefaultLoginPath),
		API:          client,
		Printer:      i18n.Printer(cfg.Language),
		OpenURL:      oauthloop.OpenBrowser,
		OAuthTimeout: cfg.OAuthTimeout,
	})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.ErrorErr(err, "program exited with error")
		return fmt.Errorf("error running foodmap: %w", err)
	}

	logger.Info("foodmap exited")
	return nil
}
