package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"sonic-miniapp/internal/adapter/notify"
	"sonic-miniapp/internal/adapter/rest"
	"sonic-miniapp/internal/adapter/tui"
	"sonic-miniapp/internal/adapter/usecase"
	"sonic-miniapp/internal/config"
	"sonic-miniapp/internal/stub"
)

// main is the entry point of the mini-app client. It loads configuration,
// optionally starts the embedded demo backend, wires the API gateway and
// usecases, then runs the terminal UI. On receiving a termination signal
// the UI and the demo backend are shut down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration. The UI owns
		// the terminal, so logs go to a file when one is configured and are
		// discarded otherwise.
		var handler slog.Handler
		var out io.Writer = io.Discard
		if cfg.Log.File != "" {
			f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				slog.Error("failed to open log file", slog.Any("error", err))
				os.Exit(1)
			}
			defer f.Close()
			out = f
		}
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Optionally run the embedded demo backend and point the client at it.
	var demoSrv *http.Server
	if cfg.HTTP.Demo {
		demoSrv = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler: stub.NewServer(logger).Router(),
		}
		go func() {
			logger.Info("demo backend listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := demoSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("demo backend error", slog.Any("error", err))
			}
		}()
		cfg.API.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTP.Port)
	}

	gw, err := rest.NewClient(cfg.API, logger)
	if err != nil {
		logger.Error("api client error", slog.Any("error", err))
		os.Exit(1)
	}

	center := notify.NewCenter(logger)
	ui := tui.NewUI()

	tabs := usecase.NewTabs(gw, ui, center, logger)
	topup := usecase.NewTopUp(gw, center, logger, cfg.Topup)
	deps := tui.Deps{
		Tabs:       tabs,
		Wizard:     usecase.NewWizard(gw, tabs, center, logger),
		TopUp:      topup,
		Actions:    usecase.NewActions(gw, tabs, topup, center, logger),
		Channels:   usecase.NewChannels(gw, tabs, center, logger),
		Payouts:    usecase.NewPayouts(gw, tabs, center, logger),
		Settings:   usecase.NewSettings(gw, tabs, center, logger),
		Placements: usecase.NewPlacements(gw, tabs, center, logger),
		Inbox:      usecase.NewInbox(gw, logger),
		Center:     center,
	}

	prog := tea.NewProgram(tui.NewModel(ctx, deps), tea.WithAltScreen(), tea.WithContext(ctx))
	ui.SetProgram(prog)

	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		logger.Error("ui error", slog.Any("error", err))
	} else {
		exitCode = 0
	}

	if demoSrv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := demoSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("demo backend shutdown error", slog.Any("error", err))
		} else {
			logger.Info("demo backend gracefully stopped")
		}
	}
}
