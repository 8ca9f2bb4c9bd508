package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"gitlab.com/open-soft/go-crypto-dashboard/src/config"
	"gitlab.com/open-soft/go-crypto-dashboard/src/event_subscriber"
	"gitlab.com/open-soft/go-crypto-dashboard/src/logger"
	"gitlab.com/open-soft/go-crypto-dashboard/src/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	appLogger, err := logger.NewLogger(logger.Level(cfg.Log.Level), []string{cfg.Log.Path})
	if err != nil {
		log.Fatal(fmt.Sprintf("Logger can't start: %s", err.Error()))
	}
	defer appLogger.Sync()

	container, err := config.InitServiceContainer(cfg, appLogger)
	if err != nil {
		appLogger.Error(err)
		log.Fatal(err)
	}
	defer container.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dashboard := ui.NewDashboard(ctx, ui.Dependencies{
		Logger:          appLogger,
		PriceBoard:      container.PriceBoard,
		ChartService:    container.ChartService,
		Converter:       container.Converter,
		QueryService:    container.QueryService,
		BootService:     container.BootService,
		Symbols:         container.Symbols,
		DefaultSymbol:   cfg.App.DefaultSymbol,
		Intervals:       cfg.App.Intervals,
		DefaultInterval: cfg.App.DefaultInterval,
		Assets:          cfg.App.Assets,
		DefaultFrom:     cfg.App.DefaultFrom,
		DefaultTo:       cfg.App.DefaultTo,
	})

	program := tea.NewProgram(dashboard, tea.WithAltScreen(), tea.WithContext(ctx))
	container.Subscribe(event_subscriber.UiEventSubscriber{Sender: program})

	appLogger.Info(fmt.Sprintf("Dashboard %s started, backend %s", cfg.App.Name, cfg.API.BaseURL))
	go container.PushChannel.Listen(ctx)

	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		appLogger.Error(err)
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cancel()
		os.Exit(1)
	}
	cancel()
}
