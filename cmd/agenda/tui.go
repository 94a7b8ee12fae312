package main

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adso-sena/agenda/internal/api"
	"github.com/adso-sena/agenda/internal/logger"
	"github.com/adso-sena/agenda/internal/tui"
)

// runTUI opens the interactive agenda. The terminal belongs to bubbletea, so
// logs go to [log] file and are dropped when no file is configured.
func runTUI(ctx context.Context, opts *cliOptions) error {
	cfg := opts.cfg
	closer, err := logger.InitFile(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	log := logger.L
	if ctx == nil {
		ctx = context.Background()
	}
	client := api.NewFromConfig(log, cfg.API)
	log.Info("starting agenda", slog.String("api", cfg.API.BaseURL))

	model := tui.New(ctx, log, client, cfg.App)
	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
