package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/DaanHessen/devlife/internal/content"
	"github.com/DaanHessen/devlife/internal/store"
	"github.com/DaanHessen/devlife/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, archive store.Archive, catalog content.Catalog, cfg util.Config, log zerolog.Logger) error {
	m, err := initialModel(ctx, archive, catalog, cfg, log)
	if err != nil {
		return err
	}
	program := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
