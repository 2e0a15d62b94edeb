package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gkoster9x/ApocalypseLogsApps/internal/gemini"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/journal"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/store"
	"github.com/gkoster9x/ApocalypseLogsApps/internal/util"
)

// Run boots the TUI program and blocks until it exits.
func Run(ctx context.Context, st *journal.State, db *store.Store, ai gemini.Assistant, cfg util.Config) error {
	m := initialModel(ctx, st, db, ai, cfg)
	program := tea.NewProgram(m, tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
