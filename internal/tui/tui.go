// Package tui implements the terminal client: a Bubble Tea application that
// talks to the deposito server through the adapter package. It covers the
// full user flow: welcome/login/register, the deposit list, a detail view
// with clipboard copy, create and edit forms, the portfolio summary and
// delete confirmation.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adiwinata/deposito/internal/adapter"
	"github.com/adiwinata/deposito/internal/logger"
)

// ErrUserQuit reports that the user closed the application from the UI.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func New(server adapter.ServerAdapter, logger *logger.Logger) (*TUI, error) {
	return &TUI{server: server, logger: logger}, nil
}

// Run drives the whole client session. Logout returns the user to the
// welcome screen; quitting exits the loop.
func (t *TUI) Run(ctx context.Context) error {
	for {
		model := newAppModel(ctx, t.server)
		finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
		if err != nil {
			return err
		}

		result, ok := finalModel.(appModel)
		if !ok {
			return tea.ErrProgramKilled
		}
		if result.logout {
			t.server.SetToken("")
			continue
		}
		if errors.Is(result.err, ErrUserQuit) {
			return nil
		}
		return result.err
	}
}
