// Package tui is the terminal rendition of the password dashboard.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vaultpass/passboard/internal/service"
)

// Run starts the dashboard on the alternate screen and blocks until the user quits.
func Run(ctx context.Context, vault *service.VaultService, generator *service.GeneratorService) error {
	_, err := tea.NewProgram(
		New(ctx, vault, generator, clipboard.WriteAll),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	).Run()
	return err
}
