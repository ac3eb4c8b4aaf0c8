package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"viralagent/types"
)

// PackageReadyMsg carries the generation outcome back into the update loop.
type PackageReadyMsg struct {
	Package *types.CampaignPackage
	Err     error
}

// generate runs the campaign generator off the UI goroutine.
func generate(g Generator, data types.ProductData) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		pkg, err := g.GenerateViralPackage(ctx, data)
		return PackageReadyMsg{Package: pkg, Err: err}
	}
}
