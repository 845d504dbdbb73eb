package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/uvcast/internal/cli"
	"github.com/julianstephens/uvcast/internal/logger"
	"github.com/julianstephens/uvcast/internal/tui"
)

type TuiCmd struct {
	Location string `arg:"" optional:"" help:"Start location, e.g. /zipcode/12345."`
	NoRouter bool   `help:"Run without the address bar; submitting fetches directly."`
}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	model := tui.NewModel(tui.Options{
		Source:   ctx.Source,
		Routed:   !c.NoRouter,
		Location: c.Location,
		DocsURL:  ctx.Config.APIDocsURL,
		Context:  ctx.Context(),
	})

	logger.Info("Starting TUI", "source", ctx.Source.Name(), "routed", !c.NoRouter, "location", c.Location)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
