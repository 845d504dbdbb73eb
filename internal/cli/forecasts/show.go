package forecasts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/uvcast/internal/cli"
	"github.com/julianstephens/uvcast/internal/constants"
	uverrors "github.com/julianstephens/uvcast/internal/errors"
	"github.com/julianstephens/uvcast/internal/forecast"
	"github.com/julianstephens/uvcast/internal/logger"
	"github.com/julianstephens/uvcast/internal/render"
)

type ShowCmd struct {
	Code  string `arg:"" optional:"" help:"Postal code to look up. Prompts when omitted."`
	Plain bool   `help:"Print tab-separated rows without styling."`

	// prompt asks for a postal code; nil uses an interactive form
	prompt func() (string, error) `kong:"-"`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	code := strings.TrimSpace(c.Code)
	if code == "" {
		prompt := c.prompt
		if prompt == nil {
			prompt = promptPostalCode
		}
		entered, err := prompt()
		if err != nil {
			return fmt.Errorf("postal code prompt: %w", err)
		}
		code = strings.TrimSpace(entered)
	}
	if code == "" {
		return errors.New("a postal code is required")
	}

	m, _ := forecast.Init(false, nil)
	m = m.OnInputChanged(code)
	m, eff := m.Submit(code)

	entries, fetchErr := ctx.Source.Fetch(ctx.Context(), eff.PostalCode)
	m = m.OnResult(eff.Seq, entries, fetchErr)

	node := render.Render(m.State)
	out := render.Plain(node)
	if !c.Plain {
		out = render.Styled(node, 0)
	}
	fmt.Fprintln(ctx.Stdout(), out)

	if m.State.Status == constants.StatusFailure {
		logger.Debug("Forecast unavailable", "postal_code", code, "error", fetchErr)
		return uverrors.Reported(1, fmt.Errorf("forecast for %s: %w", code, fetchErr))
	}
	return nil
}

func promptPostalCode() (string, error) {
	var code string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Postal code").
				Placeholder("12345").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("postal code cannot be empty")
					}
					return nil
				}).
				Value(&code),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return code, nil
}
