package tui

import (
	"fmt"
	"net/url"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/uvcast/internal/forecast"
	"github.com/julianstephens/uvcast/internal/models"
)

// FetchResultMsg delivers the outcome of one outbound request
type FetchResultMsg struct {
	Seq     uint64
	Entries []models.HourForecast
	Err     error
}

// URLChangedMsg is sent after every history change (push, back, forward)
type URLChangedMsg struct {
	URL *url.URL
}

// ExternalOpenedMsg reports the result of handing a link to the system
type ExternalOpenedMsg struct {
	Href string
	Err  error
}

// effectCmd turns a controller effect into a command. Navigation is handled
// in Update because it changes the history before the URL change is delivered.
func (m Model) effectCmd(eff forecast.Effect) tea.Cmd {
	switch eff.Kind {
	case forecast.EffectFetch:
		return fetchCmd(m, eff)
	default:
		return nil
	}
}

// errNoSource settles a fetch when the model was built without a source
var errNoSource = fmt.Errorf("%w: no forecast source configured", forecast.ErrTransport)

func fetchCmd(m Model, eff forecast.Effect) tea.Cmd {
	if m.source == nil {
		return func() tea.Msg {
			return FetchResultMsg{Seq: eff.Seq, Err: errNoSource}
		}
	}
	ctx, src := m.ctx, m.source
	return func() tea.Msg {
		entries, err := src.Fetch(ctx, eff.PostalCode)
		return FetchResultMsg{Seq: eff.Seq, Entries: entries, Err: err}
	}
}

func urlChangedCmd(u *url.URL) tea.Cmd {
	return func() tea.Msg {
		return URLChangedMsg{URL: u}
	}
}

func openExternalCmd(open Opener, href string) tea.Cmd {
	return func() tea.Msg {
		return ExternalOpenedMsg{Href: href, Err: open(href)}
	}
}
