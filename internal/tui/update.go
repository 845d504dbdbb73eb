package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/uvcast/internal/constants"
	"github.com/julianstephens/uvcast/internal/forecast"
	"github.com/julianstephens/uvcast/internal/logger"
	"github.com/julianstephens/uvcast/internal/router"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case FetchResultMsg:
		m.forecast = m.forecast.OnResult(msg.Seq, msg.Entries, msg.Err)
		return m, nil

	case URLChangedMsg:
		return m.handleURLChange(msg.URL)

	case ExternalOpenedMsg:
		if msg.Err != nil {
			logger.Warn("Failed to open external link", "href", msg.Href, "error", msg.Err)
			m.notice = fmt.Sprintf("Could not open %s", msg.Href)
		} else {
			m.notice = fmt.Sprintf("Opened %s", msg.Href)
		}
		return m, nil
	}

	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		code := strings.TrimSpace(m.input.Value())
		if code == "" {
			return m, nil
		}
		m.notice = ""
		next, eff := m.forecast.Submit(code)
		m.forecast = next
		return m.apply(eff)

	case key.Matches(msg, m.keys.Back):
		h, ok := m.history.Back()
		if !ok {
			return m, nil
		}
		m.history = h
		return m, urlChangedCmd(h.Current())

	case key.Matches(msg, m.keys.Forward):
		h, ok := m.history.Forward()
		if !ok {
			return m, nil
		}
		m.history = h
		return m, urlChangedCmd(h.Current())

	case key.Matches(msg, m.keys.Home):
		return m.FollowLink(constants.HomePath)

	case key.Matches(msg, m.keys.Docs):
		return m.FollowLink(m.docsURL)
	}

	return m.updateInput(msg)
}

// FollowLink handles a link activation: internal links are pushed onto the
// history, external ones are handed to the opener.
func (m Model) FollowLink(href string) (tea.Model, tea.Cmd) {
	link, err := router.Classify(m.origin, href)
	if err != nil {
		logger.Warn("Ignoring invalid link", "href", href, "error", err)
		return m, nil
	}
	if !link.Internal {
		logger.Info("Opening external link", "href", link.Href)
		return m, openExternalCmd(m.opener, link.Href)
	}
	if !m.forecast.Routed {
		return m, nil
	}
	return m.push(link.URL)
}

// apply runs the side effect requested by a controller transition
func (m Model) apply(eff forecast.Effect) (tea.Model, tea.Cmd) {
	if eff.Kind != forecast.EffectNavigate {
		return m, m.effectCmd(eff)
	}
	u, err := router.Resolve(m.origin, eff.Path)
	if err != nil {
		logger.Error("Cannot navigate", "path", eff.Path, "error", err)
		return m, nil
	}
	return m.push(u)
}

func (m Model) push(u *url.URL) (tea.Model, tea.Cmd) {
	m.history = m.history.Push(u)
	return m, urlChangedCmd(m.history.Current())
}

// handleURLChange re-parses the location after any history change
func (m Model) handleURLChange(u *url.URL) (tea.Model, tea.Cmd) {
	route, ok := router.Parse(u)
	if !ok {
		logger.Debug("Location cleared", "url", u)
		m.forecast = m.forecast.OnRouteCleared()
		return m, nil
	}

	next, eff := m.forecast.OnRouteActivated(route.PostalCode)
	if next.Input != route.PostalCode {
		next = next.OnInputChanged(route.PostalCode)
		m.input.SetValue(route.PostalCode)
	}
	m.forecast = next
	return m, m.effectCmd(eff)
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.forecast.Input {
		m.forecast = m.forecast.OnInputChanged(v)
	}
	return m, cmd
}
