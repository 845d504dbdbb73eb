package tui

import (
	"context"
	"net/url"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/uvcast/internal/constants"
	"github.com/julianstephens/uvcast/internal/forecast"
	"github.com/julianstephens/uvcast/internal/logger"
	"github.com/julianstephens/uvcast/internal/router"
)

// Options configures a new TUI model
type Options struct {
	Source forecast.Source
	// Routed enables the address bar and /zipcode/{code} locations
	Routed bool
	// Location is the starting path or URL, e.g. "/zipcode/12345"
	Location string
	DocsURL  string
	// Opener hands external links to the system; nil uses OpenInBrowser
	Opener Opener
	// Context bounds outbound fetches; nil uses context.Background
	Context context.Context
}

type Model struct {
	ctx      context.Context
	source   forecast.Source
	forecast forecast.Model
	history  router.History
	origin   *url.URL
	opener   Opener
	docsURL  string
	input    textinput.Model
	keys     KeyMap
	help     help.Model
	pending  forecast.Effect
	notice   string
	quitting bool
	width    int
	height   int
}

func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opener := opts.Opener
	if opener == nil {
		opener = OpenInBrowser
	}
	docsURL := opts.DocsURL
	if docsURL == "" {
		docsURL = constants.DefaultAPIDocsURL
	}

	origin := router.Origin()
	start, err := router.Resolve(origin, opts.Location)
	if err != nil {
		logger.Warn("Ignoring invalid start location", "location", opts.Location, "error", err)
		start, _ = router.Resolve(origin, constants.HomePath)
	}

	var initial *router.Route
	if route, ok := router.Parse(start); ok {
		initial = &route
	}

	ti := textinput.New()
	ti.Placeholder = "postal code"
	ti.Prompt = "Postal code: "
	ti.CharLimit = 32
	ti.Width = 16
	ti.Focus()

	keys := DefaultKeyMap()

	m := Model{
		ctx:     ctx,
		source:  opts.Source,
		history: router.NewHistory(start),
		origin:  origin,
		opener:  opener,
		docsURL: docsURL,
		keys:    keys,
		help:    help.New(),
	}

	if opts.Routed {
		m.forecast, m.pending = forecast.Init(true, initial)
	} else {
		// no URL involvement: a start location only prefills the text box
		m.forecast, _ = forecast.Init(false, nil)
		if initial != nil {
			m.forecast = m.forecast.OnInputChanged(initial.PostalCode)
		}
		m.keys = keys.withoutRouter()
	}

	ti.SetValue(m.forecast.Input)
	m.input = ti
	return m
}

func (m Model) ShortHelp() []key.Binding {
	return m.keys.ShortHelp()
}

func (m Model) FullHelp() [][]key.Binding {
	return m.keys.FullHelp()
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.effectCmd(m.pending))
}

// Forecast exposes the current controller state
func (m Model) Forecast() forecast.Model {
	return m.forecast
}

// Location returns the address bar URL
func (m Model) Location() *url.URL {
	return m.history.Current()
}
