package forecast

import (
	"github.com/julianstephens/uvcast/internal/logger"
	"github.com/julianstephens/uvcast/internal/models"
	"github.com/julianstephens/uvcast/internal/router"
)

// EffectKind says what the runtime must do after a transition
type EffectKind int

const (
	EffectNone EffectKind = iota
	// EffectFetch asks for exactly one GET for PostalCode, tagged with Seq
	EffectFetch
	// EffectNavigate asks the router to push Path onto the history
	EffectNavigate
)

// Effect is the side effect requested by a transition
type Effect struct {
	Kind       EffectKind
	Seq        uint64
	PostalCode string
	Path       string
}

var noEffect = Effect{Kind: EffectNone}

// Model is the whole forecast view state. Transitions take a Model by value
// and return the next one; nothing is mutated in place.
type Model struct {
	// PostalCode is the committed code the current state belongs to
	PostalCode string
	// Input is the text box content, distinct from PostalCode
	Input string
	State models.ForecastState
	// Seq identifies the latest fetch; results for older sequences are dropped
	Seq uint64
	// Routed selects the router variant where submit goes through the URL
	Routed bool
}

// Init builds the starting model. When initial carries a postal code the
// model starts Loading and the fetch effect is returned.
func Init(routed bool, initial *router.Route) (Model, Effect) {
	m := Model{Routed: routed, State: models.Idle()}
	if initial == nil || initial.PostalCode == "" {
		return m, noEffect
	}
	m.Input = initial.PostalCode
	return m.OnRouteActivated(initial.PostalCode)
}

// Submit commits postalCode. In the routed variant this only navigates and
// the fetch follows from the URL change; the sequence still advances so a
// response for the previous code cannot settle the new Loading state.
func (m Model) Submit(postalCode string) (Model, Effect) {
	m.State = models.Loading()
	if m.Routed {
		m.Seq++
		logger.Debug("Submit navigates", "postal_code", postalCode)
		return m, Effect{Kind: EffectNavigate, Path: router.Path(postalCode), PostalCode: postalCode}
	}
	return m.startFetch(postalCode)
}

// OnRouteActivated is called when the location matches /zipcode/{code}
func (m Model) OnRouteActivated(postalCode string) (Model, Effect) {
	return m.startFetch(postalCode)
}

// OnRouteCleared is called when the location does not match the route.
// The forecast is reset to Idle and any in-flight response is discarded.
func (m Model) OnRouteCleared() Model {
	m.PostalCode = ""
	m.State = models.Idle()
	m.Seq++
	return m
}

// OnInputChanged updates the text box only
func (m Model) OnInputChanged(text string) Model {
	m.Input = text
	return m
}

// OnResult applies a fetch outcome. Results for anything but the latest
// sequence are ignored. The error detail is not retained.
func (m Model) OnResult(seq uint64, entries []models.HourForecast, err error) Model {
	if seq != m.Seq {
		logger.Debug("Dropping stale forecast response", "seq", seq, "latest", m.Seq)
		return m
	}
	if !m.State.IsLoading() {
		return m
	}
	if err != nil {
		logger.Warn("Forecast failed", "seq", seq, "postal_code", m.PostalCode, "error", err)
		m.State = models.Failure()
		return m
	}
	m.State = models.Success(entries)
	return m
}

func (m Model) startFetch(postalCode string) (Model, Effect) {
	m.PostalCode = postalCode
	m.Seq++
	m.State = models.Loading()
	logger.Info("Fetching forecast", "seq", m.Seq, "postal_code", postalCode)
	return m, Effect{Kind: EffectFetch, Seq: m.Seq, PostalCode: postalCode}
}
