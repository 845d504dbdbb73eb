package forecast

import (
	"errors"
	"testing"

	"github.com/julianstephens/uvcast/internal/constants"
	"github.com/julianstephens/uvcast/internal/models"
	"github.com/julianstephens/uvcast/internal/router"
)

var sampleEntries = []models.HourForecast{
	{Hour: models.Timestamp{Year: 2024, Month: 6, Day: 1, Hour: 14}, UV: 5},
}

func TestInit(t *testing.T) {
	t.Run("no initial route starts idle", func(t *testing.T) {
		m, eff := Init(true, nil)
		if m.State.Status != constants.StatusIdle {
			t.Errorf("state = %s, want idle", m.State)
		}
		if eff.Kind != EffectNone {
			t.Errorf("effect = %v, want none", eff.Kind)
		}
	})

	t.Run("initial route starts loading and fetches", func(t *testing.T) {
		m, eff := Init(true, &router.Route{PostalCode: "12345"})
		if m.State.Status != constants.StatusLoading {
			t.Errorf("state = %s, want loading", m.State)
		}
		if eff.Kind != EffectFetch || eff.PostalCode != "12345" || eff.Seq != m.Seq {
			t.Errorf("effect = %+v, want fetch for 12345 with seq %d", eff, m.Seq)
		}
		if m.PostalCode != "12345" || m.Input != "12345" {
			t.Errorf("model = %+v", m)
		}
	})

	t.Run("empty code is ignored", func(t *testing.T) {
		m, eff := Init(true, &router.Route{})
		if m.State.Status != constants.StatusIdle || eff.Kind != EffectNone {
			t.Errorf("Init() = %+v, %+v", m, eff)
		}
	})
}

func TestSubmitSimple(t *testing.T) {
	m, _ := Init(false, nil)
	m = m.OnInputChanged("90210")

	next, eff := m.Submit(m.Input)
	if next.State.Status != constants.StatusLoading {
		t.Fatalf("state after submit = %s, want loading", next.State)
	}
	if eff.Kind != EffectFetch || eff.PostalCode != "90210" {
		t.Fatalf("effect = %+v, want fetch for 90210", eff)
	}
	if m.State.Status != constants.StatusIdle {
		t.Error("Submit() modified the receiver")
	}

	done := next.OnResult(eff.Seq, sampleEntries, nil)
	if done.State.Status != constants.StatusSuccess {
		t.Fatalf("state after result = %s, want success", done.State)
	}
	if len(done.State.Entries) != 1 || done.State.Entries[0] != sampleEntries[0] {
		t.Errorf("entries = %+v", done.State.Entries)
	}

	failed := next.OnResult(eff.Seq, nil, ErrTransport)
	if failed.State.Status != constants.StatusFailure {
		t.Errorf("state after error = %s, want failure", failed.State)
	}
	if failed.State.Entries != nil {
		t.Error("failure state should carry no entries")
	}
}

func TestSubmitRouted(t *testing.T) {
	m, _ := Init(true, nil)

	next, eff := m.Submit("90210")
	if next.State.Status != constants.StatusLoading {
		t.Errorf("state after submit = %s, want loading", next.State)
	}
	if eff.Kind != EffectNavigate || eff.Path != "/zipcode/90210" {
		t.Fatalf("effect = %+v, want navigate to /zipcode/90210", eff)
	}
	if next.Seq <= m.Seq {
		t.Error("routed submit should advance the sequence")
	}

	activated, fetch := next.OnRouteActivated("90210")
	if fetch.Kind != EffectFetch || fetch.PostalCode != "90210" {
		t.Fatalf("effect = %+v, want fetch", fetch)
	}
	if activated.PostalCode != "90210" || activated.State.Status != constants.StatusLoading {
		t.Errorf("model = %+v", activated)
	}
}

func TestOnResultIgnoresStaleResponses(t *testing.T) {
	m, _ := Init(false, nil)
	m, first := m.Submit("11111")
	m, second := m.Submit("22222")

	if second.Seq <= first.Seq {
		t.Fatalf("sequence did not increase: %d then %d", first.Seq, second.Seq)
	}

	// the older response arrives last and must not win
	m = m.OnResult(second.Seq, sampleEntries, nil)
	m = m.OnResult(first.Seq, nil, errors.New("late failure"))

	if m.State.Status != constants.StatusSuccess {
		t.Errorf("state = %s, want success from the latest request", m.State)
	}
	if m.PostalCode != "22222" {
		t.Errorf("postal code = %q, want 22222", m.PostalCode)
	}
}

func TestRoutedSubmitDropsPreviousResponse(t *testing.T) {
	m, first := Init(true, &router.Route{PostalCode: "11111"})
	m, nav := m.Submit("22222")
	if nav.Kind != EffectNavigate {
		t.Fatalf("effect = %+v, want navigate", nav)
	}

	// the fetch for 11111 lands before the URL change for 22222
	m = m.OnResult(first.Seq, sampleEntries, nil)
	if m.State.Status != constants.StatusLoading {
		t.Fatalf("state = %s, want loading until 22222 resolves", m.State)
	}

	m, second := m.OnRouteActivated("22222")
	m = m.OnResult(second.Seq, nil, ErrTransport)
	if m.State.Status != constants.StatusFailure || m.PostalCode != "22222" {
		t.Errorf("model = %+v, want failure for 22222", m)
	}
}

func TestOnResultWhileNotLoading(t *testing.T) {
	m, eff := Init(false, nil)
	m, eff = m.Submit("12345")
	m = m.OnResult(eff.Seq, sampleEntries, nil)

	// a duplicate delivery for the same sequence changes nothing
	again := m.OnResult(eff.Seq, nil, ErrDecode)
	if again.State.Status != constants.StatusSuccess {
		t.Errorf("state = %s, want success", again.State)
	}
}

func TestOnRouteCleared(t *testing.T) {
	m, eff := Init(true, &router.Route{PostalCode: "12345"})
	m = m.OnInputChanged("123")

	cleared := m.OnRouteCleared()
	if cleared.PostalCode != "" {
		t.Errorf("postal code = %q, want empty", cleared.PostalCode)
	}
	if cleared.State.Status != constants.StatusIdle {
		t.Errorf("state = %s, want idle", cleared.State)
	}
	if cleared.Input != "123" {
		t.Errorf("input = %q, clearing the route should keep the text box", cleared.Input)
	}

	// the in-flight response for 12345 is dropped
	late := cleared.OnResult(eff.Seq, sampleEntries, nil)
	if late.State.Status != constants.StatusIdle {
		t.Errorf("state after late response = %s, want idle", late.State)
	}
}

func TestOnInputChanged(t *testing.T) {
	m, _ := Init(true, nil)
	m, eff := m.Submit("12345")
	m, eff = m.OnRouteActivated("12345")
	m = m.OnResult(eff.Seq, sampleEntries, nil)

	typed := m.OnInputChanged("9")
	if typed.Input != "9" {
		t.Errorf("input = %q, want 9", typed.Input)
	}
	if typed.State.Status != constants.StatusSuccess || typed.PostalCode != "12345" || typed.Seq != m.Seq {
		t.Errorf("OnInputChanged() touched forecast state: %+v", typed)
	}
}

func TestSingleSubmissionReachableStates(t *testing.T) {
	outcomes := []error{nil, ErrTransport, ErrDecode}
	for _, outcome := range outcomes {
		m, _ := Init(false, nil)
		seen := []constants.Status{m.State.Status}

		m, eff := m.Submit("90210")
		seen = append(seen, m.State.Status)

		m = m.OnResult(eff.Seq, sampleEntries, outcome)
		seen = append(seen, m.State.Status)

		want := constants.StatusSuccess
		if outcome != nil {
			want = constants.StatusFailure
		}
		if seen[0] != constants.StatusIdle || seen[1] != constants.StatusLoading || seen[2] != want {
			t.Errorf("outcome %v: states = %v, want idle, loading, %s", outcome, seen, want)
		}
	}
}

func TestSuccessDoesNotAliasEntries(t *testing.T) {
	entries := []models.HourForecast{{UV: 1}}
	m, eff := Init(false, nil)
	m, eff = m.Submit("1")
	m = m.OnResult(eff.Seq, entries, nil)

	entries[0].UV = 99
	if m.State.Entries[0].UV != 1 {
		t.Error("success state shares its backing array with the caller")
	}
}
