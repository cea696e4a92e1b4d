package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"badgeview/internal/feed"
	"badgeview/internal/pages"
	"badgeview/internal/snapshot"
	"badgeview/internal/syncer"
)

type stubFetcher struct {
	outcome feed.Outcome
}

func (s stubFetcher) FetchAll(ctx context.Context) feed.Outcome {
	return s.outcome
}

func offlineOutcome() feed.Outcome {
	out := feed.Outcome{Payloads: map[pages.Page]feed.Payload{}, Failed: map[pages.Page]error{}}
	for _, page := range pages.All() {
		out.Failed[page] = feed.ErrNetworkUnavailable
	}
	out.Err = feed.ErrNetworkUnavailable
	return out
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := snapshot.Open(t.TempDir(), "octocat")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	state := &syncer.State{}
	return New(Options{
		Fetcher:    stubFetcher{outcome: offlineOutcome()},
		Store:      store,
		Scheduler:  syncer.NewScheduler(30*time.Minute, 5, 2, 4),
		State:      state,
		Reconciler: &syncer.Reconciler{Store: store, State: state},
	})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_NavigationWraps(t *testing.T) {
	m := newTestModel(t)

	for i := 0; i < 4; i++ {
		m, _ = step(t, m, keyMsg("right"))
	}
	if got := m.nav.Current(); got != pages.Overview {
		t.Fatalf("after 4 next presses page = %v, want Overview", got)
	}

	m, _ = step(t, m, keyMsg("left"))
	if got := m.nav.Current(); got != pages.QRCode {
		t.Fatalf("prev from Overview = %v, want QRCode", got)
	}
}

func TestModel_TickStartsDueSync(t *testing.T) {
	m := newTestModel(t)

	// Never-attempted state is due immediately.
	m, cmd := step(t, m, tickMsg(time.Now()))
	if !m.syncing {
		t.Fatal("tick with due schedule should start a sync")
	}
	if cmd == nil {
		t.Fatal("tick should return commands")
	}

	// A second tick while syncing must not start another cycle.
	m.state.LastAttempt = time.Now()
	m, _ = step(t, m, tickMsg(time.Now()))
	if !m.syncing {
		t.Fatal("syncing flag lost")
	}
}

func TestModel_SyncOutcomeReconciled(t *testing.T) {
	m := newTestModel(t)
	m.syncing = true

	m, _ = step(t, m, syncDoneMsg{outcome: offlineOutcome()})
	if m.syncing {
		t.Fatal("syncing flag not cleared")
	}
	if m.state.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", m.state.ConsecutiveFailures)
	}
	if m.state.NeverAttempted() {
		t.Fatal("LastAttempt not stamped")
	}
}

func TestModel_ManualRefreshClearsStreakAndSyncs(t *testing.T) {
	m := newTestModel(t)
	m.state.ConsecutiveFailures = 7
	m.state.LastAttempt = time.Now()

	m, cmd := step(t, m, keyMsg("r"))
	if m.state.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after manual refresh", m.state.ConsecutiveFailures)
	}
	if !m.syncing || cmd == nil {
		t.Fatal("manual refresh should start a sync immediately")
	}
}

func TestModel_ViewAlwaysHasContent(t *testing.T) {
	m := newTestModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "Overview") {
		t.Fatalf("view missing page title: %q", view)
	}
	if !strings.Contains(view, "no data cached") {
		t.Fatalf("view missing default-origin indicator: %q", view)
	}
	if !strings.Contains(view, "@octocat") {
		t.Fatalf("view missing placeholder profile: %q", view)
	}
}
