package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"badgeview/internal/feed"
	"badgeview/internal/pages"
	"badgeview/internal/snapshot"
	"badgeview/internal/syncer"
)

const tickEvery = time.Second

// tickMsg drives the scheduler poll. Navigation keys are handled the
// moment they arrive; a due sync only ever starts from a tick, so a
// page turn is never queued behind network work.
type tickMsg time.Time

// syncDoneMsg delivers a finished fetch cycle back into the update
// loop, where the reconciler folds it into the store.
type syncDoneMsg struct {
	outcome feed.Outcome
}

// Model is the root application state: the badge's control loop
// expressed as a Bubble Tea program. All mutation happens inside
// Update; the fetch client is the only thing that runs outside it, and
// it communicates exclusively through messages.
type Model struct {
	ctx     context.Context
	fetcher feed.Fetcher
	store   *snapshot.Store
	sched   syncer.Scheduler
	state   *syncer.State
	rec     *syncer.Reconciler

	nav  pages.Navigator
	keys keyMap
	help help.Model

	width   int
	height  int
	ready   bool
	syncing bool
	now     time.Time
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:     ctx,
		fetcher: opts.Fetcher,
		store:   opts.Store,
		sched:   opts.Scheduler,
		state:   opts.State,
		rec:     opts.Reconciler,
		keys:    defaultKeyMap(),
		help:    help.New(),
		now:     time.Now(),
	}
}

// Init fires an immediate tick so the first sync check happens right
// at startup instead of one interval in.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return tickMsg(time.Now()) }
}

// Update is the single mutation point for navigation, sync state, and
// the snapshot store.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		var cmds []tea.Cmd
		if !m.syncing && m.sched.Due(*m.state, m.now, false) {
			m.syncing = true
			cmds = append(cmds, m.syncCmd())
		}
		cmds = append(cmds, nextTick())
		return m, tea.Batch(cmds...)

	case syncDoneMsg:
		m.syncing = false
		m.rec.Apply(msg.outcome, time.Now())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.nav.Next()
		case key.Matches(msg, m.keys.Prev):
			m.nav.Prev()
		case key.Matches(msg, m.keys.Refresh):
			// Manual refresh clears the failure streak so a backed-off
			// cadence restarts from the base interval.
			m.state.ClearFailures()
			if !m.syncing {
				m.syncing = true
				return m, m.syncCmd()
			}
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// syncCmd runs one fetch cycle off the update loop. The client bounds
// every request with its own timeout, so the command always finishes.
func (m Model) syncCmd() tea.Cmd {
	ctx, fetcher := m.ctx, m.fetcher
	return func() tea.Msg {
		return syncDoneMsg{outcome: fetcher.FetchAll(ctx)}
	}
}

func nextTick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
