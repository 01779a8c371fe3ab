// Package monitor is a live terminal dashboard over the note, reminder, and
// order collections. It refreshes on a timer and whenever a mutation
// invalidates a collection.
package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/cn/internal/config"
	"github.com/marcus/cn/internal/models"
	"github.com/marcus/cn/internal/store"
	"github.com/marcus/cn/internal/views"
)

const refreshInterval = 5 * time.Second

// Panel identifies a dashboard pane
type Panel int

const (
	PanelNotes Panel = iota
	PanelReminders
	PanelOrders
	panelCount
)

// Model is the main Bubble Tea model for the dashboard
type Model struct {
	Store *store.Store

	// Window dimensions
	Width  int
	Height int

	// Snapshot
	Data        RefreshDataMsg
	LastRefresh time.Time
	Err         error

	// UI state
	ActivePanel  Panel
	Scroll       map[Panel]int
	SearchMode   bool
	SearchInput  textinput.Model
	SearchQuery  string
	StatusFilter models.NoteStatus
	Grouping     views.Grouping

	changes     chan struct{}
	unsubscribe func()
}

type tickMsg time.Time

type storeChangedMsg struct{}

// New creates the dashboard model and subscribes to store invalidations
func New(s *store.Store) *Model {
	input := textinput.New()
	input.Placeholder = "search notes..."
	input.CharLimit = 120

	m := &Model{
		Store:       s,
		Scroll:      make(map[Panel]int),
		SearchInput: input,
		Grouping:    views.GroupByContact,
		changes:     make(chan struct{}, 1),
	}
	m.unsubscribe = s.Subscribe(func(string) {
		select {
		case m.changes <- struct{}{}:
		default:
		}
	})
	return m
}

// Init starts the refresh loop
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refresh(), tick(), m.waitForChange())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) refresh() tea.Cmd {
	s, query, status, grouping := m.Store, m.SearchQuery, m.StatusFilter, m.Grouping
	return func() tea.Msg {
		return FetchData(s, query, status, grouping)
	}
}

func (m *Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		<-m.changes
		return storeChangedMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tickMsg:
		// Other cn invocations may have written since the last fetch
		m.Store.Refresh()
		return m, tea.Batch(m.refresh(), tick())

	case storeChangedMsg:
		return m, tea.Batch(m.refresh(), m.waitForChange())

	case RefreshDataMsg:
		m.Data = msg
		m.LastRefresh = msg.Timestamp
		m.Err = msg.Err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.SearchMode {
		switch msg.Type {
		case tea.KeyEnter:
			m.SearchMode = false
			m.SearchQuery = m.SearchInput.Value()
			m.SearchInput.Blur()
			return m, m.refresh()
		case tea.KeyEsc:
			m.SearchMode = false
			m.SearchQuery = ""
			m.SearchInput.SetValue("")
			m.SearchInput.Blur()
			return m, m.refresh()
		}
		var cmd tea.Cmd
		m.SearchInput, cmd = m.SearchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return m, tea.Quit

	case "/":
		m.SearchMode = true
		m.SearchInput.Focus()
		return m, textinput.Blink

	case "s":
		m.StatusFilter = nextStatusFilter(m.StatusFilter)
		return m, m.refresh()

	case "g":
		m.Grouping = nextGrouping(m.Grouping)
		return m, m.refresh()

	case "r":
		m.Store.Refresh()
		return m, m.refresh()

	case "tab":
		m.ActivePanel = (m.ActivePanel + 1) % panelCount
		return m, nil

	case "up", "k":
		if m.Scroll[m.ActivePanel] > 0 {
			m.Scroll[m.ActivePanel]--
		}
		return m, nil

	case "down", "j":
		m.Scroll[m.ActivePanel]++
		return m, nil
	}

	return m, nil
}

// nextStatusFilter cycles all -> follow_up -> waiting_reply -> closed -> all
func nextStatusFilter(s models.NoteStatus) models.NoteStatus {
	switch s {
	case "":
		return models.StatusFollowUp
	case models.StatusFollowUp:
		return models.StatusWaitingReply
	case models.StatusWaitingReply:
		return models.StatusClosed
	default:
		return ""
	}
}

// nextGrouping cycles contact -> day -> week -> month -> folder -> contact
func nextGrouping(g views.Grouping) views.Grouping {
	switch g {
	case views.GroupByContact:
		return views.GroupByDay
	case views.GroupByDay:
		return views.GroupByWeek
	case views.GroupByWeek:
		return views.GroupByMonth
	case views.GroupByMonth:
		return views.GroupByFolder
	default:
		return views.GroupByContact
	}
}

// Run starts the dashboard and blocks until it exits. Filter state is
// restored from and saved back to the local config file.
func Run(s *store.Store, dataDir string) error {
	m := New(s)
	if cfg, err := config.Load(dataDir); err == nil {
		m.SearchQuery = cfg.SearchQuery
		m.SearchInput.SetValue(cfg.SearchQuery)
		if g := views.Grouping(cfg.GroupMode); views.IsValidGrouping(g) {
			m.Grouping = g
		}
		if st := models.NoteStatus(cfg.StatusFilter); models.IsValidStatus(st) {
			m.StatusFilter = st
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(*Model); ok {
		cfg, loadErr := config.Load(dataDir)
		if loadErr != nil {
			cfg = &config.Config{}
		}
		cfg.SearchQuery = fm.SearchQuery
		cfg.GroupMode = string(fm.Grouping)
		cfg.StatusFilter = string(fm.StatusFilter)
		if err := config.Save(dataDir, cfg); err != nil {
			return err
		}
	}
	return nil
}
