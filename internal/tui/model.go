package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/goalpost/goalpost/internal/models"
	"github.com/goalpost/goalpost/internal/schedule"
	"github.com/goalpost/goalpost/internal/service"
	"github.com/goalpost/goalpost/internal/timeutil"
)

// TickMsg drives the once-per-second reclassification of today's schedules.
type TickMsg time.Time

// ReloadMsg asks the dashboard to re-fetch the record, e.g. after the
// midnight reset job has run.
type ReloadMsg struct{}

type Model struct {
	svc      *service.Service
	userID   string
	timezone string

	goal        models.Goal
	hasGoal     bool
	annotations []schedule.Annotation
	next        *schedule.Annotation
	water       progress.Model
	loadErr     error

	width    int
	height   int
	quitting bool
}

func NewModel(svc *service.Service, userID, timezone string) Model {
	m := Model{
		svc:      svc,
		userID:   userID,
		timezone: timezone,
		water:    progress.New(progress.WithDefaultGradient()),
	}
	m.reload()
	return m
}

// reload re-fetches the record and recomputes annotations.
func (m *Model) reload() {
	rec, err := m.svc.Record(m.userID)
	if err != nil {
		m.loadErr = err
		return
	}
	m.loadErr = nil

	goal, ok := rec.ActiveGoal()
	m.goal = goal
	m.hasGoal = ok
	m.annotate()
}

// annotate recomputes the derived schedule state. Pure and side-effect-free,
// so running it every second is safe.
func (m *Model) annotate() {
	if !m.hasGoal {
		m.annotations = nil
		m.next = nil
		return
	}

	now, err := timeutil.NowInTimezone(m.timezone)
	if err != nil {
		now = time.Now()
	}

	items := m.goal.Routines.All()
	m.annotations = schedule.Annotate(items, now)
	if next, ok := schedule.Next(items, now); ok {
		m.next = &next
	} else {
		m.next = nil
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.water.Width = msg.Width - 20
		if m.water.Width > 40 {
			m.water.Width = 40
		}

	case TickMsg:
		m.annotate()
		return m, tickCmd()

	case ReloadMsg:
		m.reload()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.reload()
		case "w":
			if m.hasGoal {
				// Fire and forget; the next reload picks up the write
				if _, err := m.svc.LogWater(m.userID, m.goal.ID, 1); err == nil {
					m.reload()
				}
			}
		}
	}

	return m, nil
}
