package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goalpost/goalpost/internal/schedule"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.loadErr != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.loadErr)) + "\n" +
			helpStyle.Render("r: retry  q: quit") + "\n"
	}

	if !m.hasGoal {
		return titleStyle.Render("goalpost") + "\n\n" +
			"No active goal. Create one with 'goalpost goal new'.\n\n" +
			helpStyle.Render("r: reload  q: quit") + "\n"
	}

	var b strings.Builder

	header := titleStyle.Render(m.goal.Name)
	if m.goal.EndDate != "" {
		header += headerStyle.Render("deadline " + m.goal.EndDate)
	}
	b.WriteString(header + "\n\n")

	if len(m.annotations) == 0 {
		b.WriteString("No routine schedules today.\n")
	}
	for _, ann := range m.annotations {
		line := fmt.Sprintf("%s  %-22s %s", ann.Item.Time, ann.Item.Label, statusText(ann))
		style := styleFor(ann.Status)
		if m.next != nil && ann.Item.ID == m.next.Item.ID {
			style = nextStyle
			line += "  <- next"
		}
		b.WriteString(style.Render(line) + "\n")
	}

	water := m.goal.Routines.Water
	if water.Goal > 0 {
		ratio := float64(water.Completed) / float64(water.Goal)
		if ratio > 1 {
			ratio = 1
		}
		b.WriteString("\n" + fmt.Sprintf("water %d/%d ", water.Completed, water.Goal))
		b.WriteString(m.water.ViewAs(ratio) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("w: log water  r: reload  q: quit") + "\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func statusText(ann schedule.Annotation) string {
	switch ann.Status {
	case schedule.StatusCompleted:
		return "Completed Today"
	case schedule.StatusInProgress:
		return "In Progress"
	case schedule.StatusMissed:
		return "Missed"
	default:
		return ann.RemainingLabel() + " remaining"
	}
}

func styleFor(status schedule.Status) lipgloss.Style {
	switch status {
	case schedule.StatusCompleted:
		return completedStyle
	case schedule.StatusInProgress:
		return inProgressStyle
	case schedule.StatusMissed:
		return missedStyle
	default:
		return upcomingStyle
	}
}
