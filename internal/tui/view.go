package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateArchive:
		content = docStyle.Render(m.archiveList.View())
	case StateStats:
		content = docStyle.Render(m.viewStats())
	case StateHabitForm:
		if m.message != "" {
			return lipgloss.JoinVertical(lipgloss.Left,
				dangerStyle.Render(m.message), m.form.View())
		}
		return m.form.View()
	case StateConfirmDelete:
		return m.viewConfirmDelete()
	}

	sections := []string{m.viewTabs(), content}
	if m.message != "" {
		sections = append(sections, messageStyle.Render(m.message))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Archive", "Stats"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStats() string {
	sum := m.store.Summary()

	rows := []string{
		fmt.Sprintf("%s %s",
			statLabelStyle.Render("Habits:            "),
			statValueStyle.Render(fmt.Sprintf("%d", sum.TotalHabits))),
		fmt.Sprintf("%s %s",
			statLabelStyle.Render("Successful days:   "),
			statValueStyle.Render(fmt.Sprintf("%d", sum.SuccessfulDays))),
		fmt.Sprintf("%s %s",
			statLabelStyle.Render("Unsuccessful days: "),
			statValueStyle.Render(fmt.Sprintf("%d", sum.UnsuccessfulDays))),
		"",
	}

	for _, h := range m.store.List() {
		if h.IsArchived {
			continue
		}
		rows = append(rows, fmt.Sprintf("%-30s %d/%d days, %d missed",
			h.Title, h.DaysCompleted, h.TotalDays, m.store.UnsuccessfulDays(h)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q permanently?", m.habitToDelete.Title)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
