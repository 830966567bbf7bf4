package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"roozberooz/internal/models"
)

type AddHabitMsg struct{}

type EditHabitMsg struct {
	Habit models.Habit
}

type CheckInMsg struct {
	ID string
}

type ToggleMsg struct {
	ID string
}

type ArchiveMsg struct {
	ID string
}

type UnarchiveMsg struct {
	ID string
}

type DeleteMsg struct {
	ID string
}

type Item struct {
	Habit models.Habit
}

func (i Item) Title() string {
	h := i.Habit
	switch {
	case h.IsArchived:
		return "📦 " + h.Title
	case !h.IsActive:
		return "⏸ " + h.Title + " (paused)"
	case h.DaysCompleted >= h.TotalDays:
		return "🏆 " + h.Title
	default:
		return h.Title
	}
}

func (i Item) Description() string {
	h := i.Habit
	desc := fmt.Sprintf("%d/%d days", h.DaysCompleted, h.TotalDays)
	if h.Strategy != models.StrategyNone {
		desc += " | " + string(h.Strategy)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Habit.Title }

type KeyMap struct {
	Add     key.Binding
	Edit    key.Binding
	CheckIn key.Binding
	Pause   key.Binding
	Archive key.Binding
	Restore key.Binding
	Delete  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		CheckIn: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "check in"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause/resume"),
		),
		Archive: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "archive"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

// Model renders one list of habits. The same component serves both the
// active and the archive tab; archived controls apply the inverse actions.
type Model struct {
	list     list.Model
	keys     KeyMap
	archived bool
}

func New(habits []models.Habit, archived bool, width, height int) Model {
	l := list.New(toItems(habits), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		if archived {
			return []key.Binding{keys.Restore, keys.Delete}
		}
		return []key.Binding{keys.Add, keys.CheckIn, keys.Edit, keys.Pause, keys.Archive}
	}
	l.AdditionalFullHelpKeys = l.AdditionalShortHelpKeys

	return Model{list: l, keys: keys, archived: archived}
}

func toItems(habits []models.Habit) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{Habit: h}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.list.SetItems(toItems(habits))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		selected, hasSelection := m.list.SelectedItem().(Item)

		if m.archived {
			switch {
			case key.Matches(msg, m.keys.Restore):
				if hasSelection {
					return m, func() tea.Msg { return UnarchiveMsg{ID: selected.Habit.ID} }
				}
			case key.Matches(msg, m.keys.Delete):
				if hasSelection {
					return m, func() tea.Msg { return DeleteMsg{ID: selected.Habit.ID} }
				}
			}
			break
		}

		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Edit):
			if hasSelection {
				return m, func() tea.Msg { return EditHabitMsg{Habit: selected.Habit} }
			}
		case key.Matches(msg, m.keys.CheckIn):
			if hasSelection {
				return m, func() tea.Msg { return CheckInMsg{ID: selected.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Pause):
			if hasSelection {
				return m, func() tea.Msg { return ToggleMsg{ID: selected.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Archive):
			if hasSelection {
				return m, func() tea.Msg { return ArchiveMsg{ID: selected.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		if m.archived {
			return "\n  No archived habits."
		}
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

// Filtering reports whether the list's filter input is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
