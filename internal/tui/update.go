package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"roozberooz/internal/motivation"
	"roozberooz/internal/tui/components/habitlist"
	"roozberooz/internal/validation"
)

type motivationMsg struct {
	id      string
	message string
	fresh   bool
}

// fetchMotivation asks the generator off the Update loop. The store is only
// touched when the result comes back through Update, so all mutation stays
// on the program goroutine.
func fetchMotivation(gen motivation.Generator, id string, in motivation.Input) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		out, err := gen.Generate(ctx, in)
		if err != nil {
			return motivationMsg{id: id, message: motivation.Fallback, fresh: false}
		}
		return motivationMsg{id: id, message: out.Message, fresh: true}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		h, v := docStyle.GetFrameSize()
		m.habitList.SetSize(msg.Width-h, msg.Height-v-4)
		m.archiveList.SetSize(msg.Width-h, msg.Height-v-4)
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.editingID = ""
		m.form = newHabitForm(m.habitForm)
		m.state = StateHabitForm
		m.message = ""
		return m, m.form.Init()

	case habitlist.EditHabitMsg:
		m.habitForm = formFromHabit(msg.Habit)
		m.editingID = msg.Habit.ID
		m.form = newHabitForm(m.habitForm)
		m.state = StateHabitForm
		m.message = ""
		return m, m.form.Init()

	case habitlist.CheckInMsg:
		return m.checkIn(msg.ID)

	case habitlist.ToggleMsg:
		m.store.ToggleActive(msg.ID)
		m.refreshLists()
		return m, nil

	case habitlist.ArchiveMsg:
		m.store.Archive(msg.ID)
		m.refreshLists()
		return m, nil

	case habitlist.UnarchiveMsg:
		m.store.Unarchive(msg.ID)
		m.refreshLists()
		return m, nil

	case habitlist.DeleteMsg:
		if h, ok := m.store.GetByID(msg.ID); ok {
			m.habitToDelete = h
			m.state = StateConfirmDelete
		}
		return m, nil

	case motivationMsg:
		if msg.fresh {
			m.store.SetMotivationalMessage(msg.id, msg.message)
			m.refreshLists()
		}
		m.message = msg.message
		return m, nil
	}

	switch m.state {
	case StateHabitForm:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if !m.listIsFiltering() {
			switch {
			case key.Matches(keyMsg, m.keys.Quit):
				m.quitting = true
				return m, tea.Quit
			case key.Matches(keyMsg, m.keys.Tab):
				m.state = (m.state + 1) % tabCount
				m.message = ""
				return m, nil
			case key.Matches(keyMsg, m.keys.ShiftTab):
				m.state = (m.state - 1 + tabCount) % tabCount
				m.message = ""
				return m, nil
			case key.Matches(keyMsg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHabits:
		m.habitList, cmd = m.habitList.Update(msg)
	case StateArchive:
		m.archiveList, cmd = m.archiveList.Update(msg)
	}
	return m, cmd
}

func (m Model) listIsFiltering() bool {
	// While the list filter input is open, global keys must pass through.
	switch m.state {
	case StateHabits:
		return m.habitList.Filtering()
	case StateArchive:
		return m.archiveList.Filtering()
	}
	return false
}

func (m Model) checkIn(id string) (tea.Model, tea.Cmd) {
	h, ok := m.store.CompleteDay(id)
	if !ok {
		return m, nil
	}
	m.refreshLists()

	// Serve today's cached message without calling the generator again.
	today := m.store.Today()
	if h.LastMotivation != nil && h.LastMotivation.Date == today {
		m.message = h.LastMotivation.Message
		return m, nil
	}
	if m.gen == nil {
		m.message = motivation.Fallback
		return m, nil
	}

	m.message = "..."
	return m, fetchMotivation(m.gen, id, motivation.Input{
		HabitName:     h.Title,
		DaysCompleted: h.DaysCompleted,
		TotalDays:     h.TotalDays,
		Successful:    true,
	})
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = StateHabits
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m.submitForm()
	}
	if m.form.State == huh.StateAborted {
		m.state = StateHabits
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	data := m.habitForm.toData()
	if err := validation.ValidateHabitData(data); err != nil {
		// Keep the entered values: reopen the form prefilled, with the
		// error shown above it.
		m.message = err.Error()
		m.form = newHabitForm(m.habitForm)
		m.state = StateHabitForm
		return m, m.form.Init()
	}

	if m.editingID != "" {
		m.store.Update(m.editingID, data)
	} else {
		m.store.Add(data)
	}
	m.message = ""
	m.refreshLists()
	m.state = StateHabits
	m.form = nil
	return m, nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y":
			m.store.Delete(m.habitToDelete.ID)
			m.refreshLists()
			m.state = StateArchive
		case "n", "N", "esc", "q":
			m.state = StateArchive
		}
	}
	return m, nil
}
