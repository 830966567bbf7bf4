package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"roozberooz/internal/habits"
	"roozberooz/internal/models"
	"roozberooz/internal/motivation"
	"roozberooz/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateArchive
	StateStats
	StateHabitForm
	StateConfirmDelete
)

// tabCount is the number of top-level tabs cycled with tab/shift+tab.
const tabCount = 3

type HabitFormModel struct {
	Title    string
	Days     string
	Strategy string
	Target   string
	Goal     string
	Triggers string
	Reminder string
}

type Model struct {
	store         *habits.Store
	gen           motivation.Generator
	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	archiveList   habitlist.Model
	form          *huh.Form
	habitForm     *HabitFormModel
	editingID     string
	habitToDelete models.Habit
	message       string
	quitting      bool
	width         int
	height        int
}

func NewModel(store *habits.Store, gen motivation.Generator) Model {
	m := Model{
		store: store,
		gen:   gen,
		state: StateHabits,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
	m.habitList = habitlist.New(nil, false, 0, 0)
	m.archiveList = habitlist.New(nil, true, 0, 0)
	m.refreshLists()
	return m
}

func (m *Model) refreshLists() {
	var active, archived []models.Habit
	for _, h := range m.store.List() {
		if h.IsArchived {
			archived = append(archived, h)
		} else {
			active = append(active, h)
		}
	}
	m.habitList.SetHabits(active)
	m.archiveList.SetHabits(archived)
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit").
				Prompt("> ").
				Value(&f.Title),
			huh.NewSelect[string]().
				Title("Strategy").
				Options(
					huh.NewOption("No strategy", string(models.StrategyNone)),
					huh.NewOption("21/90 rule", string(models.Strategy2190)),
					huh.NewOption("40-day rule", string(models.Strategy40Day)),
					huh.NewOption("2-minute rule", string(models.StrategyTwoMinute)),
					huh.NewOption("If-then planning", string(models.StrategyIfThen)),
				).
				Value(&f.Strategy),
			huh.NewInput().
				Title("Target days (blank for the strategy default)").
				Prompt("> ").
				Value(&f.Days),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("What does this habit mean to you?").
				Prompt("> ").
				Value(&f.Goal),
			huh.NewInput().
				Title("Triggers").
				Prompt("> ").
				Value(&f.Triggers),
			huh.NewInput().
				Title("Reminder time (HH:MM, optional)").
				Prompt("> ").
				Value(&f.Reminder),
		),
	)
}

// toData converts the string-valued form into habit input. Unparsable
// numbers fall back to zero, meaning "not supplied".
func (f *HabitFormModel) toData() models.NewHabitData {
	days, _ := strconv.Atoi(f.Days)
	strategy := models.Strategy(f.Strategy)
	if strategy == "" {
		strategy = models.StrategyNone
	}

	data := models.NewHabitData{
		Title:           f.Title,
		GoalDescription: f.Goal,
		Triggers:        f.Triggers,
		Strategy:        strategy,
		TotalDaysInput:  days,
		StrategyDetails: models.StrategyDetails{
			ReminderTime: f.Reminder,
		},
	}
	if strategy == models.Strategy2190 {
		target, _ := strconv.Atoi(f.Target)
		data.StrategyDetails.Rule2190 = &models.Rule2190Details{TargetDays: target}
	}
	return data
}

func formFromHabit(h models.Habit) *HabitFormModel {
	f := &HabitFormModel{
		Title:    h.Title,
		Days:     strconv.Itoa(h.TotalDays),
		Strategy: string(h.Strategy),
		Goal:     h.GoalDescription,
		Triggers: h.Triggers,
		Reminder: h.StrategyDetails.ReminderTime,
	}
	if d := h.StrategyDetails.Rule2190; d != nil && d.TargetDays > 0 {
		f.Target = strconv.Itoa(d.TargetDays)
	}
	return f
}

func (m Model) ShortHelp() []key.Binding {
	return []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}
