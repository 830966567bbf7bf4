package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"roozberooz/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(store, ctx.Generator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
