package cli

import "fmt"

type HabitListCmd struct {
	Archived bool `short:"a" help:"Show archived habits instead of active ones."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	var shown int
	for _, h := range store.List() {
		if h.IsArchived != c.Archived {
			continue
		}
		if shown == 0 {
			if c.Archived {
				fmt.Println("Archived habits:")
			} else {
				fmt.Println("Habits:")
			}
		}
		shown++

		fmt.Printf("  [%s] %s - %s (%s)\n",
			formatStatus(h), h.Title, formatProgress(h), formatStrategy(h))
		fmt.Printf("      ID: %s\n", h.ID)
	}

	if shown == 0 {
		if c.Archived {
			fmt.Println("No archived habits")
		} else {
			fmt.Println("No habits found")
		}
	}
	return nil
}
