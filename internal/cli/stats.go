package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	sum := store.Summary()
	fmt.Println("Statistics:")
	fmt.Printf("  Habits:            %d\n", sum.TotalHabits)
	fmt.Printf("  Successful days:   %d\n", sum.SuccessfulDays)
	fmt.Printf("  Unsuccessful days: %d\n", sum.UnsuccessfulDays)

	if sum.TotalHabits == 0 {
		return nil
	}

	fmt.Println()
	for _, h := range store.List() {
		if h.IsArchived {
			continue
		}
		fmt.Printf("  %-30s %s, %d missed\n",
			h.Title, formatProgress(h), store.UnsuccessfulDays(h))
	}
	return nil
}
