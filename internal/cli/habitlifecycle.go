package cli

import "fmt"

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID (or unambiguous prefix)."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}
	if h.IsArchived {
		return fmt.Errorf("%s is archived; unarchive it first", h.Title)
	}

	store.ToggleActive(h.ID)
	h, _ = store.GetByID(h.ID)
	fmt.Printf("%s is now %s\n", h.Title, formatStatus(h))
	return nil
}

type HabitArchiveCmd struct {
	ID string `arg:"" help:"Habit ID (or unambiguous prefix)."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}

	store.Archive(h.ID)
	fmt.Printf("Archived habit: %s\n", h.Title)
	return nil
}

type HabitUnarchiveCmd struct {
	ID string `arg:"" help:"Habit ID (or unambiguous prefix)."`
}

func (c *HabitUnarchiveCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}

	store.Unarchive(h.ID)
	fmt.Printf("Restored habit: %s\n", h.Title)
	return nil
}

type HabitDeleteCmd struct {
	ID    string `arg:"" help:"Habit ID (or unambiguous prefix)."`
	Force bool   `short:"f" help:"Delete without confirmation."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	store, err := ctx.OpenStore()
	if err != nil {
		return err
	}

	h, err := resolveHabit(store, c.ID)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Delete %q permanently? [y/N] ", h.Title)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	store.Delete(h.ID)
	fmt.Printf("Deleted habit: %s\n", h.Title)
	return nil
}
