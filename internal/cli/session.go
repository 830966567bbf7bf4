package cli

import (
	"errors"
	"fmt"

	"roozberooz/internal/models"
	"roozberooz/internal/session"
)

type LoginCmd struct {
	Identity string `arg:"" help:"Identity to sign in as (e.g. an email address)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Session.Login(c.Identity); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s\n", c.Identity)

	if err := ctx.Provider.Load(); err != nil {
		return err
	}
	profile, err := ctx.Session.Profile()
	if err == nil && !profile.SetupComplete {
		fmt.Println("Tip: run 'roozberooz profile set' to finish setting up your profile")
	}
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Session.Logout(); err != nil {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	identity, err := ctx.Session.Current()
	if errors.Is(err, session.ErrNotLoggedIn) {
		fmt.Println("Not logged in")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println(identity)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}
	profile, err := ctx.Session.Profile()
	if err != nil {
		return err
	}
	if !profile.SetupComplete {
		fmt.Println("Profile not set up yet")
		return nil
	}
	fmt.Printf("Name: %s %s\n", profile.FirstName, profile.LastName)
	if profile.Age != "" {
		fmt.Printf("Age:  %s\n", profile.Age)
	}
	return nil
}

type ProfileSetCmd struct {
	FirstName string `help:"First name."`
	LastName  string `help:"Last name."`
	Age       string `help:"Age."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.Provider.Load(); err != nil {
		return err
	}

	// Start from the stored profile so unset flags keep their values.
	profile, err := ctx.Session.Profile()
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			return err
		}
		profile = models.Profile{}
	}
	if c.FirstName != "" {
		profile.FirstName = c.FirstName
	}
	if c.LastName != "" {
		profile.LastName = c.LastName
	}
	if c.Age != "" {
		profile.Age = c.Age
	}

	if err := ctx.Session.SaveProfile(profile); err != nil {
		return err
	}
	fmt.Println("Profile saved")
	return nil
}
