package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophgate/internal/common"
	"github.com/dmitrijs2005/gophgate/internal/ui"
	"github.com/dmitrijs2005/gophgate/internal/ui/termui"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

type prompt struct {
	field  string
	label  string
	secret bool
}

var loginPrompts = []prompt{
	{field: ui.FieldLoginEmail, label: "Email"},
	{field: ui.FieldLoginPassword, label: "Password", secret: true},
}

var registerPrompts = []prompt{
	{field: ui.FieldRegisterName, label: "Name"},
	{field: ui.FieldRegisterEmail, label: "Email"},
	{field: ui.FieldRegisterPassword, label: "Password", secret: true},
}

// fill clears form, then reads one value per prompt into it. Each field is
// checked as soon as it is left, the way a browser fires blur.
func (a *App) fill(form *termui.Form, prompts []prompt) error {
	form.Reset()
	for _, p := range prompts {
		value, err := a.readValue(p)
		if err != nil {
			return err
		}

		f := form.Input(p.field)
		f.SetValue(value)
		a.forms.Blur(f)
		if f.Invalid() {
			printlnFn("(required)")
		}
	}
	return nil
}

func (a *App) readValue(p prompt) (string, error) {
	if !p.secret || !a.secretInput {
		return getSimpleText(a.reader, p.label, a.out)
	}

	pw, err := getPassword(p.label, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Login fills the login form and submits it. Wrong credentials end up as a
// notice; only storage and input errors are returned.
func (a *App) Login(ctx context.Context) error {
	if err := a.fill(a.page.LoginForm, loginPrompts); err != nil {
		return err
	}
	return a.forms.SubmitLogin(ctx, a.page.LoginForm)
}

// Register fills the register form and submits it.
func (a *App) Register(ctx context.Context) error {
	if err := a.fill(a.page.RegisterForm, registerPrompts); err != nil {
		return err
	}
	return a.forms.SubmitRegister(ctx, a.page.RegisterForm)
}

// Logout ends the session; the dialog opens again.
func (a *App) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Show prints the main content region if it is visible.
func (a *App) Show(ctx context.Context) error {
	if a.page.MainContent.Hidden() {
		printlnFn("Nothing to show.")
		return nil
	}
	printlnFn(a.page.Greeting.Text())
	printlnFn(protectedContent)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	printlnFn(fmt.Sprintf("Logged in as %s", a.session.DisplayName()))
	return nil
}
