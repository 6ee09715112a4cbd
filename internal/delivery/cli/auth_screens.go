package cli

import (
	"context"
	"fmt"

	"gobarber-client/pkg/validation"
)

func (a *App) authScreen(ctx context.Context) error {
	fmt.Fprintln(a.out, "\nGoBarber | sign in to continue")
	fmt.Fprintln(a.out, "  signin   sign in with e-mail and password")
	fmt.Fprintln(a.out, "  signup   create a new account")
	fmt.Fprintln(a.out, "  quit     exit")

	command, err := a.prompt("command")
	if err != nil {
		return err
	}

	switch command {
	case "signin":
		return a.signIn(ctx)
	case "signup":
		return a.signUp(ctx)
	case "quit":
		return errQuit
	case "":
		return nil
	}
	fmt.Fprintf(a.out, "unknown command %q\n", command)
	return nil
}

func (a *App) signIn(ctx context.Context) error {
	email, err := a.prompt("e-mail")
	if err != nil {
		return err
	}
	password, err := a.prompt("password")
	if err != nil {
		return err
	}

	form := validation.SignInForm{Email: email, Password: password}
	if err := a.validate.Struct(form); err != nil {
		a.showFieldErrors(err)
		return nil
	}

	if err := a.auth.SignIn(ctx, email, password); err != nil {
		a.alert("Sign-in failed", err)
		return nil
	}

	if user := a.auth.Snapshot().User; user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Name)
	}
	return nil
}

func (a *App) signUp(ctx context.Context) error {
	name, err := a.prompt("name")
	if err != nil {
		return err
	}
	email, err := a.prompt("e-mail")
	if err != nil {
		return err
	}
	password, err := a.prompt("password")
	if err != nil {
		return err
	}

	form := validation.SignUpForm{Name: name, Email: email, Password: password}
	if err := a.validate.Struct(form); err != nil {
		a.showFieldErrors(err)
		return nil
	}

	if err := a.auth.SignUp(ctx, name, email, password); err != nil {
		a.alert("Sign-up failed", err)
		return nil
	}

	fmt.Fprintln(a.out, "Account created! You can now sign in.")
	return nil
}
