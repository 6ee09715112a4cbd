package cli

import (
	"context"
	"fmt"
)

func (a *App) editProfile(ctx context.Context) error {
	current := a.auth.Snapshot().User

	fmt.Fprintln(a.out, "Leave a field empty to keep the current value; leave the new password empty to keep your password.")
	name, err := a.prompt(fmt.Sprintf("name [%s]", current.Name))
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}
	email, err := a.prompt(fmt.Sprintf("e-mail [%s]", current.Email))
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}
	oldPassword, err := a.prompt("current password")
	if err != nil {
		return err
	}
	password, err := a.prompt("new password")
	if err != nil {
		return err
	}
	confirmPassword, err := a.prompt("confirm new password")
	if err != nil {
		return err
	}

	_, err = a.profile.UpdateProfile(ctx, name, email, oldPassword, password, confirmPassword)
	if err != nil {
		if isValidationError(err) {
			a.showFieldErrors(err)
			return nil
		}
		a.alert("Profile update failed, please check your data and try again", err)
		return nil
	}

	fmt.Fprintln(a.out, "Profile updated!")
	return nil
}

func (a *App) uploadAvatar(ctx context.Context) error {
	path, err := a.prompt("image path (jpeg/png)")
	if err != nil {
		return err
	}

	if _, err := a.profile.UpdateAvatar(ctx, path); err != nil {
		a.alert("Avatar update failed", err)
		return nil
	}

	fmt.Fprintln(a.out, "Avatar updated!")
	return nil
}
