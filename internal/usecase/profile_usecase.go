package usecase

import (
	"context"
	"fmt"
	"os"

	"gobarber-client/internal/domain"
	"gobarber-client/pkg/avatar"
	"gobarber-client/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// avatarMaxDim bounds uploaded avatars; the API serves them at small sizes
// so anything larger is wasted upload time on a mobile connection.
const avatarMaxDim = 512

type profileUsecase struct {
	profiles domain.ProfileRepository
	auth     domain.AuthUsecase
	validate *validator.Validate
}

func NewProfileUsecase(
	profiles domain.ProfileRepository,
	auth domain.AuthUsecase,
	validate *validator.Validate,
) domain.ProfileUsecase {
	return &profileUsecase{
		profiles: profiles,
		auth:     auth,
		validate: validate,
	}
}

// UpdateProfile validates the form, sends the update and replaces the
// session's user with the server's response. Validation failures are
// returned raw so the screen boundary can map them to field errors.
func (u *profileUsecase) UpdateProfile(ctx context.Context, name, email, oldPassword, password, confirmPassword string) (*domain.User, error) {
	form := validation.ProfileForm{
		Name:            name,
		Email:           email,
		OldPassword:     oldPassword,
		Password:        password,
		ConfirmPassword: confirmPassword,
	}
	if err := u.validate.Struct(form); err != nil {
		return nil, err
	}

	update := domain.ProfileUpdate{
		Name:  name,
		Email: email,
	}
	if password != "" {
		update.OldPassword = oldPassword
		update.Password = password
		update.ConfirmPassword = confirmPassword
	}

	user, err := u.profiles.Update(ctx, update)
	if err != nil {
		return nil, err
	}

	if err := u.auth.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *profileUsecase) UpdateAvatar(ctx context.Context, imagePath string) (*domain.User, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, fmt.Errorf("open avatar image: %w", err)
	}
	defer file.Close()

	jpegData, err := avatar.Prepare(file, avatarMaxDim)
	if err != nil {
		return nil, err
	}

	// The API names the upload after the owning user
	filename := "avatar.jpg"
	if snap := u.auth.Snapshot(); snap.User != nil {
		filename = snap.User.ID + ".jpg"
	}
	user, err := u.profiles.UpdateAvatar(ctx, filename, jpegData)
	if err != nil {
		return nil, err
	}

	if err := u.auth.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
