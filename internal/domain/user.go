package domain

import "context"

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// ProfileUpdate is the PUT /profile payload. The password triple is only
// sent when the user is changing their password.
type ProfileUpdate struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	OldPassword     string `json:"oldPassword,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

type UserRepository interface {
	// SignUp creates a new account. It does not sign the user in.
	SignUp(ctx context.Context, name, email, password string) (*User, error)
}

type ProfileRepository interface {
	Update(ctx context.Context, update ProfileUpdate) (*User, error)
	// UpdateAvatar uploads a prepared JPEG as a multipart form
	UpdateAvatar(ctx context.Context, filename string, jpegData []byte) (*User, error)
}

type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, name, email, oldPassword, password, confirmPassword string) (*User, error)
	UpdateAvatar(ctx context.Context, imagePath string) (*User, error)
}
