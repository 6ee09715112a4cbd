package rest

import (
	"context"

	"gobarber-client/internal/domain"
)

type profileRepo struct {
	client *Client
}

func NewProfileRepository(client *Client) domain.ProfileRepository {
	return &profileRepo{client: client}
}

func (r *profileRepo) Update(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	var user domain.User
	if err := r.client.putJSON(ctx, "/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *profileRepo) UpdateAvatar(ctx context.Context, filename string, jpegData []byte) (*domain.User, error) {
	var user domain.User
	err := r.client.patchMultipart(ctx, "/users/avatar", "avatar", filename, jpegData, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
