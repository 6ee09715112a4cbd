package rest

import (
	"context"

	"gobarber-client/internal/domain"
)

type userRepo struct {
	client *Client
}

func NewUserRepository(client *Client) domain.UserRepository {
	return &userRepo{client: client}
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *userRepo) SignUp(ctx context.Context, name, email, password string) (*domain.User, error) {
	var user domain.User
	err := r.client.postJSON(ctx, "/users", signUpRequest{Name: name, Email: email, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
