package rest

import (
	"context"

	"gobarber-client/internal/domain"
)

type sessionRepo struct {
	client *Client
}

func NewSessionRepository(client *Client) domain.SessionRepository {
	return &sessionRepo{client: client}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *sessionRepo) SignIn(ctx context.Context, email, password string) (*domain.Session, error) {
	var session domain.Session
	err := r.client.postJSON(ctx, "/sessions", signInRequest{Email: email, Password: password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
