package usecase

import (
	"context"
	"sync"

	"gobarber-client/internal/domain"
	"gobarber-client/pkg/apperror"
	"gobarber-client/pkg/logger"
)

// authUsecase owns the one live session of the process. Consumers only see
// it through Snapshot and Subscribe; nothing else may mutate it.
type authUsecase struct {
	sessions domain.SessionRepository
	users    domain.UserRepository
	store    domain.SessionStore
	bearer   domain.BearerCarrier

	mu        sync.RWMutex
	state     domain.SessionState
	session   *domain.Session
	listeners []func(domain.SessionSnapshot)
}

func NewAuthUsecase(
	sessions domain.SessionRepository,
	users domain.UserRepository,
	store domain.SessionStore,
	bearer domain.BearerCarrier,
) domain.AuthUsecase {
	return &authUsecase{
		sessions: sessions,
		users:    users,
		store:    store,
		bearer:   bearer,
		state:    domain.SessionLoading,
	}
}

func (u *authUsecase) Restore(ctx context.Context) error {
	token, user, ok, err := u.store.ReadPersisted(ctx)
	if err != nil {
		// Treat an unreadable store like a cold start with no session
		logger.Log.Warn("could not read persisted session", "error", err)
		u.transition(domain.SessionUnauthenticated, nil)
		return err
	}
	if !ok {
		u.transition(domain.SessionUnauthenticated, nil)
		return nil
	}

	u.bearer.SetBearer(token)
	u.transition(domain.SessionAuthenticated, &domain.Session{Token: token, User: *user})
	return nil
}

func (u *authUsecase) SignIn(ctx context.Context, email, password string) error {
	session, err := u.sessions.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	if session.Token == "" {
		return apperror.API("sign-in response missing token", nil)
	}

	if err := u.store.Persist(ctx, session.Token, &session.User); err != nil {
		// Not durably saved: do not enter the authenticated state
		return err
	}

	u.bearer.SetBearer(session.Token)
	u.transition(domain.SessionAuthenticated, session)
	return nil
}

func (u *authUsecase) SignOut(ctx context.Context) error {
	if err := u.store.Clear(ctx); err != nil {
		return err
	}

	u.bearer.ClearBearer()
	u.transition(domain.SessionUnauthenticated, nil)
	return nil
}

func (u *authUsecase) SignUp(ctx context.Context, name, email, password string) error {
	// Account creation does not sign the user in; they land back on the
	// sign-in screen.
	_, err := u.users.SignUp(ctx, name, email, password)
	return err
}

func (u *authUsecase) UpdateUser(ctx context.Context, user *domain.User) error {
	u.mu.RLock()
	session := u.session
	u.mu.RUnlock()

	if session == nil {
		return apperror.Validation("no active session")
	}

	// Re-persist so the next cold start restores the fresh profile
	if err := u.store.Persist(ctx, session.Token, user); err != nil {
		return err
	}

	u.transition(domain.SessionAuthenticated, &domain.Session{Token: session.Token, User: *user})
	return nil
}

func (u *authUsecase) Snapshot() domain.SessionSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshotLocked()
}

func (u *authUsecase) Subscribe(listener func(domain.SessionSnapshot)) {
	u.mu.Lock()
	u.listeners = append(u.listeners, listener)
	u.mu.Unlock()
}

func (u *authUsecase) transition(state domain.SessionState, session *domain.Session) {
	u.mu.Lock()
	u.state = state
	u.session = session
	snapshot := u.snapshotLocked()
	listeners := make([]func(domain.SessionSnapshot), len(u.listeners))
	copy(listeners, u.listeners)
	u.mu.Unlock()

	for _, listener := range listeners {
		listener(snapshot)
	}
}

func (u *authUsecase) snapshotLocked() domain.SessionSnapshot {
	snapshot := domain.SessionSnapshot{State: u.state}
	if u.session != nil {
		user := u.session.User
		snapshot.User = &user
	}
	return snapshot
}
