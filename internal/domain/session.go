package domain

import "context"

// Session pairs a signed-in user with its opaque bearer token. At every
// observable point either both halves are set or neither is.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SessionState int

const (
	SessionLoading SessionState = iota
	SessionUnauthenticated
	SessionAuthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	}
	return "unknown"
}

// SessionSnapshot is the read-only view consumers get of the session.
// User is nil unless State is SessionAuthenticated.
type SessionSnapshot struct {
	State SessionState
	User  *User
}

// SessionRepository exchanges credentials for a session against the API.
type SessionRepository interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
}

// SessionStore persists the session across cold starts in the device
// key-value store. Persist writes both keys atomically from the caller's
// perspective; Clear tolerates missing keys.
type SessionStore interface {
	ReadPersisted(ctx context.Context) (token string, user *User, ok bool, err error)
	Persist(ctx context.Context, token string, user *User) error
	Clear(ctx context.Context) error
}

// BearerCarrier is the mutable Authorization slot of the shared HTTP
// client. Mutations are visible to every subsequent request.
type BearerCarrier interface {
	SetBearer(token string)
	ClearBearer()
}

type AuthUsecase interface {
	// Restore resolves the initial session state from persisted storage.
	// Consumers must not route until the published state leaves SessionLoading.
	Restore(ctx context.Context) error
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context) error
	SignUp(ctx context.Context, name, email, password string) error
	// UpdateUser replaces the user half of the session and re-persists it.
	UpdateUser(ctx context.Context, user *User) error
	Snapshot() SessionSnapshot
	Subscribe(listener func(SessionSnapshot))
}
