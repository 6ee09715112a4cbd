package local

import (
	"context"
	"path/filepath"
	"testing"

	"gobarber-client/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPersistAndReadRoundtrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	user := &domain.User{ID: "u1", Name: "John", Email: "john@example.com", AvatarURL: "http://cdn/u1.jpg"}

	if err := store.Persist(ctx, "tok-1", user); err != nil {
		t.Fatalf("persist: %v", err)
	}

	token, got, ok, err := store.ReadPersisted(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !ok {
		t.Fatal("expected a persisted session")
	}
	if token != "tok-1" {
		t.Errorf("token = %q", token)
	}
	if *got != *user {
		t.Errorf("user = %+v, want %+v", got, user)
	}
}

func TestPersistOverwrites(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Persist(ctx, "tok-1", &domain.User{ID: "u1", Name: "John"}); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if err := store.Persist(ctx, "tok-2", &domain.User{ID: "u1", Name: "John Doe"}); err != nil {
		t.Fatalf("persist: %v", err)
	}

	token, user, ok, err := store.ReadPersisted(ctx)
	if err != nil || !ok {
		t.Fatalf("read: ok=%v err=%v", ok, err)
	}
	if token != "tok-2" || user.Name != "John Doe" {
		t.Errorf("got token=%q user=%+v", token, user)
	}
}

func TestReadEmptyStore(t *testing.T) {
	store := openTestStore(t)

	_, _, ok, err := store.ReadPersisted(context.Background())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok {
		t.Error("expected no session on a cold store")
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Persist(ctx, "tok-1", &domain.User{ID: "u1"}); err != nil {
		t.Fatalf("persist: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	_, _, ok, err := store.ReadPersisted(ctx)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ok {
		t.Error("expected both keys gone after clear")
	}

	// clearing again must not be an error
	if err := store.Clear(ctx); err != nil {
		t.Errorf("second clear: %v", err)
	}
}
