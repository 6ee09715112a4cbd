package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gobarber-client/pkg/apperror"
)

func TestBearerSharedAcrossRepositories(t *testing.T) {
	var lastAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lastAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	providers := NewProviderRepository(client)

	if _, err := providers.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if lastAuth != "" {
		t.Errorf("expected no Authorization before sign-in, got %q", lastAuth)
	}

	client.SetBearer("tok-1")
	if _, err := providers.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if lastAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want %q", lastAuth, "Bearer tok-1")
	}

	// a repository built before the bearer changed sees the new value too
	client.ClearBearer()
	if _, err := providers.List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if lastAuth != "" {
		t.Errorf("expected Authorization cleared after sign-out, got %q", lastAuth)
	}
}

func TestRequestIDAttached(t *testing.T) {
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		json.NewEncoder(w).Encode([]any{})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if _, err := NewProviderRepository(client).List(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if requestID == "" {
		t.Error("expected an X-Request-Id header on every request")
	}
}

func TestAPIErrorMessageSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Incorrect email/password combination"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := NewSessionRepository(client).SignIn(context.Background(), "a@b.c", "nope")
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if err.Error() != "Incorrect email/password combination" {
		t.Errorf("error = %q, want API message", err.Error())
	}
	if !apperror.IsKind(err, apperror.KindAPI) {
		t.Error("expected an API-kind error")
	}
}

func TestErrorWithoutBodyGetsGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := NewProviderRepository(client).List(context.Background())
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if err.Error() != "request failed with status 502" {
		t.Errorf("error = %q", err.Error())
	}
}
