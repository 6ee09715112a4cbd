package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gobarber-client/internal/domain"
)

func TestSessionSignInDecodesPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/sessions" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "john@example.com" || body["password"] != "secret" {
			t.Errorf("unexpected credentials: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"user":  map[string]string{"id": "u1", "name": "John", "email": "john@example.com"},
		})
	}))
	defer server.Close()

	repo := NewSessionRepository(NewClient(server.URL, time.Second))
	session, err := repo.SignIn(context.Background(), "john@example.com", "secret")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if session.Token != "tok-1" {
		t.Errorf("token = %q", session.Token)
	}
	if session.User.Name != "John" {
		t.Errorf("user = %+v", session.User)
	}
}

func TestDayAvailabilityQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/providers/p1/day-availability" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("date") != "1" || q.Get("month") != "3" || q.Get("year") != "2024" {
			t.Errorf("query = %v", q)
		}
		json.NewEncoder(w).Encode([]domain.HourAvailability{
			{Hour: 8, Available: true},
			{Hour: 9, Available: false},
		})
	}))
	defer server.Close()

	repo := NewProviderRepository(NewClient(server.URL, time.Second))
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	availability, err := repo.DayAvailability(context.Background(), "p1", day)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(availability) != 2 || availability[0].Hour != 8 || availability[1].Available {
		t.Errorf("availability = %+v", availability)
	}
}

func TestCreateAppointmentBody(t *testing.T) {
	want := time.Date(2024, 3, 1, 14, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/appointments" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			ProviderID string    `json:"providerId"`
			Date       time.Time `json:"date"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.ProviderID != "p1" {
			t.Errorf("providerId = %q", body.ProviderID)
		}
		if !body.Date.Equal(want) {
			t.Errorf("date = %v, want %v", body.Date, want)
		}
		json.NewEncoder(w).Encode(domain.Appointment{ID: "a1", ProviderID: "p1", Date: want})
	}))
	defer server.Close()

	repo := NewAppointmentRepository(NewClient(server.URL, time.Second))
	appointment, err := repo.Create(context.Background(), "p1", want)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if appointment.ID != "a1" {
		t.Errorf("appointment = %+v", appointment)
	}
}

func TestProfileUpdateOmitsEmptyPasswordFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/profile" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		raw, _ := io.ReadAll(r.Body)
		var body map[string]any
		json.Unmarshal(raw, &body)
		if _, present := body["password"]; present {
			t.Errorf("password keys must be omitted when empty: %s", raw)
		}
		json.NewEncoder(w).Encode(domain.User{ID: "u1", Name: body["name"].(string)})
	}))
	defer server.Close()

	repo := NewProfileRepository(NewClient(server.URL, time.Second))
	user, err := repo.Update(context.Background(), domain.ProfileUpdate{Name: "John Doe", Email: "doe@example.com"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if user.Name != "John Doe" {
		t.Errorf("user = %+v", user)
	}
}

func TestAvatarUploadIsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/users/avatar" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("avatar")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "u1.jpg" {
			t.Errorf("filename = %q", header.Filename)
		}
		content, _ := io.ReadAll(file)
		if string(content) != "jpeg-bytes" {
			t.Errorf("content = %q", content)
		}
		json.NewEncoder(w).Encode(domain.User{ID: "u1", AvatarURL: "http://cdn/u1.jpg"})
	}))
	defer server.Close()

	repo := NewProfileRepository(NewClient(server.URL, time.Second))
	user, err := repo.UpdateAvatar(context.Background(), "u1.jpg", []byte("jpeg-bytes"))
	if err != nil {
		t.Fatalf("update avatar: %v", err)
	}
	if user.AvatarURL == "" {
		t.Errorf("user = %+v", user)
	}
}
