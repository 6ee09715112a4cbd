package domain

import (
	"context"
	"time"
)

// Appointment is the server's representation of a created appointment. The
// client never holds a collection of these; the server is the source of
// truth.
type Appointment struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"providerId"`
	Date       time.Time `json:"date"`
}

type AppointmentRepository interface {
	Create(ctx context.Context, providerID string, date time.Time) (*Appointment, error)
}

// BookingUsecase drives the appointment slot picker: one selected provider,
// date and hour, and the availability grid for the current (provider, date)
// pair.
type BookingUsecase interface {
	LoadProviders(ctx context.Context) ([]Provider, error)
	SelectProvider(ctx context.Context, providerID string) error
	SelectDate(ctx context.Context, day time.Time) error
	SelectHour(hour int) error
	// Selection returns the current provider, date and hour (0 means unset).
	Selection() (providerID string, day time.Time, hour int)
	Morning() []TimeSlot
	Afternoon() []TimeSlot
	// CreateAppointment submits the current selection and returns the booked
	// timestamp. Local selections survive a failed submission.
	CreateAppointment(ctx context.Context) (time.Time, error)
}
