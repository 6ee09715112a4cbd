package rest

import (
	"context"
	"time"

	"gobarber-client/internal/domain"
)

type appointmentRepo struct {
	client *Client
}

func NewAppointmentRepository(client *Client) domain.AppointmentRepository {
	return &appointmentRepo{client: client}
}

type createAppointmentRequest struct {
	ProviderID string    `json:"providerId"`
	Date       time.Time `json:"date"`
}

func (r *appointmentRepo) Create(ctx context.Context, providerID string, date time.Time) (*domain.Appointment, error) {
	var appointment domain.Appointment
	err := r.client.postJSON(ctx, "/appointments", createAppointmentRequest{
		ProviderID: providerID,
		Date:       date,
	}, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
