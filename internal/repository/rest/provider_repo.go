package rest

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"gobarber-client/internal/domain"
)

type providerRepo struct {
	client *Client
}

func NewProviderRepository(client *Client) domain.ProviderRepository {
	return &providerRepo{client: client}
}

func (r *providerRepo) List(ctx context.Context) ([]domain.Provider, error) {
	var providers []domain.Provider
	if err := r.client.get(ctx, "/providers", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (r *providerRepo) DayAvailability(ctx context.Context, providerID string, day time.Time) ([]domain.HourAvailability, error) {
	query := url.Values{}
	query.Set("date", strconv.Itoa(day.Day()))
	query.Set("month", strconv.Itoa(int(day.Month())))
	query.Set("year", strconv.Itoa(day.Year()))

	var availability []domain.HourAvailability
	err := r.client.get(ctx, "/providers/"+providerID+"/day-availability", query, &availability)
	if err != nil {
		return nil, err
	}
	return availability, nil
}
