package domain

import (
	"context"
	"time"
)

type Provider struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// HourAvailability is one entry of a provider's day grid. Hour is 0-23.
type HourAvailability struct {
	Hour      int  `json:"hour"`
	Available bool `json:"available"`
}

// TimeSlot is a presentation view over HourAvailability: the same hour and
// flag plus a human-readable label such as "14:00".
type TimeSlot struct {
	Hour      int
	Available bool
	Label     string
}

type ProviderRepository interface {
	List(ctx context.Context) ([]Provider, error)
	// DayAvailability returns the hour grid for one provider on one day.
	DayAvailability(ctx context.Context, providerID string, day time.Time) ([]HourAvailability, error)
}
