package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gobarber-client/internal/domain"
	"gobarber-client/pkg/apperror"
)

// hourUnset is the zero value of selectedHour; no bookable slot uses it.
const hourUnset = 0

// bookingUsecase is the appointment slot picker. Changing the provider or
// the date resets the hour, replaces the availability grid wholesale and
// tags the fetch with a generation so a late response for a stale
// selection can never overwrite a newer one.
type bookingUsecase struct {
	providers    domain.ProviderRepository
	appointments domain.AppointmentRepository

	mu               sync.Mutex
	selectedProvider string
	selectedDate     time.Time
	selectedHour     int
	availability     []domain.HourAvailability
	fetchGen         uint64
}

func NewBookingUsecase(
	providers domain.ProviderRepository,
	appointments domain.AppointmentRepository,
) domain.BookingUsecase {
	return &bookingUsecase{
		providers:    providers,
		appointments: appointments,
		selectedDate: time.Now(),
		selectedHour: hourUnset,
	}
}

func (u *bookingUsecase) LoadProviders(ctx context.Context) ([]domain.Provider, error) {
	return u.providers.List(ctx)
}

func (u *bookingUsecase) SelectProvider(ctx context.Context, providerID string) error {
	u.mu.Lock()
	u.selectedProvider = providerID
	u.selectedHour = hourUnset
	day := u.selectedDate
	gen := u.nextGenLocked()
	u.mu.Unlock()

	return u.refreshAvailability(ctx, gen, providerID, day)
}

func (u *bookingUsecase) SelectDate(ctx context.Context, day time.Time) error {
	u.mu.Lock()
	u.selectedDate = day
	u.selectedHour = hourUnset
	providerID := u.selectedProvider
	gen := u.nextGenLocked()
	u.mu.Unlock()

	if providerID == "" {
		return nil
	}
	return u.refreshAvailability(ctx, gen, providerID, day)
}

func (u *bookingUsecase) SelectHour(hour int) error {
	if hour < 0 || hour > 23 {
		return apperror.Validation(fmt.Sprintf("hour %d is out of range", hour))
	}

	u.mu.Lock()
	u.selectedHour = hour
	u.mu.Unlock()
	return nil
}

func (u *bookingUsecase) Selection() (string, time.Time, int) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.selectedProvider, u.selectedDate, u.selectedHour
}

func (u *bookingUsecase) Morning() []domain.TimeSlot {
	return u.partition(func(hour int) bool { return hour < 12 })
}

func (u *bookingUsecase) Afternoon() []domain.TimeSlot {
	return u.partition(func(hour int) bool { return hour >= 12 })
}

func (u *bookingUsecase) CreateAppointment(ctx context.Context) (time.Time, error) {
	u.mu.Lock()
	providerID := u.selectedProvider
	day := u.selectedDate
	hour := u.selectedHour
	u.mu.Unlock()

	if providerID == "" {
		return time.Time{}, apperror.Validation("no provider selected")
	}
	if hour == hourUnset {
		return time.Time{}, apperror.Validation("no hour selected")
	}

	date := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
	if _, err := u.appointments.Create(ctx, providerID, date); err != nil {
		// Selections stay intact so the user can retry manually
		return time.Time{}, err
	}
	return date, nil
}

// nextGenLocked invalidates any in-flight availability fetch. Callers must
// hold u.mu.
func (u *bookingUsecase) nextGenLocked() uint64 {
	u.fetchGen++
	return u.fetchGen
}

func (u *bookingUsecase) refreshAvailability(ctx context.Context, gen uint64, providerID string, day time.Time) error {
	availability, err := u.providers.DayAvailability(ctx, providerID, day)
	if err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if gen != u.fetchGen {
		// A newer selection superseded this fetch; drop the response.
		return nil
	}
	u.availability = availability
	return nil
}

func (u *bookingUsecase) partition(keep func(hour int) bool) []domain.TimeSlot {
	u.mu.Lock()
	defer u.mu.Unlock()

	slots := make([]domain.TimeSlot, 0, len(u.availability))
	for _, entry := range u.availability {
		if !keep(entry.Hour) {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Hour:      entry.Hour,
			Available: entry.Available,
			Label:     fmt.Sprintf("%02d:00", entry.Hour),
		})
	}
	return slots
}
