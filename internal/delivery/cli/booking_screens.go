package cli

import (
	"context"
	"fmt"
	"time"

	"gobarber-client/internal/domain"
)

const dateLayout = "2006-01-02"

func (a *App) dashboardScreen(ctx context.Context) error {
	user := a.auth.Snapshot().User
	fmt.Fprintf(a.out, "\nGoBarber | signed in as %s\n", user.Name)
	fmt.Fprintln(a.out, "  providers  list barbers")
	fmt.Fprintln(a.out, "  provider   choose a barber")
	fmt.Fprintln(a.out, "  date       choose a day (YYYY-MM-DD)")
	fmt.Fprintln(a.out, "  slots      show morning/afternoon availability")
	fmt.Fprintln(a.out, "  hour       choose an hour")
	fmt.Fprintln(a.out, "  book       create the appointment")
	fmt.Fprintln(a.out, "  profile    edit profile")
	fmt.Fprintln(a.out, "  avatar     upload a new avatar")
	fmt.Fprintln(a.out, "  signout    sign out")
	fmt.Fprintln(a.out, "  quit       exit")

	command, err := a.prompt("command")
	if err != nil {
		return err
	}

	switch command {
	case "providers":
		return a.listProviders(ctx)
	case "provider":
		return a.chooseProvider(ctx)
	case "date":
		return a.chooseDate(ctx)
	case "slots":
		a.showSlots()
		return nil
	case "hour":
		return a.chooseHour()
	case "book":
		return a.book(ctx)
	case "profile":
		return a.editProfile(ctx)
	case "avatar":
		return a.uploadAvatar(ctx)
	case "signout":
		if err := a.auth.SignOut(ctx); err != nil {
			a.alert("Sign-out failed", err)
		}
		return nil
	case "quit":
		return errQuit
	case "":
		return nil
	}
	fmt.Fprintf(a.out, "unknown command %q\n", command)
	return nil
}

func (a *App) listProviders(ctx context.Context) error {
	providers, err := a.booking.LoadProviders(ctx)
	if err != nil {
		a.alert("Could not load providers", err)
		return nil
	}
	for _, p := range providers {
		fmt.Fprintf(a.out, "  %s  %s\n", p.ID, p.Name)
	}
	return nil
}

func (a *App) chooseProvider(ctx context.Context) error {
	id, err := a.prompt("provider id")
	if err != nil {
		return err
	}
	if err := a.booking.SelectProvider(ctx, id); err != nil {
		a.alert("Could not load availability", err)
	}
	return nil
}

func (a *App) chooseDate(ctx context.Context) error {
	raw, err := a.prompt("date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation(dateLayout, raw, time.Local)
	if err != nil {
		a.alert("Invalid date", err)
		return nil
	}
	if err := a.booking.SelectDate(ctx, day); err != nil {
		a.alert("Could not load availability", err)
	}
	return nil
}

func (a *App) showSlots() {
	fmt.Fprintln(a.out, "Morning")
	a.printSlots(a.booking.Morning())
	fmt.Fprintln(a.out, "Afternoon")
	a.printSlots(a.booking.Afternoon())
}

// Unavailable hours stay listed but are marked non-interactive; picking
// one is not blocked here.
func (a *App) printSlots(slots []domain.TimeSlot) {
	if len(slots) == 0 {
		fmt.Fprintln(a.out, "  (none)")
		return
	}
	for _, slot := range slots {
		marker := " "
		if !slot.Available {
			marker = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %s\n", marker, slot.Label)
	}
}

func (a *App) chooseHour() error {
	raw, err := a.prompt("hour (0-23)")
	if err != nil {
		return err
	}
	var hour int
	if _, err := fmt.Sscanf(raw, "%d", &hour); err != nil {
		a.alert("Invalid hour", err)
		return nil
	}
	if err := a.booking.SelectHour(hour); err != nil {
		a.alert("Invalid hour", err)
	}
	return nil
}

func (a *App) book(ctx context.Context) error {
	booked, err := a.booking.CreateAppointment(ctx)
	if err != nil {
		a.alert("Could not create the appointment, please try again", err)
		return nil
	}

	// Confirmation screen carrying the booked timestamp
	fmt.Fprintln(a.out, "Appointment booked!")
	fmt.Fprintf(a.out, "%s\n", booked.Format("Monday, 02 January 2006 at 15:04"))
	return nil
}
