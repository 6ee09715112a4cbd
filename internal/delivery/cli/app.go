package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"gobarber-client/internal/domain"
	"gobarber-client/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// App is the terminal front end: a command loop whose available commands
// are routed from the published session state, standing in for the mobile
// app's navigation graphs.
type App struct {
	auth     domain.AuthUsecase
	booking  domain.BookingUsecase
	profile  domain.ProfileUsecase
	validate *validator.Validate

	in  *bufio.Reader
	out io.Writer
}

func NewApp(
	auth domain.AuthUsecase,
	booking domain.BookingUsecase,
	profile domain.ProfileUsecase,
	validate *validator.Validate,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		auth:     auth,
		booking:  booking,
		profile:  profile,
		validate: validate,
		in:       bufio.NewReader(in),
		out:      out,
	}
}

// Run restores the session in the background, shows the loading indicator
// until the initial state resolves, then dispatches commands for whichever
// graph the route selector picks.
func (a *App) Run(ctx context.Context) error {
	ready := make(chan struct{})
	var once sync.Once
	a.auth.Subscribe(func(s domain.SessionSnapshot) {
		if s.State != domain.SessionLoading {
			once.Do(func() { close(ready) })
		}
	})

	go func() {
		// Restore publishes a state even on failure
		_ = a.auth.Restore(ctx)
	}()

	if SelectRoute(a.auth.Snapshot()) == RouteLoading {
		fmt.Fprintln(a.out, "Restoring session...")
	}
	select {
	case <-ready:
	case <-ctx.Done():
		return ctx.Err()
	}

	for {
		var err error
		switch SelectRoute(a.auth.Snapshot()) {
		case RouteAuth:
			err = a.authScreen(ctx)
		case RouteApp:
			err = a.dashboardScreen(ctx)
		default:
			return fmt.Errorf("unexpected route while running")
		}
		if err == errQuit {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

var errQuit = fmt.Errorf("quit")

func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// alert is the screen boundary for non-validation failures: one generic,
// dismissible message.
func (a *App) alert(title string, err error) {
	fmt.Fprintf(a.out, "! %s: %s\n", title, err)
}

// showFieldErrors maps a validation failure to per-field messages.
func (a *App) showFieldErrors(err error) {
	for field, message := range validation.ToFieldErrors(validation.Collect(err)) {
		fmt.Fprintf(a.out, "  %s: %s\n", field, message)
	}
}

func isValidationError(err error) bool {
	_, ok := err.(validator.ValidationErrors)
	return ok
}
