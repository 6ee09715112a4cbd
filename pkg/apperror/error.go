package apperror

import "errors"

// Kind classifies a client-side failure: validation errors are recoverable
// in place, API errors surface as a single generic alert, storage errors
// come from the local device store.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAPI        Kind = "api"
	KindStorage    Kind = "storage"
)

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return New(KindValidation, message, nil)
}

func API(message string, err error) *AppError {
	return New(KindAPI, message, err)
}

func Storage(err error) *AppError {
	return New(KindStorage, "local storage failure", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
