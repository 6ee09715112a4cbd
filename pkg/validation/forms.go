package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Each screen submits one of these typed forms. Conditional rules are
// declared on the struct: a password change requires the confirmation to
// match, and the confirmation is only required when a new password is set.
type SignInForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignUpForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4,max=16"`
}

type ProfileForm struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	OldPassword     string `json:"oldPassword" validate:"max=16"`
	Password        string `json:"password" validate:"required_with=OldPassword,omitempty,min=4,max=16"`
	ConfirmPassword string `json:"confirmPassword" validate:"required_with=Password,eqfield=Password"`
}

// New builds the validator used for every form. Field paths in error
// output come from the json tag, matching what the screens display.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
