package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// formValidator lets Echo validate bound forms with c.Validate(form).
// Messages name fields after their form inputs so they read well in alerts.
type formValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *formValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return strings.ReplaceAll(name, "_", " ")
	})
	return &formValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (fv *formValidator) Validate(i any) error {
	err := fv.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return "please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("please choose a %s: %s", field, strings.ReplaceAll(fe.Param(), " ", " or "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
