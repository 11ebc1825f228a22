package form

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/IBM/fp-go/either"
)

// Result is either a validated value or the error describing why it failed.
type Result[T any] = either.Either[error, T]

// Validator checks one aspect of a value.
type Validator[T any] func(T) error

// ValidationError ties a message to a canonical field key.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is every failure found in one validation pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// For returns the message for field, or "" if the field passed.
func (e ValidationErrors) For(field string) string {
	for _, err := range e {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Fields lists the keys that failed, in order.
func (e ValidationErrors) Fields() []string {
	out := make([]string, len(e))
	for i, err := range e {
		out[i] = err.Field
	}
	return out
}

// Validate runs every validator and collects all failures.
func Validate[T any](value T, validators ...Validator[T]) Result[T] {
	var errs ValidationErrors
	for _, v := range validators {
		err := v(value)
		if err == nil {
			continue
		}
		var ve ValidationError
		var ves ValidationErrors
		switch {
		case errors.As(err, &ves):
			errs = append(errs, ves...)
		case errors.As(err, &ve):
			errs = append(errs, ve)
		default:
			errs = append(errs, ValidationError{Message: err.Error()})
		}
	}
	if len(errs) > 0 {
		return either.Left[T](error(errs))
	}
	return either.Right[error](value)
}

// Errors extracts the validation errors from a result, nil on success.
func Errors[T any](r Result[T]) ValidationErrors {
	return either.Fold(
		func(err error) ValidationErrors {
			var ves ValidationErrors
			if errors.As(err, &ves) {
				return ves
			}
			return ValidationErrors{{Message: err.Error()}}
		},
		func(_ T) ValidationErrors { return nil },
	)(r)
}

// Field lifts string rules onto one field of T.
func Field[T any](key string, get func(T) string, rules ...func(key, value string) error) Validator[T] {
	return func(v T) error {
		value := get(v)
		for _, rule := range rules {
			if err := rule(key, value); err != nil {
				return err
			}
		}
		return nil
	}
}

// When applies v only if cond holds for the value.
func When[T any](cond func(T) bool, v Validator[T]) Validator[T] {
	return func(value T) error {
		if !cond(value) {
			return nil
		}
		return v(value)
	}
}

// Required fails on blank values with "<label> is required".
func Required(label string) func(key, value string) error {
	return func(key, value string) error {
		if strings.TrimSpace(value) == "" {
			return ValidationError{Field: key, Message: label + " is required"}
		}
		return nil
	}
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// EmailShaped fails on non-empty values that do not look like an email.
func EmailShaped(key, value string) error {
	if value != "" && !emailPattern.MatchString(strings.TrimSpace(value)) {
		return ValidationError{Field: key, Message: "Enter a valid email address"}
	}
	return nil
}

// OneOfStates fails on non-empty values outside the state list.
func OneOfStates(key, value string) error {
	if value != "" && !IsStateCode(value) {
		return ValidationError{Field: key, Message: "Select a valid state"}
	}
	return nil
}

// ISODateValue fails on non-empty values that are not YYYY-MM-DD.
func ISODateValue(key, value string) error {
	if value == "" {
		return nil
	}
	if _, err := ParseISODate(value); err != nil {
		return ValidationError{Field: key, Message: "Enter a date as YYYY-MM-DD"}
	}
	return nil
}
