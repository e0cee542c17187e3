// Package contact validates the contact form and hands messages to a mail
// relay.
package contact

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Form is the contact form as typed by the user.
type Form struct {
	Name    string `validate:"required,max=100"`
	Email   string `validate:"required,email,max=254"`
	Message string `validate:"required,max=5000"`
}

var validate = validator.New()

// ValidationError names the first field that failed.
type ValidationError struct {
	Field string
	Tag   string
}

func (e *ValidationError) Error() string {
	return "contact: invalid " + strings.ToLower(e.Field) + " (" + e.Tag + ")"
}

// UserMessage is the inline status text for the failure.
func (e *ValidationError) UserMessage() string {
	switch {
	case e.Tag == "max" && e.Field == "Message":
		return "Your message is too long."
	case e.Tag == "max":
		return "Please shorten your " + strings.ToLower(e.Field) + "."
	case e.Field == "Name":
		return "Please enter your name."
	case e.Field == "Email":
		return "Please enter a valid email address."
	default:
		return "Please enter a message."
	}
}

// Trimmed returns the form with surrounding whitespace removed.
func (f Form) Trimmed() Form {
	return Form{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the trimmed form. A failure is a *ValidationError.
func (f Form) Validate() error {
	err := validate.Struct(f.Trimmed())
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &ValidationError{Field: ve[0].Field(), Tag: ve[0].Tag()}
	}
	return err
}

// Message converts a validated form into a relay payload.
func (f Form) Message() Message {
	t := f.Trimmed()
	return Message{Name: t.Name, Email: t.Email, Body: t.Message}
}
