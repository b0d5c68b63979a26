package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"snapfeed/app/apperr"
)

var validate = validator.New()

// SignupInput is the input shape for user creation.
type SignupInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=5"`
	Name     string `validate:"required"`
}

// PostInput is the input shape for post creation and update. ImageURL is
// checked by the operations themselves because the two surfaces treat it
// differently.
type PostInput struct {
	Title    string `validate:"required,min=5"`
	ImageURL string `validate:"-"`
	Content  string `validate:"required,min=5"`
}

var messages = map[string]string{
	"SignupInput.Email":    "Invalid E-Mail",
	"SignupInput.Password": "Password too short",
	"SignupInput.Name":     "Name is required",
	"PostInput.Title":      "Invalid Title",
	"PostInput.Content":    "Invalid Content",
}

// Check runs every rule on input and returns the full list of field errors.
// It never stops at the first violation.
func Check(input interface{}) []apperr.FieldError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []apperr.FieldError{{Message: err.Error()}}
	}

	fields := make([]apperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.StructNamespace()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		fields = append(fields, apperr.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: msg,
		})
	}
	return fields
}
