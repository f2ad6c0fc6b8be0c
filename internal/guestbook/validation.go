package guestbook

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// ValidationError reports the first required field that was left blank.
// It matches common.ErrInvalidArgument via errors.Is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrInvalidArgument
}

// entryInput mirrors the caller supplied text fields. Field order defines
// the order in which failures are reported.
type entryInput struct {
	Name  string `validate:"notblank"`
	Text  string `validate:"notblank"`
	Email string `validate:"notblank"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

func validateInput(in entryInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: strings.ToLower(verrs[0].Field())}
	}
	return fmt.Errorf("%w: %v", common.ErrInvalidArgument, err)
}
