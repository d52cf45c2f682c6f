// Package validator wraps go-playground/validator with the tags used across
// txnotify and a single error format.
//
// Struct fields are checked through `validate:"..."` tags. Besides the
// built-in tags, the package registers:
//
//   - wallet: a non-blank address without ':' or whitespace, since wallets
//     are joined with ':' when stored in the active wallet set.
//   - asset: a "network:coin" pair with both halves present.
package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of the chain returned when
// validation fails.
var ErrValidationFailed = errors.New("validation failed")

var validator *gvalidator.Validate

// Example: "'Wallet': value '' does not meet the requirements for the 'required' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

	// Registration only fails on empty tags or nil funcs.
	_ = validator.RegisterValidation("wallet", isWallet)
	_ = validator.RegisterValidation("asset", isAsset)
}

func isWallet(fl gvalidator.FieldLevel) bool {
	v := fl.Field().String()
	if v == "" {
		return false
	}

	return !strings.ContainsFunc(v, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
}

func isAsset(fl gvalidator.FieldLevel) bool {
	network, coin, ok := strings.Cut(fl.Field().String(), ":")
	return ok && network != "" && coin != "" && !strings.Contains(coin, ":")
}

// formatError turns validator errors into ErrValidationFailed joined with
// one message per failing field. Other errors are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		field := validationErr.Field()
		if field == "" {
			field = "value"
		}

		errs = append(errs, fmt.Errorf(errStringFormat, field, validationErr.Value(), validationErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its struct tags.
//
//	if err := validator.Validate(event); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the event
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against tag, e.g. Var(url, "required,http_url").
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
