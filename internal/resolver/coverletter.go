package resolver

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mfreitag/cvgen/internal/sources"
	"github.com/mfreitag/cvgen/internal/types"
)

// validate checks the mandatory cover letter address fields. Field names in
// error reports follow the yaml tags so messages match the input file.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		tag := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return field.Name
		}
		return tag
	})
	return v
}

// ResolveCoverLetter completes a parsed cover letter: sender fields left
// empty in the letter file are filled from the CV sources under the same
// precedence rules as the CV contact block, and the recipient address is
// validated. Missing mandatory address fields are reported together by
// name.
func (r *Resolver) ResolveCoverLetter(letter *types.CoverLetter, set sources.Set, overrides Overrides) error {
	contact, err := r.resolveContact(set, overrides)
	if err != nil {
		return err
	}

	if letter.Sender.Name == "" {
		letter.Sender.Name = contact.Name
	}
	if letter.Sender.Email == "" {
		letter.Sender.Email = contact.Email
	}
	if letter.Sender.Phone == "" {
		letter.Sender.Phone = contact.Phone
	}
	if letter.Sender.Location == "" {
		letter.Sender.Location = contact.Location
	}

	if err := validate.Struct(letter.Recipient); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			missing := make([]string, 0, len(fieldErrs))
			for _, fieldErr := range fieldErrs {
				missing = append(missing, fieldErr.Field())
			}
			return &AddressError{Missing: missing}
		}
		return err
	}

	return nil
}
