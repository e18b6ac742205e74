package registry

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/registry/backend/internal/domain/registry"
)

// Field failure reasons shared by every record kind.
const (
	ReasonRequired      = "This field is required."
	ReasonNotAString    = "Not a valid string."
	ReasonInvalidEmail  = "Enter a valid email address."
	reasonMaxLengthTmpl = "Ensure this field has no more than %s characters."
	reasonChoiceTmpl    = "%q is not a valid choice."
)

// Validator checks request payloads against the registry rule table.
// It is safe for concurrent use once constructed.
type Validator struct {
	validate *validator.Validate
	rules    registry.RuleSet
}

// NewValidator builds a validator with one custom tag per rule in rules.
func NewValidator(rules registry.RuleSet) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Key errors by the JSON field name so they match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, rule := range rules.Sorted() {
		rule := rule
		err := v.RegisterValidation(rule.Tag, func(fl validator.FieldLevel) bool {
			return rule.Matches(fl.Field().String())
		})
		if err != nil {
			panic(fmt.Sprintf("registry: register validation %q: %v", rule.Tag, err))
		}
	}

	err := v.RegisterValidation(goodTypeTag, func(fl validator.FieldLevel) bool {
		return registry.GoodType(fl.Field().String()).IsValid()
	})
	if err != nil {
		panic(fmt.Sprintf("registry: register validation %q: %v", goodTypeTag, err))
	}

	return &Validator{validate: v, rules: rules}
}

const goodTypeTag = "goodtype"

// decodeErrorCarrier is implemented by requests embedding DecodeErrors
type decodeErrorCarrier interface {
	decodeErrors() registry.FieldErrors
}

// Struct validates every field of payload and reports all failures at once,
// including fields the payload carries as decode errors. It returns nil or
// registry.FieldErrors.
func (v *Validator) Struct(payload any) error {
	fieldErrs := registry.FieldErrors{}
	var undecoded registry.FieldErrors
	if carrier, ok := payload.(decodeErrorCarrier); ok {
		undecoded = carrier.decodeErrors()
	}
	for field, reasons := range undecoded {
		fieldErrs[field] = append([]string(nil), reasons...)
	}

	if err := v.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			// The zero value left behind by a failed decode is not the client's input
			if _, skip := undecoded[fe.Field()]; skip {
				continue
			}
			fieldErrs.Add(fe.Field(), v.message(fe))
		}
	}
	return fieldErrs.OrNil()
}

func (v *Validator) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return ReasonRequired
	case "max":
		return fmt.Sprintf(reasonMaxLengthTmpl, fe.Param())
	case "email":
		return ReasonInvalidEmail
	case goodTypeTag:
		return fmt.Sprintf(reasonChoiceTmpl, fe.Value())
	}
	if rule, ok := v.rules.ByTag(fe.Tag()); ok {
		return rule.Message
	}
	return "Invalid value."
}

// cleanText trims surrounding whitespace
func cleanText(s string) string {
	return strings.TrimSpace(s)
}

// cleanFreeText trims and NFC-normalizes human written text so that
// composed and decomposed spellings of the same name are stored alike.
func cleanFreeText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
