package registry

import (
	"regexp"
	"sort"
)

// Field names as they appear in request and response bodies.
const (
	FieldTaxID             = "taxId"
	FieldName              = "name"
	FieldPostalCode        = "postalCode"
	FieldEmail             = "email"
	FieldPhoneNumber       = "phoneNumber"
	FieldRegistrationID    = "registrationId"
	FieldLegalName         = "legalName"
	FieldTradeName         = "tradeName"
	FieldStateRegistration = "stateRegistration"
	FieldOwnerID           = "ownerId"
	FieldGoodType          = "goodType"
	FieldDescription       = "description"
)

// MaxNameLength bounds every name-like free text field.
const MaxNameLength = 200

// MaxEmailLength is the column width of every email field.
const MaxEmailLength = 254

// FieldRule is a fixed-pattern check for one semantic field.
type FieldRule struct {
	// Field is the body field the rule applies to.
	Field string
	// Tag is the validation tag the rule is registered under.
	Tag     string
	Pattern *regexp.Regexp
	Message string
}

// Matches reports whether value satisfies the rule
func (r FieldRule) Matches(value string) bool {
	return r.Pattern.MatchString(value)
}

// RuleSet maps a field name to its rule.
type RuleSet map[string]FieldRule

// Rules is the shared digit-pattern table, built once at startup and read by every record service.
var Rules = newRuleSet(
	FieldRule{Field: FieldTaxID, Tag: "taxid", Pattern: regexp.MustCompile(`^[0-9]{11}$`), Message: "Must be exactly 11 digits."},
	FieldRule{Field: FieldRegistrationID, Tag: "regid", Pattern: regexp.MustCompile(`^[0-9]{14}$`), Message: "Must be exactly 14 digits."},
	FieldRule{Field: FieldStateRegistration, Tag: "statereg", Pattern: regexp.MustCompile(`^[0-9]{9}$`), Message: "Must be exactly 9 digits."},
	FieldRule{Field: FieldPostalCode, Tag: "postalcode", Pattern: regexp.MustCompile(`^[0-9]{8}$`), Message: "Must be exactly 8 digits."},
	FieldRule{Field: FieldPhoneNumber, Tag: "phone", Pattern: regexp.MustCompile(`^[0-9]{10,12}$`), Message: "Must have between 10 and 12 digits."},
	FieldRule{Field: FieldOwnerID, Tag: "ownerid", Pattern: regexp.MustCompile(`^[0-9]{11,14}$`), Message: "Must have between 11 and 14 digits."},
)

func newRuleSet(rules ...FieldRule) RuleSet {
	set := make(RuleSet, len(rules))
	for _, r := range rules {
		if _, dup := set[r.Field]; dup {
			panic("registry: duplicate rule for field " + r.Field)
		}
		set[r.Field] = r
	}
	return set
}

// ByTag returns the rule registered under tag
func (s RuleSet) ByTag(tag string) (FieldRule, bool) {
	for _, r := range s {
		if r.Tag == tag {
			return r, true
		}
	}
	return FieldRule{}, false
}

// Sorted returns the rules ordered by field name.
func (s RuleSet) Sorted() []FieldRule {
	out := make([]FieldRule, 0, len(s))
	for _, r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
