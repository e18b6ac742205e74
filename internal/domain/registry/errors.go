package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/registry/backend/internal/domain/shared"
)

// OwnershipFailureMessage is reported under the "owner" key when an owner id resolves to nothing.
const OwnershipFailureMessage = "Must be an existing cpf or cnpj."

var (
	// ErrOwnerNotFound is returned when an ownerId matches no natural person or legal entity.
	ErrOwnerNotFound = shared.NewDomainError("OWNER_NOT_FOUND", OwnershipFailureMessage)
	// ErrDuplicateKey is returned by stores when a natural key collides with an existing record.
	ErrDuplicateKey = shared.NewDomainError("DUPLICATE_KEY", "Natural key already exists")
)

// FieldErrors collects every failing field of a payload, keyed by body field name.
type FieldErrors map[string][]string

// Add appends a reason for field
func (e FieldErrors) Add(field, reason string) {
	e[field] = append(e[field], reason)
}

// HasErrors reports whether any field failed
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// Fields returns the failing field names in sorted order
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error implements error
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// OrNil returns nil for an empty set so callers never hand out a non-nil error interface holding nothing.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// NewUniqueViolation builds the field error reported when a natural key is already taken.
func NewUniqueViolation(kind Kind, field string) FieldErrors {
	return FieldErrors{
		field: {fmt.Sprintf("%s with this %s already exists.", kind.Label(), field)},
	}
}
