package registry

import (
	"context"
	"errors"
	"fmt"

	"github.com/registry/backend/internal/domain/shared"
)

// OwnerKind tags which record type an owner id resolved to
type OwnerKind string

const (
	OwnerKindCPF  OwnerKind = "cpf"
	OwnerKindCNPJ OwnerKind = "cnpj"
)

// Owner is either a *PersonOwner or an *EntityOwner. The set is closed.
type Owner interface {
	Kind() OwnerKind
	// Key is the identifier stored in ownerId fields
	Key() string
	// RecordID is the store id of the owning record
	RecordID() uint64
	isOwner()
}

// PersonOwner is an owner that resolved to a natural person
type PersonOwner struct {
	Person *NaturalPerson
}

func (o *PersonOwner) Kind() OwnerKind  { return OwnerKindCPF }
func (o *PersonOwner) Key() string      { return o.Person.OwnerKey() }
func (o *PersonOwner) RecordID() uint64 { return o.Person.ID }
func (*PersonOwner) isOwner()           {}

// EntityOwner is an owner that resolved to a legal entity
type EntityOwner struct {
	Entity *LegalEntity
}

func (o *EntityOwner) Kind() OwnerKind  { return OwnerKindCNPJ }
func (o *EntityOwner) Key() string      { return o.Entity.OwnerKey() }
func (o *EntityOwner) RecordID() uint64 { return o.Entity.ID }
func (*EntityOwner) isOwner()           {}

// OwnershipResolver looks an owner id up among natural persons and legal entities.
// Every call reads the store; nothing is cached.
type OwnershipResolver struct {
	persons  NaturalPersonRepository
	entities LegalEntityRepository
}

// NewOwnershipResolver creates an OwnershipResolver
func NewOwnershipResolver(persons NaturalPersonRepository, entities LegalEntityRepository) *OwnershipResolver {
	return &OwnershipResolver{persons: persons, entities: entities}
}

// Resolve returns the record ownerID refers to, or ErrOwnerNotFound.
// A natural person match wins over a legal entity match.
func (r *OwnershipResolver) Resolve(ctx context.Context, ownerID string) (Owner, error) {
	person, err := r.persons.FindByTaxID(ctx, ownerID)
	switch {
	case err == nil:
		return &PersonOwner{Person: person}, nil
	case !errors.Is(err, shared.ErrNotFound):
		return nil, fmt.Errorf("resolve owner by tax id: %w", err)
	}

	entity, err := r.entities.FindByRegistrationID(ctx, ownerID)
	switch {
	case err == nil:
		return &EntityOwner{Entity: entity}, nil
	case errors.Is(err, shared.ErrNotFound):
		return nil, ErrOwnerNotFound
	default:
		return nil, fmt.Errorf("resolve owner by registration id: %w", err)
	}
}

// OwnerExists reports whether ownerID matches a natural person tax id or a legal entity registration id.
func (r *OwnershipResolver) OwnerExists(ctx context.Context, ownerID string) (bool, error) {
	_, err := r.Resolve(ctx, ownerID)
	if errors.Is(err, ErrOwnerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
