package registry

import "github.com/registry/backend/internal/domain/shared"

// NaturalPerson is an individual identified by an 11 digit tax id.
type NaturalPerson struct {
	shared.BaseEntity
	TaxID       string
	Name        string
	PostalCode  string
	Email       string
	PhoneNumber string
}

// NewNaturalPerson creates a natural person that has not been persisted yet.
// Field shapes are checked by the caller against Rules.
func NewNaturalPerson(taxID, name, postalCode, email, phoneNumber string) *NaturalPerson {
	return &NaturalPerson{
		BaseEntity:  shared.NewBaseEntity(),
		TaxID:       taxID,
		Name:        name,
		PostalCode:  postalCode,
		Email:       email,
		PhoneNumber: phoneNumber,
	}
}

// ReplaceWith overwrites every mutable field with src's. ID and CreatedAt are kept.
func (p *NaturalPerson) ReplaceWith(src *NaturalPerson) {
	p.TaxID = src.TaxID
	p.Name = src.Name
	p.PostalCode = src.PostalCode
	p.Email = src.Email
	p.PhoneNumber = src.PhoneNumber
	p.Touch()
}

// OwnerKey is the identifier other records use to reference this person as owner
func (p *NaturalPerson) OwnerKey() string {
	return p.TaxID
}
