package registry

import "github.com/registry/backend/internal/domain/shared"

// LegalEntity is a company identified by a 14 digit registration id.
// OwnerID is a soft reference to a NaturalPerson.TaxID or LegalEntity.RegistrationID,
// checked only when the record is written.
type LegalEntity struct {
	shared.BaseEntity
	RegistrationID    string
	LegalName         string
	TradeName         string
	StateRegistration string
	PostalCode        string
	Email             string
	PhoneNumber       string
	OwnerID           string
}

// NewLegalEntity creates a legal entity that has not been persisted yet
func NewLegalEntity(registrationID, legalName, tradeName, stateRegistration, postalCode, email, phoneNumber, ownerID string) *LegalEntity {
	return &LegalEntity{
		BaseEntity:        shared.NewBaseEntity(),
		RegistrationID:    registrationID,
		LegalName:         legalName,
		TradeName:         tradeName,
		StateRegistration: stateRegistration,
		PostalCode:        postalCode,
		Email:             email,
		PhoneNumber:       phoneNumber,
		OwnerID:           ownerID,
	}
}

// ReplaceWith overwrites every mutable field with src's. ID and CreatedAt are kept.
func (e *LegalEntity) ReplaceWith(src *LegalEntity) {
	e.RegistrationID = src.RegistrationID
	e.LegalName = src.LegalName
	e.TradeName = src.TradeName
	e.StateRegistration = src.StateRegistration
	e.PostalCode = src.PostalCode
	e.Email = src.Email
	e.PhoneNumber = src.PhoneNumber
	e.OwnerID = src.OwnerID
	e.Touch()
}

// OwnerKey is the identifier other records use to reference this entity as owner
func (e *LegalEntity) OwnerKey() string {
	return e.RegistrationID
}
