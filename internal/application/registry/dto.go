package registry

import (
	"github.com/registry/backend/internal/domain/registry"
)

// DecodeErrors holds the body fields whose JSON value had the wrong type.
// Validation reports them together with every other failing field.
type DecodeErrors struct {
	fields registry.FieldErrors
}

// SetDecodeErrors records the fields that could not be decoded
func (d *DecodeErrors) SetDecodeErrors(errs registry.FieldErrors) {
	d.fields = errs
}

func (d *DecodeErrors) decodeErrors() registry.FieldErrors {
	return d.fields
}

// =============================================================================
// Natural person DTOs
// =============================================================================

// NaturalPersonRequest is the body of a natural person create or full replace
type NaturalPersonRequest struct {
	DecodeErrors `json:"-" validate:"-"`

	TaxID       string `json:"taxId" validate:"required,taxid"`
	Name        string `json:"name" validate:"required,max=200"`
	PostalCode  string `json:"postalCode" validate:"required,postalcode"`
	Email       string `json:"email" validate:"required,max=254,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone"`
}

func (r *NaturalPersonRequest) clean() {
	r.TaxID = cleanText(r.TaxID)
	r.Name = cleanFreeText(r.Name)
	r.PostalCode = cleanText(r.PostalCode)
	r.Email = cleanText(r.Email)
	r.PhoneNumber = cleanText(r.PhoneNumber)
}

func (r *NaturalPersonRequest) toDomain() *registry.NaturalPerson {
	return registry.NewNaturalPerson(r.TaxID, r.Name, r.PostalCode, r.Email, r.PhoneNumber)
}

// NaturalPersonResponse represents a natural person in API responses
type NaturalPersonResponse struct {
	ID          uint64 `json:"id"`
	TaxID       string `json:"taxId"`
	Name        string `json:"name"`
	PostalCode  string `json:"postalCode"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToNaturalPersonResponse converts a domain NaturalPerson to a response DTO
func ToNaturalPersonResponse(p *registry.NaturalPerson) NaturalPersonResponse {
	return NaturalPersonResponse{
		ID:          p.ID,
		TaxID:       p.TaxID,
		Name:        p.Name,
		PostalCode:  p.PostalCode,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

// ToNaturalPersonResponses converts a slice, never returning nil
func ToNaturalPersonResponses(people []registry.NaturalPerson) []NaturalPersonResponse {
	out := make([]NaturalPersonResponse, len(people))
	for i := range people {
		out[i] = ToNaturalPersonResponse(&people[i])
	}
	return out
}

// =============================================================================
// Legal entity DTOs
// =============================================================================

// LegalEntityRequest is the body of a legal entity create or full replace
type LegalEntityRequest struct {
	DecodeErrors `json:"-" validate:"-"`

	RegistrationID    string `json:"registrationId" validate:"required,regid"`
	LegalName         string `json:"legalName" validate:"required,max=200"`
	TradeName         string `json:"tradeName" validate:"required,max=200"`
	StateRegistration string `json:"stateRegistration" validate:"required,statereg"`
	PostalCode        string `json:"postalCode" validate:"required,postalcode"`
	Email             string `json:"email" validate:"required,max=254,email"`
	PhoneNumber       string `json:"phoneNumber" validate:"required,phone"`
	OwnerID           string `json:"ownerId" validate:"required,ownerid"`
}

func (r *LegalEntityRequest) clean() {
	r.RegistrationID = cleanText(r.RegistrationID)
	r.LegalName = cleanFreeText(r.LegalName)
	r.TradeName = cleanFreeText(r.TradeName)
	r.StateRegistration = cleanText(r.StateRegistration)
	r.PostalCode = cleanText(r.PostalCode)
	r.Email = cleanText(r.Email)
	r.PhoneNumber = cleanText(r.PhoneNumber)
	r.OwnerID = cleanText(r.OwnerID)
}

func (r *LegalEntityRequest) toDomain() *registry.LegalEntity {
	return registry.NewLegalEntity(r.RegistrationID, r.LegalName, r.TradeName, r.StateRegistration,
		r.PostalCode, r.Email, r.PhoneNumber, r.OwnerID)
}

// LegalEntityResponse represents a legal entity in API responses
type LegalEntityResponse struct {
	ID                uint64 `json:"id"`
	RegistrationID    string `json:"registrationId"`
	LegalName         string `json:"legalName"`
	TradeName         string `json:"tradeName"`
	StateRegistration string `json:"stateRegistration"`
	OwnerID           string `json:"ownerId"`
	PostalCode        string `json:"postalCode"`
	Email             string `json:"email"`
	PhoneNumber       string `json:"phoneNumber"`
}

// ToLegalEntityResponse converts a domain LegalEntity to a response DTO
func ToLegalEntityResponse(e *registry.LegalEntity) LegalEntityResponse {
	return LegalEntityResponse{
		ID:                e.ID,
		RegistrationID:    e.RegistrationID,
		LegalName:         e.LegalName,
		TradeName:         e.TradeName,
		StateRegistration: e.StateRegistration,
		OwnerID:           e.OwnerID,
		PostalCode:        e.PostalCode,
		Email:             e.Email,
		PhoneNumber:       e.PhoneNumber,
	}
}

// ToLegalEntityResponses converts a slice, never returning nil
func ToLegalEntityResponses(entities []registry.LegalEntity) []LegalEntityResponse {
	out := make([]LegalEntityResponse, len(entities))
	for i := range entities {
		out[i] = ToLegalEntityResponse(&entities[i])
	}
	return out
}

// =============================================================================
// Good DTOs
// =============================================================================

// GoodRequest is the body of a good create or full replace
type GoodRequest struct {
	DecodeErrors `json:"-" validate:"-"`

	GoodType    string `json:"goodType" validate:"required,goodtype"`
	Description string `json:"description" validate:"required"`
	OwnerID     string `json:"ownerId" validate:"required,ownerid"`
}

func (r *GoodRequest) clean() {
	r.GoodType = cleanText(r.GoodType)
	r.Description = cleanFreeText(r.Description)
	r.OwnerID = cleanText(r.OwnerID)
}

func (r *GoodRequest) toDomain() *registry.Good {
	return registry.NewGood(registry.GoodType(r.GoodType), r.Description, r.OwnerID)
}

// GoodResponse represents a good in API responses
type GoodResponse struct {
	ID          uint64 `json:"id"`
	GoodType    string `json:"goodType"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}

// ToGoodResponse converts a domain Good to a response DTO
func ToGoodResponse(g *registry.Good) GoodResponse {
	return GoodResponse{
		ID:          g.ID,
		GoodType:    g.GoodType.String(),
		Description: g.Description,
		OwnerID:     g.OwnerID,
	}
}

// ToGoodResponses converts a slice, never returning nil
func ToGoodResponses(goods []registry.Good) []GoodResponse {
	out := make([]GoodResponse, len(goods))
	for i := range goods {
		out[i] = ToGoodResponse(&goods[i])
	}
	return out
}
