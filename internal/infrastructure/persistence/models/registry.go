package models

import (
	"github.com/registry/backend/internal/domain/registry"
)

// NaturalPersonModel is the persistence model for the NaturalPerson domain entity.
type NaturalPersonModel struct {
	BaseModel
	TaxID       string `gorm:"column:tax_id;type:varchar(11);not null;uniqueIndex:uq_natural_persons_tax_id"`
	Name        string `gorm:"type:varchar(200);not null"`
	PostalCode  string `gorm:"type:varchar(8);not null"`
	Email       string `gorm:"type:varchar(254);not null"`
	PhoneNumber string `gorm:"type:varchar(12);not null"`
}

// TableName returns the table name for GORM
func (NaturalPersonModel) TableName() string {
	return "natural_persons"
}

// ToDomain converts the persistence model to a domain NaturalPerson entity.
func (m *NaturalPersonModel) ToDomain() *registry.NaturalPerson {
	return &registry.NaturalPerson{
		BaseEntity:  m.BaseModel.ToDomain(),
		TaxID:       m.TaxID,
		Name:        m.Name,
		PostalCode:  m.PostalCode,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
	}
}

// FromDomain populates the persistence model from a domain NaturalPerson entity.
func (m *NaturalPersonModel) FromDomain(p *registry.NaturalPerson) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.TaxID = p.TaxID
	m.Name = p.Name
	m.PostalCode = p.PostalCode
	m.Email = p.Email
	m.PhoneNumber = p.PhoneNumber
}

// NaturalPersonModelFromDomain creates a new persistence model from a domain NaturalPerson entity.
func NaturalPersonModelFromDomain(p *registry.NaturalPerson) *NaturalPersonModel {
	m := &NaturalPersonModel{}
	m.FromDomain(p)
	return m
}

// LegalEntityModel is the persistence model for the LegalEntity domain entity.
// OwnerID is indexed but carries no foreign key: ownership is a soft reference.
type LegalEntityModel struct {
	BaseModel
	RegistrationID    string `gorm:"column:registration_id;type:varchar(14);not null;uniqueIndex:uq_legal_entities_registration_id"`
	LegalName         string `gorm:"type:varchar(200);not null"`
	TradeName         string `gorm:"type:varchar(200);not null"`
	StateRegistration string `gorm:"type:varchar(12);not null"`
	PostalCode        string `gorm:"type:varchar(8);not null"`
	Email             string `gorm:"type:varchar(254);not null"`
	PhoneNumber       string `gorm:"type:varchar(12);not null"`
	OwnerID           string `gorm:"column:owner_id;type:varchar(14);not null;index:idx_legal_entities_owner_id"`
}

// TableName returns the table name for GORM
func (LegalEntityModel) TableName() string {
	return "legal_entities"
}

// ToDomain converts the persistence model to a domain LegalEntity entity.
func (m *LegalEntityModel) ToDomain() *registry.LegalEntity {
	return &registry.LegalEntity{
		BaseEntity:        m.BaseModel.ToDomain(),
		RegistrationID:    m.RegistrationID,
		LegalName:         m.LegalName,
		TradeName:         m.TradeName,
		StateRegistration: m.StateRegistration,
		PostalCode:        m.PostalCode,
		Email:             m.Email,
		PhoneNumber:       m.PhoneNumber,
		OwnerID:           m.OwnerID,
	}
}

// FromDomain populates the persistence model from a domain LegalEntity entity.
func (m *LegalEntityModel) FromDomain(e *registry.LegalEntity) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.RegistrationID = e.RegistrationID
	m.LegalName = e.LegalName
	m.TradeName = e.TradeName
	m.StateRegistration = e.StateRegistration
	m.PostalCode = e.PostalCode
	m.Email = e.Email
	m.PhoneNumber = e.PhoneNumber
	m.OwnerID = e.OwnerID
}

// LegalEntityModelFromDomain creates a new persistence model from a domain LegalEntity entity.
func LegalEntityModelFromDomain(e *registry.LegalEntity) *LegalEntityModel {
	m := &LegalEntityModel{}
	m.FromDomain(e)
	return m
}

// GoodModel is the persistence model for the Good domain entity.
type GoodModel struct {
	BaseModel
	GoodType    registry.GoodType `gorm:"type:varchar(16);not null"`
	Description string            `gorm:"type:text;not null"`
	OwnerID     string            `gorm:"column:owner_id;type:varchar(14);not null;index:idx_goods_owner_id"`
}

// TableName returns the table name for GORM
func (GoodModel) TableName() string {
	return "goods"
}

// ToDomain converts the persistence model to a domain Good entity.
func (m *GoodModel) ToDomain() *registry.Good {
	return &registry.Good{
		BaseEntity:  m.BaseModel.ToDomain(),
		GoodType:    m.GoodType,
		Description: m.Description,
		OwnerID:     m.OwnerID,
	}
}

// FromDomain populates the persistence model from a domain Good entity.
func (m *GoodModel) FromDomain(g *registry.Good) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.GoodType = g.GoodType
	m.Description = g.Description
	m.OwnerID = g.OwnerID
}

// GoodModelFromDomain creates a new persistence model from a domain Good entity.
func GoodModelFromDomain(g *registry.Good) *GoodModel {
	m := &GoodModel{}
	m.FromDomain(g)
	return m
}
