package registry

import (
	"slices"

	"github.com/registry/backend/internal/domain/shared"
)

// GoodType is the closed set of asset categories
type GoodType string

const (
	GoodTypeRealEstate GoodType = "real_estate"
	GoodTypeVehicle    GoodType = "vehicle"
	GoodTypeCompany    GoodType = "company"
)

// GoodTypes lists every accepted good type in declaration order
func GoodTypes() []GoodType {
	return []GoodType{GoodTypeRealEstate, GoodTypeVehicle, GoodTypeCompany}
}

// IsValid checks if the GoodType is one of the accepted values
func (t GoodType) IsValid() bool {
	return slices.Contains(GoodTypes(), t)
}

// String returns the string representation of the GoodType
func (t GoodType) String() string {
	return string(t)
}

// Good is an asset owned by a natural person or a legal entity.
type Good struct {
	shared.BaseEntity
	GoodType    GoodType
	Description string
	OwnerID     string
}

// NewGood creates a good that has not been persisted yet
func NewGood(goodType GoodType, description, ownerID string) *Good {
	return &Good{
		BaseEntity:  shared.NewBaseEntity(),
		GoodType:    goodType,
		Description: description,
		OwnerID:     ownerID,
	}
}

// ReplaceWith overwrites every mutable field with src's. ID and CreatedAt are kept.
func (g *Good) ReplaceWith(src *Good) {
	g.GoodType = src.GoodType
	g.Description = src.Description
	g.OwnerID = src.OwnerID
	g.Touch()
}
