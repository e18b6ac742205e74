package registry

import "context"

// NaturalPersonRepository defines the interface for natural person persistence
type NaturalPersonRepository interface {
	// FindByID returns shared.ErrNotFound when no record has the id
	FindByID(ctx context.Context, id uint64) (*NaturalPerson, error)

	// FindAll returns every natural person ordered by id
	FindAll(ctx context.Context) ([]NaturalPerson, error)

	// FindByTaxID returns shared.ErrNotFound when no record has the tax id
	FindByTaxID(ctx context.Context, taxID string) (*NaturalPerson, error)

	// ExistsByTaxID reports whether another record (id != excludeID) holds the tax id.
	// Pass 0 to consider every record.
	ExistsByTaxID(ctx context.Context, taxID string, excludeID uint64) (bool, error)

	// Create inserts the person and assigns its id. Returns ErrDuplicateKey on a tax id collision.
	Create(ctx context.Context, person *NaturalPerson) error

	// Update replaces the stored person. Returns shared.ErrNotFound or ErrDuplicateKey.
	Update(ctx context.Context, person *NaturalPerson) error

	// Delete removes the person. Returns shared.ErrNotFound when absent.
	Delete(ctx context.Context, id uint64) error
}

// LegalEntityRepository defines the interface for legal entity persistence
type LegalEntityRepository interface {
	FindByID(ctx context.Context, id uint64) (*LegalEntity, error)
	FindAll(ctx context.Context) ([]LegalEntity, error)
	FindByRegistrationID(ctx context.Context, registrationID string) (*LegalEntity, error)
	ExistsByRegistrationID(ctx context.Context, registrationID string, excludeID uint64) (bool, error)
	Create(ctx context.Context, entity *LegalEntity) error
	Update(ctx context.Context, entity *LegalEntity) error
	Delete(ctx context.Context, id uint64) error
}

// GoodRepository defines the interface for good persistence
type GoodRepository interface {
	FindByID(ctx context.Context, id uint64) (*Good, error)
	FindAll(ctx context.Context) ([]Good, error)
	// FindByOwnerID lists goods referencing ownerID, dangling references included
	FindByOwnerID(ctx context.Context, ownerID string) ([]Good, error)
	Create(ctx context.Context, good *Good) error
	Update(ctx context.Context, good *Good) error
	Delete(ctx context.Context, id uint64) error
}
