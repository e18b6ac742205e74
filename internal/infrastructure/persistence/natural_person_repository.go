package persistence

import (
	"context"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/registry/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormNaturalPersonRepository implements NaturalPersonRepository using GORM
type GormNaturalPersonRepository struct {
	db *gorm.DB
}

// NewGormNaturalPersonRepository creates a new GormNaturalPersonRepository
func NewGormNaturalPersonRepository(db *gorm.DB) *GormNaturalPersonRepository {
	return &GormNaturalPersonRepository{db: db}
}

// FindByID finds a natural person by its ID
func (r *GormNaturalPersonRepository) FindByID(ctx context.Context, id uint64) (*registry.NaturalPerson, error) {
	var model models.NaturalPersonModel
	if err := first(ctx, r.db, &model, "id = ?", id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every natural person ordered by id
func (r *GormNaturalPersonRepository) FindAll(ctx context.Context) ([]registry.NaturalPerson, error) {
	var rows []models.NaturalPersonModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	people := make([]registry.NaturalPerson, len(rows))
	for i := range rows {
		people[i] = *rows[i].ToDomain()
	}
	return people, nil
}

// FindByTaxID finds a natural person by tax id
func (r *GormNaturalPersonRepository) FindByTaxID(ctx context.Context, taxID string) (*registry.NaturalPerson, error) {
	var model models.NaturalPersonModel
	if err := first(ctx, r.db, &model, "tax_id = ?", taxID); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByTaxID checks whether another natural person holds the tax id
func (r *GormNaturalPersonRepository) ExistsByTaxID(ctx context.Context, taxID string, excludeID uint64) (bool, error) {
	return existsBy(ctx, r.db, &models.NaturalPersonModel{}, "tax_id", taxID, excludeID)
}

// Create inserts a natural person and writes the assigned id back to it
func (r *GormNaturalPersonRepository) Create(ctx context.Context, person *registry.NaturalPerson) error {
	model := models.NaturalPersonModelFromDomain(person)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	person.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update replaces every field of a stored natural person
func (r *GormNaturalPersonRepository) Update(ctx context.Context, person *registry.NaturalPerson) error {
	if !person.IsPersisted() {
		return shared.ErrNotFound
	}
	return updateRecord(ctx, r.db, models.NaturalPersonModelFromDomain(person))
}

// Delete deletes a natural person
func (r *GormNaturalPersonRepository) Delete(ctx context.Context, id uint64) error {
	return deleteRecord(ctx, r.db, &models.NaturalPersonModel{}, id)
}

// Ensure GormNaturalPersonRepository implements NaturalPersonRepository
var _ registry.NaturalPersonRepository = (*GormNaturalPersonRepository)(nil)
