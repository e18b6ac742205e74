package persistence

import (
	"context"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/registry/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLegalEntityRepository implements LegalEntityRepository using GORM
type GormLegalEntityRepository struct {
	db *gorm.DB
}

// NewGormLegalEntityRepository creates a new GormLegalEntityRepository
func NewGormLegalEntityRepository(db *gorm.DB) *GormLegalEntityRepository {
	return &GormLegalEntityRepository{db: db}
}

// FindByID finds a legal entity by its ID
func (r *GormLegalEntityRepository) FindByID(ctx context.Context, id uint64) (*registry.LegalEntity, error) {
	var model models.LegalEntityModel
	if err := first(ctx, r.db, &model, "id = ?", id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every legal entity ordered by id
func (r *GormLegalEntityRepository) FindAll(ctx context.Context) ([]registry.LegalEntity, error) {
	var rows []models.LegalEntityModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	entities := make([]registry.LegalEntity, len(rows))
	for i := range rows {
		entities[i] = *rows[i].ToDomain()
	}
	return entities, nil
}

// FindByRegistrationID finds a legal entity by registration id
func (r *GormLegalEntityRepository) FindByRegistrationID(ctx context.Context, registrationID string) (*registry.LegalEntity, error) {
	var model models.LegalEntityModel
	if err := first(ctx, r.db, &model, "registration_id = ?", registrationID); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByRegistrationID checks whether another legal entity holds the registration id
func (r *GormLegalEntityRepository) ExistsByRegistrationID(ctx context.Context, registrationID string, excludeID uint64) (bool, error) {
	return existsBy(ctx, r.db, &models.LegalEntityModel{}, "registration_id", registrationID, excludeID)
}

// Create inserts a legal entity and writes the assigned id back to it
func (r *GormLegalEntityRepository) Create(ctx context.Context, entity *registry.LegalEntity) error {
	model := models.LegalEntityModelFromDomain(entity)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	entity.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update replaces every field of a stored legal entity
func (r *GormLegalEntityRepository) Update(ctx context.Context, entity *registry.LegalEntity) error {
	if !entity.IsPersisted() {
		return shared.ErrNotFound
	}
	return updateRecord(ctx, r.db, models.LegalEntityModelFromDomain(entity))
}

// Delete deletes a legal entity. Goods and entities it owns are left untouched.
func (r *GormLegalEntityRepository) Delete(ctx context.Context, id uint64) error {
	return deleteRecord(ctx, r.db, &models.LegalEntityModel{}, id)
}

var _ registry.LegalEntityRepository = (*GormLegalEntityRepository)(nil)
