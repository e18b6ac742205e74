package persistence

import (
	"context"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/registry/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGoodRepository implements GoodRepository using GORM
type GormGoodRepository struct {
	db *gorm.DB
}

// NewGormGoodRepository creates a new GormGoodRepository
func NewGormGoodRepository(db *gorm.DB) *GormGoodRepository {
	return &GormGoodRepository{db: db}
}

// FindByID finds a good by its ID
func (r *GormGoodRepository) FindByID(ctx context.Context, id uint64) (*registry.Good, error) {
	var model models.GoodModel
	if err := first(ctx, r.db, &model, "id = ?", id); err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns every good ordered by id
func (r *GormGoodRepository) FindAll(ctx context.Context) ([]registry.Good, error) {
	return r.find(r.db.WithContext(ctx))
}

// FindByOwnerID returns the goods whose owner id equals ownerID
func (r *GormGoodRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]registry.Good, error) {
	return r.find(r.db.WithContext(ctx).Where("owner_id = ?", ownerID))
}

func (r *GormGoodRepository) find(query *gorm.DB) ([]registry.Good, error) {
	var rows []models.GoodModel
	if err := query.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	goods := make([]registry.Good, len(rows))
	for i := range rows {
		goods[i] = *rows[i].ToDomain()
	}
	return goods, nil
}

// Create inserts a good and writes the assigned id back to it
func (r *GormGoodRepository) Create(ctx context.Context, good *registry.Good) error {
	model := models.GoodModelFromDomain(good)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(err)
	}
	good.BaseEntity = model.BaseModel.ToDomain()
	return nil
}

// Update replaces every field of a stored good
func (r *GormGoodRepository) Update(ctx context.Context, good *registry.Good) error {
	if !good.IsPersisted() {
		return shared.ErrNotFound
	}
	return updateRecord(ctx, r.db, models.GoodModelFromDomain(good))
}

// Delete deletes a good
func (r *GormGoodRepository) Delete(ctx context.Context, id uint64) error {
	return deleteRecord(ctx, r.db, &models.GoodModel{}, id)
}

var _ registry.GoodRepository = (*GormGoodRepository)(nil)
