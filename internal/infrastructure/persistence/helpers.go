package persistence

import (
	"context"

	"github.com/registry/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// updateRecord overwrites every column of model except id and created_at.
// model must carry its primary key; a missing row is shared.ErrNotFound.
func updateRecord(ctx context.Context, db *gorm.DB, model any) error {
	result := db.WithContext(ctx).Model(model).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// deleteRecord hard deletes the row with id from model's table
func deleteRecord(ctx context.Context, db *gorm.DB, model any, id uint64) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// existsBy reports whether a row other than excludeID has column = value
func existsBy(ctx context.Context, db *gorm.DB, model any, column, value string, excludeID uint64) (bool, error) {
	query := db.WithContext(ctx).Model(model).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// first loads the first row matching query into dest. A miss is shared.ErrNotFound.
func first(ctx context.Context, db *gorm.DB, dest any, query string, args ...any) error {
	return translateError(db.WithContext(ctx).Where(query, args...).Take(dest).Error)
}
