package persistence

import (
	"errors"
	"strings"

	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// translateError maps gorm errors to domain errors
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.ErrNotFound
	case isDuplicateKey(err):
		return registry.ErrDuplicateKey
	default:
		return err
	}
}

// isDuplicateKey recognizes unique violations, including ones that reached us untranslated
// (sqlmock connections and statements run outside TranslateError).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}
