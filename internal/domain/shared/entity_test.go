package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBaseEntity(t *testing.T) {
	t.Run("new entity is not persisted", func(t *testing.T) {
		e := NewBaseEntity()

		assert.False(t, e.IsPersisted())
		assert.Zero(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
		assert.Equal(t, e.CreatedAt, e.UpdatedAt)
	})

	t.Run("touch moves updated at forward", func(t *testing.T) {
		e := NewBaseEntity()
		e.UpdatedAt = e.UpdatedAt.Add(-time.Minute)
		before := e.UpdatedAt

		e.Touch()

		assert.True(t, e.UpdatedAt.After(before))
	})

	t.Run("entity with id is persisted", func(t *testing.T) {
		e := BaseEntity{ID: 7}
		assert.True(t, e.IsPersisted())
	})
}
