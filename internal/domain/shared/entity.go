package shared

import "time"

// BaseEntity provides the store-assigned id and timestamps shared by every record.
// ID is zero until the record has been persisted.
type BaseEntity struct {
	ID        uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPersisted reports whether the store has assigned an id
func (e *BaseEntity) IsPersisted() bool {
	return e.ID != 0
}

// Touch bumps the update timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}

// NewBaseEntity creates a new, not yet persisted, base entity
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		CreatedAt: now,
		UpdatedAt: now,
	}
}
