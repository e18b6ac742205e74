// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free of ORM concerns.
//
// Structure:
//   - base.go: BaseModel with the auto-increment id and timestamps
//   - registry.go: natural_persons, legal_entities and goods
//   - identity.go: users
//
// The column widths here mirror the SQL files under migrations/, which are the
// source of truth for postgres. AutoMigrate is only used for sqlite and tests.
package models
