package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalPersonRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGormNaturalPersonRepository(newTestDatabase(t).DB)

	first := registry.NewNaturalPerson("12345678901", "Ana", "01001000", "ana@example.com", "11987654321")
	second := registry.NewNaturalPerson("10987654321", "Bruno", "01001000", "bruno@example.com", "1133334444")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, "Bruno", all[1].Name)

	found, err := repo.FindByTaxID(ctx, "12345678901")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	exists, err := repo.ExistsByTaxID(ctx, "12345678901", 0)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.ExistsByTaxID(ctx, "12345678901", first.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	found.Name = "Ana Maria"
	require.NoError(t, repo.Update(ctx, found))
	reloaded, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", reloaded.Name)
	assert.Equal(t, first.CreatedAt.Unix(), reloaded.CreatedAt.Unix())

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), shared.ErrNotFound)
}

func TestNaturalPersonRepository_DuplicateTaxID(t *testing.T) {
	ctx := context.Background()
	repo := NewGormNaturalPersonRepository(newTestDatabase(t).DB)

	require.NoError(t, repo.Create(ctx, registry.NewNaturalPerson("12345678901", "Ana", "01001000", "ana@example.com", "11987654321")))
	err := repo.Create(ctx, registry.NewNaturalPerson("12345678901", "Other", "01001000", "o@example.com", "11987654321"))
	assert.ErrorIs(t, err, registry.ErrDuplicateKey)
}

func TestNaturalPersonRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewGormNaturalPersonRepository(newTestDatabase(t).DB)

	person := registry.NewNaturalPerson("12345678901", "Ana", "01001000", "ana@example.com", "11987654321")
	assert.ErrorIs(t, repo.Update(ctx, person), shared.ErrNotFound)

	person.ID = 42
	assert.ErrorIs(t, repo.Update(ctx, person), shared.ErrNotFound)
}

func TestNaturalPersonRepository_FindByID_Postgres(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()
	repo := NewGormNaturalPersonRepository(db.DB)

	mock.ExpectQuery(`SELECT \* FROM "natural_persons" WHERE id = \$1 ORDER BY .* LIMIT .*`).
		WithArgs(uint64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tax_id", "name", "postal_code", "email", "phone_number"}).
			AddRow(7, "12345678901", "Ana", "01001000", "ana@example.com", "11987654321"))

	person, err := repo.FindByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), person.ID)
	assert.Equal(t, "12345678901", person.TaxID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNaturalPersonRepository_FindByID_NotFound_Postgres(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()
	repo := NewGormNaturalPersonRepository(db.DB)

	mock.ExpectQuery(`SELECT \* FROM "natural_persons" WHERE id = \$1`).
		WithArgs(uint64(9), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), 9)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLegalEntityRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGormLegalEntityRepository(newTestDatabase(t).DB)

	entity := registry.NewLegalEntity("12345678000199", "Acme Ltda", "Acme", "123456789", "01001000", "acme@example.com", "1133334444", "12345678901")
	require.NoError(t, repo.Create(ctx, entity))
	assert.NotZero(t, entity.ID)

	err := repo.Create(ctx, registry.NewLegalEntity("12345678000199", "Other", "Other", "123456789", "01001000", "o@example.com", "1133334444", "12345678901"))
	assert.ErrorIs(t, err, registry.ErrDuplicateKey)

	found, err := repo.FindByRegistrationID(ctx, "12345678000199")
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltda", found.LegalName)
	assert.Equal(t, "12345678901", found.OwnerID)

	exists, err := repo.ExistsByRegistrationID(ctx, "12345678000199", entity.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	found.TradeName = "Acme Co"
	require.NoError(t, repo.Update(ctx, found))
	reloaded, err := repo.FindByID(ctx, entity.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", reloaded.TradeName)

	_, err = repo.FindByRegistrationID(ctx, "99999999000199")
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, repo.Delete(ctx, entity.ID))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGoodRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewGormGoodRepository(newTestDatabase(t).DB)

	house := registry.NewGood(registry.GoodTypeRealEstate, "Beach house", "12345678901")
	car := registry.NewGood(registry.GoodTypeVehicle, "Sedan", "12345678000199")
	boat := registry.NewGood(registry.GoodTypeVehicle, "Boat", "12345678901")
	for _, g := range []*registry.Good{house, car, boat} {
		require.NoError(t, repo.Create(ctx, g))
	}

	owned, err := repo.FindByOwnerID(ctx, "12345678901")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, house.ID, owned[0].ID)
	assert.Equal(t, boat.ID, owned[1].ID)

	car.GoodType = registry.GoodTypeCompany
	car.Description = "Holding"
	require.NoError(t, repo.Update(ctx, car))
	reloaded, err := repo.FindByID(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, registry.GoodTypeCompany, reloaded.GoodType)
	assert.Equal(t, "Holding", reloaded.Description)

	require.NoError(t, repo.Delete(ctx, house.ID))
	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.ErrorIs(t, repo.Delete(ctx, house.ID), shared.ErrNotFound)
}
