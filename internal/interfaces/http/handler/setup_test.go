package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	appregistry "github.com/registry/backend/internal/application/registry"
	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/infrastructure/config"
	"github.com/registry/backend/internal/infrastructure/persistence"
	"github.com/registry/backend/internal/interfaces/http/handler"
	"github.com/registry/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testEnv wires the registry handlers to real services over sqlite
type testEnv struct {
	db     *persistence.Database
	engine *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := persistence.NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })

	persons := persistence.NewGormNaturalPersonRepository(db.DB)
	entities := persistence.NewGormLegalEntityRepository(db.DB)
	goods := persistence.NewGormGoodRepository(db.DB)
	owners := registry.NewOwnershipResolver(persons, entities)
	validator := appregistry.NewValidator(registry.Rules)
	log := zap.NewNop()

	people := handler.NewNaturalPersonHandler(appregistry.NewNaturalPersonService(persons, validator, log))
	legal := handler.NewLegalEntityHandler(appregistry.NewLegalEntityService(entities, owners, validator, log))
	goodHandler := handler.NewGoodHandler(appregistry.NewGoodService(goods, owners, validator, log))

	// Same route table as the server, without the authentication gate
	engine := gin.New()
	r := router.NewRouter(engine)
	r.Register(router.RecordRoutes("physical-people", "/physical-people", people, nil))
	r.Register(router.RecordRoutes("legal-people", "/legal-people", legal, nil))
	r.Register(router.RecordRoutes("goods", "/goods", goodHandler, nil))
	r.Setup()

	return &testEnv{db: db, engine: engine}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func personPayload(taxID string) map[string]any {
	return map[string]any{
		"taxId":       taxID,
		"name":        "Maria Silva",
		"postalCode":  "01310100",
		"email":       "maria@example.com",
		"phoneNumber": "11987654321",
	}
}

func entityPayload(registrationID, ownerID string) map[string]any {
	return map[string]any{
		"registrationId":    registrationID,
		"legalName":         "Silva Comercio LTDA",
		"tradeName":         "Silva Store",
		"stateRegistration": "123456789",
		"postalCode":        "01310100",
		"email":             "contact@silva.example.com",
		"phoneNumber":       "1133334444",
		"ownerId":           ownerID,
	}
}

func goodPayload(goodType, ownerID string) map[string]any {
	return map[string]any{
		"goodType":    goodType,
		"description": "Apartment on Paulista Avenue",
		"ownerId":     ownerID,
	}
}

// createPerson registers a natural person and returns its id
func (e *testEnv) createPerson(t *testing.T, taxID string) uint64 {
	t.Helper()
	w := e.do(t, http.MethodPost, "/physical-people/", personPayload(taxID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[appregistry.NaturalPersonResponse](t, w).ID
}

func (e *testEnv) createEntity(t *testing.T, registrationID, ownerID string) uint64 {
	t.Helper()
	w := e.do(t, http.MethodPost, "/legal-people/", entityPayload(registrationID, ownerID))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[appregistry.LegalEntityResponse](t, w).ID
}
