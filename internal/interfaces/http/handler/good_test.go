package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	appregistry "github.com/registry/backend/internal/application/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoodHandler_Create(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")

	for _, goodType := range []string{"real_estate", "vehicle", "company"} {
		t.Run(goodType, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/goods/", goodPayload(goodType, "12345678901"))
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			got := decode[map[string]any](t, w)
			assert.Equal(t, goodType, got["goodType"])
			assert.Equal(t, "12345678901", got["ownerId"])
			assert.Len(t, got, 4)
		})
	}
}

func TestGoodHandler_InvalidChoice(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")

	w := env.do(t, http.MethodPost, "/goods/", goodPayload("boat", "12345678901"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"goodType":["\"boat\" is not a valid choice."]}`, w.Body.String())
}

func TestGoodHandler_UnknownOwner(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/goods/", goodPayload("vehicle", "11222333000181"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"owner":"Must be an existing cpf or cnpj."}`, w.Body.String())
}

func TestGoodHandler_OwnedByEntity(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")
	env.createEntity(t, "11222333000181", "12345678901")

	w := env.do(t, http.MethodPost, "/goods/", goodPayload("company", "11222333000181"))
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestGoodHandler_ListByOwner(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")
	env.createPerson(t, "10987654321")

	for _, owner := range []string{"12345678901", "10987654321", "12345678901"} {
		w := env.do(t, http.MethodPost, "/goods/", goodPayload("vehicle", owner))
		require.Equal(t, http.StatusCreated, w.Code)
	}

	all := decode[[]appregistry.GoodResponse](t, env.do(t, http.MethodGet, "/goods/", nil))
	assert.Len(t, all, 3)

	owned := decode[[]appregistry.GoodResponse](t, env.do(t, http.MethodGet, "/goods/?ownerId=12345678901", nil))
	require.Len(t, owned, 2)
	assert.Less(t, owned[0].ID, owned[1].ID)
	for _, g := range owned {
		assert.Equal(t, "12345678901", g.OwnerID)
	}

	w := env.do(t, http.MethodGet, "/goods/?ownerId=55555555555", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGoodHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")
	env.createPerson(t, "10987654321")

	w := env.do(t, http.MethodPost, "/goods/", goodPayload("vehicle", "12345678901"))
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode[appregistry.GoodResponse](t, w).ID
	path := fmt.Sprintf("/goods/%d/", id)

	payload := goodPayload("real_estate", "10987654321")
	payload["description"] = "Beach house"
	w = env.do(t, http.MethodPut, path, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	got := decode[appregistry.GoodResponse](t, w)
	assert.Equal(t, appregistry.GoodResponse{
		ID:          id,
		GoodType:    "real_estate",
		Description: "Beach house",
		OwnerID:     "10987654321",
	}, got)

	t.Run("missing record with unparsable body", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/goods/999/", `{{{`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestGoodHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")

	w := env.do(t, http.MethodPost, "/goods/", goodPayload("vehicle", "12345678901"))
	require.Equal(t, http.StatusCreated, w.Code)
	path := fmt.Sprintf("/goods/%d/", decode[appregistry.GoodResponse](t, w).ID)

	w = env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, path, nil).Code)
}
