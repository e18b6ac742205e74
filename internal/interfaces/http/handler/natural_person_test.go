package handler_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	appregistry "github.com/registry/backend/internal/application/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNaturalPersonHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/physical-people/", personPayload("12345678901"))
	require.Equal(t, http.StatusCreated, w.Code)

	got := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), got["id"])
	assert.Equal(t, "12345678901", got["taxId"])
	assert.Equal(t, "Maria Silva", got["name"])
	assert.Equal(t, "01310100", got["postalCode"])
	assert.Equal(t, "maria@example.com", got["email"])
	assert.Equal(t, "11987654321", got["phoneNumber"])
	assert.Len(t, got, 6)
}

func TestNaturalPersonHandler_CreateTrimsFields(t *testing.T) {
	env := newTestEnv(t)

	payload := personPayload(" 12345678901 ")
	payload["name"] = "  Maria Silva  "
	w := env.do(t, http.MethodPost, "/physical-people/", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	got := decode[appregistry.NaturalPersonResponse](t, w)
	assert.Equal(t, "12345678901", got.TaxID)
	assert.Equal(t, "Maria Silva", got.Name)
}

func TestNaturalPersonHandler_CreateFieldErrors(t *testing.T) {
	env := newTestEnv(t)

	payload := personPayload("123")
	payload["postalCode"] = "0131010"
	payload["email"] = "not-an-email"
	payload["phoneNumber"] = "119876543210123"
	payload["name"] = strings.Repeat("a", 201)

	w := env.do(t, http.MethodPost, "/physical-people/", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"taxId": ["Must be exactly 11 digits."],
		"name": ["Ensure this field has no more than 200 characters."],
		"postalCode": ["Must be exactly 8 digits."],
		"email": ["Enter a valid email address."],
		"phoneNumber": ["Must have between 10 and 12 digits."]
	}`, w.Body.String())

	list := env.do(t, http.MethodGet, "/physical-people/", nil)
	assert.JSONEq(t, `[]`, list.Body.String())
}

func TestNaturalPersonHandler_CreateMissingFields(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []string{`{}`, ``} {
		t.Run(fmt.Sprintf("body %q", body), func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/physical-people/", body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			got := decode[map[string][]string](t, w)
			for _, field := range []string{"taxId", "name", "postalCode", "email", "phoneNumber"} {
				assert.Equal(t, []string{appregistry.ReasonRequired}, got[field], field)
			}
		})
	}
}

func TestNaturalPersonHandler_CreateMalformedBody(t *testing.T) {
	env := newTestEnv(t)

	t.Run("syntax error", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/physical-people/", `{"taxId": `)
		require.Equal(t, http.StatusBadRequest, w.Code)
		got := decode[map[string]string](t, w)
		assert.True(t, strings.HasPrefix(got["detail"], "JSON parse error - "), got["detail"])
	})

	t.Run("wrong type", func(t *testing.T) {
		payload := personPayload("12345678901")
		payload["taxId"] = 12345678901
		w := env.do(t, http.MethodPost, "/physical-people/", payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"taxId":["Not a valid string."]}`, w.Body.String())
	})

	t.Run("wrong types are reported with every other failing field", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/physical-people/", `{
			"taxId": 25845675391,
			"name": "",
			"postalCode": 12345678,
			"email": "bad",
			"phoneNumber": "11234567890"
		}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{
			"taxId": ["Not a valid string."],
			"name": ["This field is required."],
			"postalCode": ["Not a valid string."],
			"email": ["Enter a valid email address."]
		}`, w.Body.String())

		list := env.do(t, http.MethodGet, "/physical-people/", nil)
		assert.JSONEq(t, `[]`, list.Body.String())
	})

	t.Run("wrong type on an otherwise valid update", func(t *testing.T) {
		id := env.createPerson(t, "25845675391")
		payload := personPayload("25845675391")
		payload["phoneNumber"] = []string{"11234567890"}
		w := env.do(t, http.MethodPut, fmt.Sprintf("/physical-people/%d/", id), payload)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"phoneNumber":["Not a valid string."]}`, w.Body.String())
	})

	t.Run("null body is an empty object", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/physical-people/", `null`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{appregistry.ReasonRequired}, decode[map[string][]string](t, w)["taxId"])
	})

	t.Run("list instead of object", func(t *testing.T) {
		w := env.do(t, http.MethodPost, "/physical-people/", `[1, 2]`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"non_field_errors":["Invalid data. Expected a dictionary, but got list."]}`, w.Body.String())
	})
}

func TestNaturalPersonHandler_DuplicateTaxID(t *testing.T) {
	env := newTestEnv(t)
	env.createPerson(t, "12345678901")

	w := env.do(t, http.MethodPost, "/physical-people/", personPayload("12345678901"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"taxId":["natural person with this taxId already exists."]}`, w.Body.String())
}

func TestNaturalPersonHandler_ListOrderedByID(t *testing.T) {
	env := newTestEnv(t)
	first := env.createPerson(t, "12345678901")
	second := env.createPerson(t, "10987654321")

	w := env.do(t, http.MethodGet, "/physical-people/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decode[[]appregistry.NaturalPersonResponse](t, w)
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0].ID)
	assert.Equal(t, second, got[1].ID)
}

func TestNaturalPersonHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	id := env.createPerson(t, "12345678901")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/physical-people/%d/", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345678901", decode[appregistry.NaturalPersonResponse](t, w).TaxID)

	for _, path := range []string{"/physical-people/999/", "/physical-people/abc/", "/physical-people/0/", "/physical-people/-1/"} {
		w := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
	}
}

func TestNaturalPersonHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	id := env.createPerson(t, "12345678901")
	path := fmt.Sprintf("/physical-people/%d/", id)

	t.Run("keeps its own tax id", func(t *testing.T) {
		payload := personPayload("12345678901")
		payload["name"] = "Maria Souza"
		w := env.do(t, http.MethodPut, path, payload)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		got := decode[appregistry.NaturalPersonResponse](t, w)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, "Maria Souza", got.Name)

		reread := env.do(t, http.MethodGet, path, nil)
		assert.Equal(t, "Maria Souza", decode[appregistry.NaturalPersonResponse](t, reread).Name)
	})

	t.Run("tax id of another person", func(t *testing.T) {
		env.createPerson(t, "10987654321")
		w := env.do(t, http.MethodPut, path, personPayload("10987654321"))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"taxId":["natural person with this taxId already exists."]}`, w.Body.String())
	})

	t.Run("invalid payload", func(t *testing.T) {
		w := env.do(t, http.MethodPut, path, map[string]any{"taxId": "12345678901"})
		require.Equal(t, http.StatusBadRequest, w.Code)
		got := decode[map[string][]string](t, w)
		assert.Contains(t, got, "name")
		assert.NotContains(t, got, "taxId")
	})

	t.Run("missing record wins over a bad body", func(t *testing.T) {
		w := env.do(t, http.MethodPut, "/physical-people/999/", `{not json`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Body.String())
	})
}

func TestNaturalPersonHandler_Delete(t *testing.T) {
	env := newTestEnv(t)
	id := env.createPerson(t, "12345678901")
	path := fmt.Sprintf("/physical-people/%d/", id)

	w := env.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, path, nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, path, nil).Code)
}
