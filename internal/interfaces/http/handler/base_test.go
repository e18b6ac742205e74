package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	appidentity "github.com/registry/backend/internal/application/identity"
	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/registry/backend/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "field errors",
			err:        registry.FieldErrors{"taxId": {"Must be exactly 11 digits."}},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"taxId":["Must be exactly 11 digits."]}`,
		},
		{
			name:       "wrapped field errors",
			err:        fmt.Errorf("create: %w", registry.NewUniqueViolation(registry.KindNaturalPerson, "taxId")),
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"taxId":["natural person with this taxId already exists."]}`,
		},
		{
			name:       "owner not found",
			err:        registry.ErrOwnerNotFound,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"owner":"Must be an existing cpf or cnpj."}`,
		},
		{
			name:       "not found",
			err:        fmt.Errorf("get good: %w", shared.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "auth error",
			err:        appidentity.ErrTokenRevoked,
			wantStatus: http.StatusForbidden,
			wantBody:   `{"detail":"Token has been revoked."}`,
		},
		{
			name:       "anything else",
			err:        errors.New("connection reset by peer"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"detail":"A server error occurred."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			h.HandleError(c, tt.err)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestBaseHandler_HandleErrorLogsServerErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/goods/", nil)
	c.Set(logger.GinLoggerKey, zap.New(core))

	h.HandleError(c, errors.New("disk full"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "Request failed", entries[0].Message)
		assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
	}
}

func TestBaseHandler_HandleErrorNil(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.HandleError(c, nil)
	assert.False(t, c.Writer.Written())
}

func TestBaseHandler_ParseID(t *testing.T) {
	tests := []struct {
		param  string
		wantID uint64
		wantOK bool
	}{
		{"1", 1, true},
		{"18446744073709551615", 18446744073709551615, true},
		{"0", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
		{"1.5", 0, false},
		{"18446744073709551616", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := h.parseID(c)
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !ok {
				assert.Equal(t, http.StatusNotFound, w.Code)
			}
		})
	}
}
