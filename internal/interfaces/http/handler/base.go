package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	appidentity "github.com/registry/backend/internal/application/identity"
	appregistry "github.com/registry/backend/internal/application/registry"
	"github.com/registry/backend/internal/domain/registry"
	"github.com/registry/backend/internal/domain/shared"
	"github.com/registry/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Error details that are not tied to a field
const (
	DetailServerError = "A server error occurred."
	detailParsePrefix = "JSON parse error - "
	ownerErrorKey     = "owner"
	nonFieldErrorsKey = "non_field_errors"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// DetailResponse is the body of errors that are not field errors
type DetailResponse struct {
	Detail string `json:"detail"`
}

// OK sends a 200 response with data as the whole body
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Deleted sends a 200 response without a body
func (h *BaseHandler) Deleted(c *gin.Context) {
	c.Status(http.StatusOK)
}

// NotFound sends a 404 response without a body
func (h *BaseHandler) NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// Detail sends a {"detail": ...} response
func (h *BaseHandler) Detail(c *gin.Context, status int, detail string) {
	c.JSON(status, DetailResponse{Detail: detail})
}

// HandleError maps service errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var fieldErrs registry.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, fieldErrs)
	case errors.Is(err, registry.ErrOwnerNotFound):
		c.JSON(http.StatusBadRequest, gin.H{ownerErrorKey: registry.OwnershipFailureMessage})
	case errors.Is(err, shared.ErrNotFound):
		h.NotFound(c)
	case appidentity.IsAuthError(err):
		h.Detail(c, http.StatusForbidden, err.Error())
	default:
		logger.GetGinLogger(c).Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		h.Detail(c, http.StatusInternalServerError, DetailServerError)
	}
}

// decodeErrorSink receives the fields that did not decode so validation can
// report them with the rest
type decodeErrorSink interface {
	SetDecodeErrors(registry.FieldErrors)
}

// bindJSON decodes the request body into req. On failure it writes the 400
// response and returns false. An empty body decodes as an empty object so the
// required-field checks report what is missing.
//
// Fields are decoded one at a time so a wrong-typed value is reported next to
// every other failing field instead of hiding them.
func (h *BaseHandler) bindJSON(c *gin.Context, req any) bool {
	raw, err := c.GetRawData()
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.Detail(c, http.StatusRequestEntityTooLarge, "Request body is too large.")
			return false
		}
		h.Detail(c, http.StatusBadRequest, detailParsePrefix+err.Error())
		return false
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return true
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				nonFieldErrorsKey: []string{fmtExpectedDict(typeErr.Value)},
			})
			return false
		}
		h.Detail(c, http.StatusBadRequest, detailParsePrefix+err.Error())
		return false
	}

	undecoded := registry.FieldErrors{}
	for name, value := range fields {
		single, err := json.Marshal(map[string]json.RawMessage{name: value})
		if err != nil {
			h.Detail(c, http.StatusBadRequest, detailParsePrefix+err.Error())
			return false
		}
		if err := json.Unmarshal(single, req); err != nil {
			var typeErr *json.UnmarshalTypeError
			if !errors.As(err, &typeErr) {
				h.Detail(c, http.StatusBadRequest, detailParsePrefix+err.Error())
				return false
			}
			undecoded.Add(name, appregistry.ReasonNotAString)
		}
	}
	if !undecoded.HasErrors() {
		return true
	}

	if sink, ok := req.(decodeErrorSink); ok {
		sink.SetDecodeErrors(undecoded)
		return true
	}
	c.JSON(http.StatusBadRequest, undecoded)
	return false
}

func fmtExpectedDict(got string) string {
	if got == "array" {
		got = "list"
	}
	return "Invalid data. Expected a dictionary, but got " + got + "."
}

// parseID reads the :id path parameter. Anything but a positive integer
// answers 404, the same as an unmatched route.
func (h *BaseHandler) parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		h.NotFound(c)
		return 0, false
	}
	return id, true
}
