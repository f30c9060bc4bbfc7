package utils

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"saathi/models"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err)
	return w
}

func TestRespondErrorMapsCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", models.NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", models.NewNotFoundError("missing"), http.StatusNotFound},
		{"forbidden", models.NewForbiddenError("not yours"), http.StatusForbidden},
		{"conflict", models.NewConflictError("already done"), http.StatusConflict},
		{"unavailable", models.NewUnavailableError("upstream down"), http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respond(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), models.MessageOf(tt.err))
		})
	}
}

func TestRespondErrorHidesUncodedErrors(t *testing.T) {
	w := respond(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}
