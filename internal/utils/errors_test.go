// internal/utils/errors_test.go
package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation maps to 400", NewValidationError("campo mancante"), http.StatusBadRequest},
		{"unavailable maps to 503", NewUnavailableError("database non connesso"), http.StatusServiceUnavailable},
		{"operation maps to 500", NewOperationError("query fallita", errors.New("boom")), http.StatusInternalServerError},
		{"plain error maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForError(tt.err))
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("violazione di vincolo")
	err := NewOperationError("query fallita", inner)

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "query fallita: violazione di vincolo", err.Error())
}
