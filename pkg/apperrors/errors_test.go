package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("row not found")
	err := ErrNotFound(cause)

	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, CodeNotFound, err.Code)
	assert.ErrorIs(t, err, cause)
}

func TestMarshalOmitsInternals(t *testing.T) {
	err := Wrap(errors.New("pq: connection refused"), CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)

	assert.NotContains(t, string(raw), "connection refused")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), "INTERNAL_ERROR")
}

func TestDomainErrorShapes(t *testing.T) {
	assert.Equal(t, http.StatusConflict, ErrDuplicateApplication.HTTPCode)
	assert.Equal(t, CodeAlreadyExists, ErrDuplicateApplication.Code)

	assert.Equal(t, http.StatusConflict, ErrJobUnavailable.HTTPCode)
	assert.Equal(t, CodeInvalidOperation, ErrJobUnavailable.Code)

	invalidDate := ErrInvalidDate("job", "Expiry date must be in the future")
	assert.Equal(t, http.StatusBadRequest, invalidDate.HTTPCode)
	assert.Equal(t, CodeInvalidDate, invalidDate.Code)
}
