package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, StatusFor(ErrSyncInProgress))
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrExternalService))
	assert.Equal(t, http.StatusPreconditionFailed, StatusFor(ErrPlatformNotConnected))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidPeriod, "start_date posterior a end_date", map[string]any{"account_id": "acc001"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidPeriod, body.Code)
	assert.Equal(t, "start_date posterior a end_date", body.Message)
	assert.Equal(t, map[string]any{"account_id": "acc001"}, body.Details)
}
