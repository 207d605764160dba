package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSONSuccess(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONSuccess(rr, http.StatusOK, map[string]int{"pageCurrent": 2})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body struct {
		Data  map[string]int `json:"data"`
		Error *APIError      `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Nil(t, body.Error)
	assert.Equal(t, 2, body.Data["pageCurrent"])
}

func TestWriteJSONError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteJSONError(rr, http.StatusNotFound, ErrCodeNotFound, "Stage not found")

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"data":null,"error":{"code":"not_found","message":"Stage not found"}}`, rr.Body.String())
}
