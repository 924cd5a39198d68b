package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorReader struct{}

func (errorReader) Read(p []byte) (n int, err error) {
	return 0, fmt.Errorf("read error")
}

func TestReadBody_JSON_Success(t *testing.T) {
	type TestStruct struct {
		Name string `json:"name"`
	}
	expected := TestStruct{Name: "test"}

	bodyJSON, _ := json.Marshal(expected)
	req := httptest.NewRequest("POST", "/", strings.NewReader(string(bodyJSON)))
	req.Header.Set("Content-Type", "application/json")

	got, err := readBody[TestStruct](req)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestReadBody_NoContentType_DefaultsToJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name": "test"}`))

	type TestStruct struct {
		Name string `json:"name"`
	}

	got, err := readBody[TestStruct](req)

	require.NoError(t, err)
	assert.Equal(t, "test", got.Name)
}

func TestReadBody_EmptyBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/json")

	type TestStruct struct {
		Name string `json:"name"`
	}

	got, err := readBody[TestStruct](req)

	require.NoError(t, err)
	assert.Equal(t, "", got.Name)
}

func TestReadBody_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("{invalid"))
	req.Header.Set("Content-Type", "application/json")

	type TestStruct struct{ Name string }

	_, err := readBody[TestStruct](req)
	assert.Error(t, err)
}

func TestReadBody_UnsupportedContentType(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("a=b"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	type TestStruct struct{ Name string }

	_, err := readBody[TestStruct](req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content type")
}

func TestReadBody_ReadError(t *testing.T) {
	req := httptest.NewRequest("POST", "/", errorReader{})
	req.Header.Set("Content-Type", "application/json")

	type TestStruct struct{ Name string }

	_, err := readBody[TestStruct](req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read request body")
}

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, zap.NewNop().Sugar(), map[string]string{"status": "ok"}, http.StatusCreated)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, zap.NewNop().Sugar(), make(chan int), http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
