package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// readBody reads and parses a JSON request body into T. An empty body
// yields the zero value.
func readBody[T any](r *http.Request) (T, error) {
	var body T

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return body, fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if len(bodyBytes) == 0 {
		return body, nil
	}

	if !strings.HasPrefix(contentType, "application/json") {
		return body, fmt.Errorf("unsupported content type: %s", contentType)
	}

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to parse request body: %w", err)
	}

	return body, nil
}

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, lg *zap.SugaredLogger, data interface{}, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		lg.Errorf("failed to marshal response: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}
