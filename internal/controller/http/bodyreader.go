package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// readBody читает и парсит JSON тело запроса в структуру T
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

	if !strings.HasPrefix(contentType, "application/json") {
		return body, fmt.Errorf("unexpected content type: %s", contentType)
	}

	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		return body, fmt.Errorf("failed to read request body %s: %w", contentType, err)
	}

	return body, nil
}
