package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/TWRT/taskboard/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError reports every failure as a 500; there is no client error taxonomy.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logging.FromContext(r.Context()).WithError(err).Error(msg)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": msg + ": " + err.Error(),
	})
}

func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}
	return nil
}
