package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-safe-share/models"
)

// WriteJSON writes data as an application/json body with statusCode.
//
// If data cannot be marshaled it answers 500 instead and returns the
// marshaling error; nothing of data is written in that case.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes a [models.ErrorResponse] carrying message.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	_, _ = WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}
