package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it as the response body with
// the given status code and an "application/json" Content-Type.
//
// Marshaling happens before any header is written, so a marshal failure still
// produces a clean 500 response. It returns the number of body bytes written
// and a wrapped error when marshaling fails.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "logged in successfully"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
