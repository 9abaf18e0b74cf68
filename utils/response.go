package utils

import (
	"encoding/json"
	"net/http"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// JSON and Error are the short aliases used by the newer handlers.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	RespondWithJSON(w, statusCode, data)
}

func Error(w http.ResponseWriter, code int, msg string) {
	RespondWithError(w, code, msg)
}

// ToJSON marshals data, falling back to "null" on error.
func ToJSON(data interface{}) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		return []byte("null")
	}
	return b
}

type M map[string]interface{}
