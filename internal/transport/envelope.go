package transport

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON wrapper used for every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Total   *int   `json:"total,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteData writes a success envelope carrying data.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteList writes a success envelope carrying a list and its size.
func WriteList(w http.ResponseWriter, data any, total int) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Total: &total})
}

// WriteMessage writes a success envelope carrying only a message.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: true, Message: message})
}

// WriteError writes a failure envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Envelope{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
