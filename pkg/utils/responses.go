package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes any payload with the given status code. The wire shapes
// mirror the public API contract, which differs between the booking and
// inventory endpoint families, so handlers build their own payloads.
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Booking-family errors: {"success": false, "message": ...} -------------

type bookingError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ResponseBookingError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, bookingError{Success: false, Message: message})
}

// ------------- Inventory-family errors: {"error": ...} -------------

type resourceError struct {
	Error string `json:"error"`
}

func ResponseResourceError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, resourceError{Error: message})
}
