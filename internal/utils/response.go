package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response with the given status
func WriteErrorResponse(w http.ResponseWriter, status int, errTitle, message string) {
	WriteJSONResponse(w, status, ErrorBody{Error: errTitle, Message: message})
}

// DecodeJSONRequest decodes the request body into dst, rejecting unknown
// fields. On failure it writes a 400 response and returns the error so the
// caller can simply return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
