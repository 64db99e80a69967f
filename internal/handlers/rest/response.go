package rest

import (
	"encoding/json"
	"net/http"
)

// Error codes returned in the error body.
const (
	codeInvalidRequest     = "INVALID_REQUEST"
	codeUnsupportedNetwork = "UNSUPPORTED_NETWORK"
	codeNotFound           = "NOT_FOUND"
	codeAlreadyRecorded    = "PAYMENT_ALREADY_RECORDED"
	codeChainUnavailable   = "CHAIN_UNAVAILABLE"
	codeInternal           = "INTERNAL_ERROR"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
