package handlers

import (
	"encoding/json"
	"net/http"
)

// Healthz is a liveness probe; it deliberately touches no dependency.
func Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
