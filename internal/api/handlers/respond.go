package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lessonup/lessonup-api/internal/domain"
)

// writeJSON sends any payload as JSON. List endpoints use it for record
// arrays; everything else goes through writeCodes.
func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

// writeCodes sends the flat array of wire codes the client matches on.
func writeCodes(w http.ResponseWriter, codes ...domain.StatusCode) {
	writeJSON(w, codes)
}

// Unauthenticated answers requests bounced by the session middleware.
func Unauthenticated(w http.ResponseWriter, r *http.Request) {
	writeCodes(w, domain.CodeNotAuthenticated)
}
