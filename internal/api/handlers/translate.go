package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/translate"
	"github.com/lessonup/lessonup-api/internal/validation"
)

// TranslateHandler passes UI translation traffic straight through to the
// external provider. No business logic lives here.
type TranslateHandler struct {
	client    *translate.Client
	validator *validation.Validator
}

func NewTranslateHandler(client *translate.Client, validator *validation.Validator) *TranslateHandler {
	return &TranslateHandler{
		client:    client,
		validator: validator,
	}
}

// GetLanguages returns the provider's supported languages, named in the
// requested target language.
func (h *TranslateHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	target := h.validator.Sanitize(r.URL.Query().Get("target"))

	languages, err := h.client.Languages(r.Context(), target)
	if err != nil {
		log.Printf("ERROR [translate.GetLanguages] provider call failed: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	writeJSON(w, languages)
}

type translateRequest struct {
	Text   string `json:"text"`
	Target string `json:"target"`
}

// Translate forwards one text to the provider and returns the translation.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	text := h.validator.Sanitize(req.Text)
	target := h.validator.Sanitize(req.Target)

	result, err := h.client.Translate(r.Context(), text, target)
	if err != nil {
		log.Printf("ERROR [translate.Translate] provider call failed: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	writeJSON(w, result)
}
