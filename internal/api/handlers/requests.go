package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lessonup/lessonup-api/internal/domain"
	"github.com/lessonup/lessonup-api/internal/service"
	"github.com/lessonup/lessonup-api/internal/validation"
)

type RequestHandler struct {
	requestService *service.RequestService
	validator      *validation.Validator
}

func NewRequestHandler(requestService *service.RequestService, validator *validation.Validator) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

// Create posts a new help request to the board. Field validation runs
// first; only then are the date bounds checked, so a payload with a bad
// subject reports subjectInvalid rather than dueDateInvalid.
func (h *RequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.NewRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	h.validator.SanitizeNewRequest(&in)
	if codes := h.validator.CheckNewRequest(&in); len(codes) > 0 {
		writeCodes(w, codes...)
		return
	}
	if validation.DateInPast(in.DueDate) {
		writeCodes(w, domain.CodeDueDateInvalid)
		return
	}
	if validation.DateInPast(in.DatePosted) {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	_, err := h.requestService.Create(r.Context(), service.CreateRequestInput{
		UserID:     in.UserID,
		Username:   in.Username,
		UserLang:   in.UserLang,
		Subject:    in.Subject,
		StudyLevel: in.StudyLevel,
		DueDate:    in.DueDate,
		Request:    in.Request,
		DatePosted: in.DatePosted,
		TimePosted: in.TimePosted,
	})
	if err != nil {
		if !errors.Is(err, service.ErrIdentityMismatch) {
			log.Printf("ERROR [requests.Create] failed to create request: %v", err)
		}
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	writeCodes(w, domain.CodeSuccess)
}

// List returns every request on the board to any authenticated user.
func (h *RequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.requestService.ListAll(r.Context())
	if err != nil {
		log.Printf("ERROR [requests.List] failed to list requests: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}
	if len(requests) == 0 {
		writeCodes(w, domain.CodeNoRequests)
		return
	}
	writeJSON(w, requests)
}

// Delete removes a request by id. Deleting an id that isn't there reports
// deletionFailed.
func (h *RequestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeCodes(w, domain.CodeDeletionFailed)
		return
	}

	if err := h.requestService.Delete(r.Context(), uint(id)); err != nil {
		if !errors.Is(err, service.ErrRequestNotFound) {
			log.Printf("ERROR [requests.Delete] failed to delete request %d: %v", id, err)
		}
		writeCodes(w, domain.CodeDeletionFailed)
		return
	}

	writeCodes(w, domain.CodeSuccess)
}
