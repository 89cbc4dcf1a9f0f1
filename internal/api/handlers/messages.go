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

type MessageHandler struct {
	messageService *service.MessageService
	validator      *validation.Validator
}

func NewMessageHandler(messageService *service.MessageService, validator *validation.Validator) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validator:      validator,
	}
}

// Post stores a new message against a help request.
func (h *MessageHandler) Post(w http.ResponseWriter, r *http.Request) {
	var in validation.NewMessageInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	h.validator.SanitizeNewMessage(&in)
	if codes := h.validator.CheckNewMessage(&in); len(codes) > 0 {
		writeCodes(w, codes...)
		return
	}
	if validation.DateInPast(in.DateSent) {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	_, err := h.messageService.Post(r.Context(), service.PostMessageInput{
		RequestID: in.RequestID,
		Language:  in.UserLang,
		Sender:    in.Sender,
		Recipient: in.Recipient,
		Message:   in.Message,
		DateSent:  in.DateSent,
		TimeSent:  in.TimeSent,
	})
	if err != nil {
		log.Printf("ERROR [messages.Post] failed to store message: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	writeCodes(w, domain.CodeSuccess)
}

// Conversations returns the user's messages grouped by help request, one
// array per distinct requestId.
func (h *MessageHandler) Conversations(w http.ResponseWriter, r *http.Request) {
	username := h.validator.Sanitize(r.URL.Query().Get("username"))

	conversations, err := h.messageService.ListConversations(r.Context(), username)
	if err != nil {
		log.Printf("ERROR [messages.Conversations] failed to list conversations: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}
	if len(conversations) == 0 {
		writeCodes(w, domain.CodeNoMessages)
		return
	}
	writeJSON(w, conversations)
}

// Messages returns one conversation's messages for a participant.
func (h *MessageHandler) Messages(w http.ResponseWriter, r *http.Request) {
	username := h.validator.Sanitize(r.URL.Query().Get("username"))
	requestID, err := strconv.ParseUint(r.URL.Query().Get("requestId"), 10, 64)
	if err != nil {
		writeCodes(w, domain.CodeGeneralError)
		return
	}

	messages, err := h.messageService.ListMessages(r.Context(), username, uint(requestID))
	if err != nil {
		log.Printf("ERROR [messages.Messages] failed to list messages: %v", err)
		writeCodes(w, domain.CodeGeneralError)
		return
	}
	if len(messages) == 0 {
		writeCodes(w, domain.CodeNoMessages)
		return
	}
	writeJSON(w, messages)
}

// Delete removes one message by id.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeCodes(w, domain.CodeDeletionFailed)
		return
	}

	if err := h.messageService.Delete(r.Context(), uint(id)); err != nil {
		if !errors.Is(err, service.ErrMessageNotFound) {
			log.Printf("ERROR [messages.Delete] failed to delete message %d: %v", id, err)
		}
		writeCodes(w, domain.CodeDeletionFailed)
		return
	}

	writeCodes(w, domain.CodeSuccess)
}
