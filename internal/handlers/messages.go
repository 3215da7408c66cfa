package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tuyoleni/nust-competion-api/internal/services"
	"github.com/tuyoleni/nust-competion-api/internal/store"
	"github.com/tuyoleni/nust-competion-api/internal/validate"
	"github.com/tuyoleni/nust-competion-api/types"
)

// MessageHandler provides broadcast message endpoints. Delivery is pull-only;
// recipients read the listing.
type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// MessageRouter registers message routes on the given router.
func MessageRouter(r chi.Router, messages *services.MessageService) {
	handler := NewMessageHandler(messages)

	r.Post("/messages/create", handler.Create)
	r.Get("/messages", handler.List)
	r.Get("/messages/{messageId}", handler.Get)
	r.Patch("/messages/{messageId}/update", handler.Update)
	r.Delete("/messages/{messageId}", handler.Delete)
}

var messageCreateRules = []validate.Rule{
	validate.Required("sender_id", validate.Numeric, "Sender ID must be a number"),
	validate.Required("recipient_group", validate.OneOf(
		types.RecipientGroupAll,
		types.RecipientGroupAdmin,
		types.RecipientGroupUsers,
	), `Recipient group must be either "all", "admin", or "users"`),
	validate.Required("content", validate.NonEmpty, "Content is required"),
}

var messageUpdateRules = []validate.Rule{
	validate.Optional("content", validate.NonEmpty, "Content must be a non-empty string"),
}

var messagePatchSpec = store.PatchSpec{
	Allowed: []string{"content"},
}

func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, messageCreateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}
	values := validate.Values(payload)

	message, err := h.messages.Create(r.Context(), types.Message{
		SenderID:       values.Int("sender_id"),
		RecipientGroup: values.String("recipient_group"),
		Content:        values.String("content"),
	})
	if err != nil {
		writeServerError(w, "Failed to send message", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageCreateResponse{
		Message:   "Message sent successfully.",
		MessageID: message.ID,
	})
}

// List returns all messages, newest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.List(r.Context())
	if err != nil {
		writeServerError(w, "Failed to retrieve messages", err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "messageId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "messageId", Message: "Message ID must be a number"}})
		return
	}

	message, err := h.messages.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		writeServerError(w, "Failed to retrieve message", err)
		return
	}

	writeJSON(w, http.StatusOK, message)
}

func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "messageId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "messageId", Message: "Message ID must be a number"}})
		return
	}

	payload, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := validate.Apply(payload, messageUpdateRules); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	patch, err := messagePatchSpec.Build(payload)
	if err != nil {
		var unknown *store.UnknownFieldsError
		if errors.As(err, &unknown) {
			writeInvalidFields(w, unknown.Fields)
			return
		}
		writeServerError(w, "Failed to update message", err)
		return
	}
	if patch.Empty() {
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Message updated successfully."})
		return
	}

	if err := h.messages.Patch(r.Context(), id, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		writeServerError(w, "Failed to update message", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Message updated successfully."})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "messageId")
	if err != nil {
		writeValidationErrors(w, validate.Errors{{Field: "messageId", Message: "Message ID must be a number"}})
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Message not found")
			return
		}
		writeServerError(w, "Failed to delete message", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Message deleted successfully."})
}

// MessageCreateResponse is the payload returned on successful send.
type MessageCreateResponse struct {
	Message   string `json:"message"`
	MessageID int    `json:"message_id"`
}
