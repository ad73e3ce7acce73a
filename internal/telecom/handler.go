package telecom

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler is the HTTP API layer for the edge proxy.
type Handler struct {
	service Service
	// mutating wraps routes that create calls or messages, eg a rate limiter.
	mutating []func(http.Handler) http.Handler
}

// NewHandler creates a new handler.
func NewHandler(s Service, mutating ...func(http.Handler) http.Handler) *Handler {
	return &Handler{
		service:  s,
		mutating: mutating,
	}
}

// RegisterRoutes attaches the call and message endpoints to the router.
// Authentication is applied by the router these are mounted on.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/calls", h.handleListCalls)
	r.Get("/messages", h.handleListMessages)

	r.Group(func(r chi.Router) {
		r.Use(h.mutating...)
		r.Post("/calls", h.handlePlaceCall)
		r.Post("/messages", h.handleSendMessage)
	})
}

// --- DTOs ---

type callsResponse struct {
	Calls []*CallRecord `json:"calls"`
}

type messagesResponse struct {
	Messages []*MessageRecord `json:"messages"`
}

type placeCallRequest struct {
	To string `json:"to"`
}

type sendMessageRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

func (h *Handler) handleListCalls(w http.ResponseWriter, r *http.Request) {
	calls, err := h.service.ListCalls(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if calls == nil {
		calls = []*CallRecord{}
	}
	writeJSON(w, http.StatusOK, callsResponse{Calls: calls})
}

func (h *Handler) handlePlaceCall(w http.ResponseWriter, r *http.Request) {
	var req placeCallRequest
	if !decodeBody(w, r, &req) {
		return
	}

	receipt, err := h.service.PlaceCall(r.Context(), req.To)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

func (h *Handler) handleListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.ListMessages(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	if messages == nil {
		messages = []*MessageRecord{}
	}
	writeJSON(w, http.StatusOK, messagesResponse{Messages: messages})
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	receipt, err := h.service.SendMessage(r.Context(), req.To, req.Body)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, receipt)
}

// writeServiceError maps service errors to status codes.
// Anything else is an upstream failure and keeps its message.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var missing *MissingFieldsError
	if errors.As(err, &missing) {
		writeError(w, http.StatusBadRequest, missing.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}

// decodeBody reads a JSON body into dst. An empty body decodes to the zero value
// so that missing fields are reported by the service.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// writeJSON is a helper function for sending json responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError is a helper for sending a standardized json error.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
