package contact

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"talk-connect-hub/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler is the HTTP API layer for the contact book.
type Handler struct {
	service  Service
	mutating []func(http.Handler) http.Handler
}

// NewHandler creates a new handler. mutating wraps the routes that write, eg a rate limiter.
func NewHandler(s Service, mutating ...func(http.Handler) http.Handler) *Handler {
	return &Handler{
		service:  s,
		mutating: mutating,
	}
}

// RegisterRoutes attaches the contact endpoints. They expect an authenticated user on the context.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/contacts", h.handleListContacts)

	r.Group(func(r chi.Router) {
		r.Use(h.mutating...)
		r.Post("/contacts", h.handleAddContact)
		r.Post("/contacts/{id}/favorite", h.handleToggleFavorite)
	})
}

// --- DTOs ---

type addContactRequest struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Email  string `json:"email"`
}

type contactResponse struct {
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Number    string `json:"number"`
	Email     string `json:"email"`
	Favorite  bool   `json:"favorite"`
}

type listContactsResponse struct {
	Favorites []contactResponse `json:"favorites"`
	Others    []contactResponse `json:"others"`
}

func (h *Handler) handleListContacts(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUser(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contacts, err := h.service.ListContacts(r.Context(), user.ID, r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("list contacts: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not list contacts")
		return
	}

	resp := listContactsResponse{Favorites: []contactResponse{}, Others: []contactResponse{}}
	for _, c := range contacts {
		cr := contactResponse{
			ContactID: c.ContactID.String(),
			Name:      c.Name,
			Number:    c.Number,
			Email:     c.Email,
			Favorite:  c.Favorite,
		}
		if c.Favorite {
			resp.Favorites = append(resp.Favorites, cr)
		} else {
			resp.Others = append(resp.Others, cr)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleAddContact(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUser(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req addContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	c, err := h.service.AddContact(r.Context(), user.ID, req.Name, req.Number, req.Email)
	if err != nil {
		var missing *MissingFieldsError
		if errors.As(err, &missing) {
			writeError(w, http.StatusBadRequest, missing.Error())
			return
		}
		log.Printf("add contact: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not add contact")
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUser(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contactID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact id format")
		return
	}

	c, err := h.service.ToggleFavorite(r.Context(), user.ID, contactID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			writeError(w, http.StatusNotFound, "Contact not found")
			return
		}
		log.Printf("toggle favorite: %v", err)
		writeError(w, http.StatusInternalServerError, "Could not update contact")
		return
	}

	writeJSON(w, http.StatusOK, c)
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
