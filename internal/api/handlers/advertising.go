package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlexanderSS88/adboard/internal/api/middleware"
	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/AlexanderSS88/adboard/internal/service"
	"github.com/go-chi/chi/v5"
)

type AdvertisingHandler struct {
	advService  *service.AdvertisingService
	authService *service.AuthService
}

func NewAdvertisingHandler(advService *service.AdvertisingService, authService *service.AuthService) *AdvertisingHandler {
	return &AdvertisingHandler{advService: advService, authService: authService}
}

type CreateAdvertisingRequest struct {
	OwnerID     uint   `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateAdvertisingRequest uses pointer fields for patch semantics; only
// fields present in the body are applied.
type UpdateAdvertisingRequest struct {
	OwnerID     *uint   `json:"owner_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type AdvertisingResponse struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func (h *AdvertisingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAdvertisingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.OwnerID == 0 || req.Title == "" {
		respondError(w, http.StatusBadRequest, "owner_id and title are required")
		return
	}

	adv, err := h.advService.Create(r.Context(), service.CreateAdvertisingInput{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			respondError(w, http.StatusConflict, "Advertising already exists")
			return
		}
		log.Printf("ERROR [advertising.Create] failed to create advertising: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "created",
		"adv_id": adv.ID,
	})
}

func (h *AdvertisingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "advID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Advertising not found")
		return
	}

	adv, err := h.advService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Advertising not found")
			return
		}
		log.Printf("ERROR [advertising.Get] failed to get advertising: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, AdvertisingResponse{ID: adv.ID, Title: adv.Title})
}

// Update requires a valid token but, unlike Delete, no ownership match.
// The asymmetry is part of the public contract.
func (h *AdvertisingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "advID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Advertising not found")
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req UpdateAdvertisingRequest
	if err := decoder.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.advService.Update(r.Context(), id, service.UpdateAdvertisingInput{
		OwnerID:     req.OwnerID,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "Advertising not found")
		case errors.Is(err, domain.ErrDuplicate):
			respondError(w, http.StatusConflict, "Advertising already exists")
		default:
			log.Printf("ERROR [advertising.Update] failed to update advertising: %v", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *AdvertisingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusForbidden, service.ErrInvalidToken.Error())
		return
	}

	id, err := parseID(chi.URLParam(r, "advID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "Advertising not found")
		return
	}

	adv, err := h.advService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Advertising not found")
			return
		}
		log.Printf("ERROR [advertising.Delete] failed to get advertising: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := h.authService.CheckOwner(user.ID, adv.OwnerID); err != nil {
		respondError(w, http.StatusForbidden, service.ErrNotOwner.Error())
		return
	}

	if err := h.advService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Advertising not found")
			return
		}
		log.Printf("ERROR [advertising.Delete] failed to delete advertising: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "delete"})
}
