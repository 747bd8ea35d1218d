package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/AlexanderSS88/adboard/internal/api/middleware"
	"github.com/AlexanderSS88/adboard/internal/domain"
	"github.com/AlexanderSS88/adboard/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{userService: userService, authService: authService}
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
	Psw   string `json:"psw"`
	Mail  string `json:"mail"`
}

// UpdateUserRequest uses pointer fields for patch semantics; only fields
// present in the body are applied. Unknown fields are rejected rather
// than silently dropped.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Admin *bool   `json:"admin"`
	Psw   *string `json:"psw"`
	Mail  *string `json:"mail"`
}

type UserResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Psw == "" {
		respondError(w, http.StatusBadRequest, "name and psw are required")
		return
	}

	user, err := h.userService.Create(r.Context(), service.CreateUserInput{
		Name:     req.Name,
		Admin:    req.Admin,
		Password: req.Psw,
		Mail:     req.Mail,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			respondError(w, http.StatusConflict, "User already exists")
			return
		}
		log.Printf("ERROR [user.Create] failed to create user: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "success",
		"id":     user.ID,
	})
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.userService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [user.Get] failed to get user: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{ID: user.ID, Name: user.Name})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var req UpdateUserRequest
	if err := decoder.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	_, err = h.userService.Update(r.Context(), id, service.UpdateUserInput{
		Name:     req.Name,
		Admin:    req.Admin,
		Password: req.Psw,
		Mail:     req.Mail,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, domain.ErrDuplicate):
			respondError(w, http.StatusConflict, "User already exists")
		default:
			log.Printf("ERROR [user.Update] failed to update user: %v", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		respondError(w, http.StatusForbidden, service.ErrInvalidToken.Error())
		return
	}

	id, err := parseID(chi.URLParam(r, "userID"))
	if err != nil {
		respondError(w, http.StatusNotFound, "User not found")
		return
	}

	// Ownership first: a non-owner learns nothing about the target.
	if err := h.authService.CheckOwner(user.ID, id); err != nil {
		respondError(w, http.StatusForbidden, service.ErrNotOwner.Error())
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("ERROR [user.Delete] failed to delete user: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "delete"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
