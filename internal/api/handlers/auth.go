package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlexanderSS88/adboard/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type LoginRequest struct {
	Name string `json:"name"`
	Psw  string `json:"psw"`
}

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.authService.Login(r.Context(), service.LoginInput{
		Name:     req.Name,
		Password: req.Psw,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		log.Printf("ERROR [auth.Login] failed to log in: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Status: "success",
		Token:  token.ID.String(),
	})
}
