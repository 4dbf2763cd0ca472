package handlers

import (
	"blogCPT/internal/repository"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type RegisterRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	Password2 string `json:"password2" validate:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"id"`
	Name   string `json:"name"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		if strings.Contains(err.Error(), "Email") {
			WriteError(w, "Invalid email format.", http.StatusUnprocessableEntity)
		} else {
			WriteError(w, "Fill in all fields.", http.StatusUnprocessableEntity)
		}
		return
	}

	serviceReq := repository.CreateUserRequest{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
	}

	user, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: fmt.Sprintf("New user %s registered", user.Email)}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body.", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Fill in all fields.", http.StatusUnprocessableEntity)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, LoginResponse{
		Token:  token,
		UserID: user.UserID,
		Name:   user.Name,
	}, http.StatusOK)
}
