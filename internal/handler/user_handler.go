package handlers

import (
	"blogCPT/internal/repository"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewUserResponse(user), http.StatusOK)
}

func (h *Handlers) GetAuthors(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserRepo.GetAuthors(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	authors := make([]UserResponse, 0, len(users))
	for i := range users {
		authors = append(authors, h.NewUserResponse(&users[i]))
	}

	WriteSuccess(w, authors, http.StatusOK)
}

func (h *Handlers) EditUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	var req struct {
		Name               string `json:"name" validate:"required"`
		Email              string `json:"email" validate:"required,email"`
		CurrentPassword    string `json:"currentPassword" validate:"required"`
		NewPassword        string `json:"newPassword" validate:"required"`
		ConfirmNewPassword string `json:"confirmNewPassword" validate:"required"`
	}

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

	serviceReq := repository.UpdateUserRequest{
		UserID:             userID,
		Name:               req.Name,
		Email:              req.Email,
		CurrentPassword:    req.CurrentPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	}

	user, err := h.UserService.EditUser(r.Context(), serviceReq)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewUserResponse(user), http.StatusOK)
}

func (h *Handlers) ChangeAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		WriteError(w, "Authentication required.", http.StatusUnauthorized)
		return
	}

	file, header, ok := h.parseUpload(w, r, "avatar")
	if !ok {
		return
	}
	if file == nil {
		WriteError(w, "Please choose an image.", http.StatusUnprocessableEntity)
		return
	}
	defer file.Close()

	user, err := h.UserService.ChangeAvatar(r.Context(), userID, header.Filename, file, header.Size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteSuccess(w, h.NewUserResponse(user), http.StatusOK)
}
