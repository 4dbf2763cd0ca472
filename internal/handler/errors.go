package handlers

import (
	"blogCPT/internal/apperror"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteAppError отдаёт клиенту статус и сообщение типизированной ошибки;
// неожиданные ошибки логируются и скрываются за общим ответом
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		WriteError(w, appErr.Message, appErr.Status)
		return
	}

	log.Printf("Внутренняя ошибка: %v", err)
	WriteError(w, "Something went wrong. Please try again.", http.StatusInternalServerError)
}
