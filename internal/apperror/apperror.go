package apperror

import (
	"errors"
	"net/http"
)

// Error - ошибка с HTTP статусом, которую можно показать клиенту
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{Status: status, Message: message}
}

// Validation - отсутствующие, некорректные или слишком большие входные данные
func Validation(message string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: message}
}

// Unauthorized - отсутствующие или недействительные учетные данные
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden - вызывающий не является владельцем ресурса
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// IO - ошибка записи или удаления файла в хранилище
func IO(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// IsNotFound сообщает, является ли ошибка ошибкой "не найдено"
func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusNotFound
}
