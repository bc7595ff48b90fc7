package client

import (
	stderrors "errors"
	"fmt"
)

// APIError - ответ бекенда со статусом вне 2xx; Message берется из тела {message}
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("бекенд вернул статус %v", e.StatusCode)
}

// AsAPIError - вызывающий сам решает, показывать ли сообщение бекенда пользователю
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// BackendMessage возвращает сообщение бекенда либо запасной текст действия
func BackendMessage(err error, fallback string) string {
	if apiErr, ok := AsAPIError(err); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401
}
