package utils

import "net/http"

// Response is the envelope every JSON endpoint except the search form answers with.
// Data is always present and is null when there is no payload.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func NewResponse(status int, message string, data any) Response {
	return Response{Status: status, Message: message, Data: data}
}

func NewSuccessResponse(message string, data any) Response {
	return NewResponse(http.StatusOK, message, data)
}

func NewCreatedResponse(message string, data any) Response {
	return NewResponse(http.StatusCreated, message, data)
}

func NewErrorResponse(status int, message string) Response {
	return NewResponse(status, message, nil)
}
