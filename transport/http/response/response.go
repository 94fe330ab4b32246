package response

import (
	"encoding/json"
	"net/http"

	"bookings-backend/shared/constant"
	"bookings-backend/shared/failure"
	"bookings-backend/shared/logger"
)

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message wrapped in JSON
func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

// WithJSON sends the payload itself as the response body, unwrapped
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	write(writer, code, jsonPayload)
}

// WithError sends a response with an error message, taking the status code
// carried by the error
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := err.Error()

	write(writer, code, Error{Error: &errMsg})
}

// WithText sends a plain text response
func WithText(writer http.ResponseWriter, code int, body string) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeText)
	writer.WriteHeader(code)

	if _, err := writer.Write([]byte(body)); err != nil {
		logger.ErrorWithStack(err)
	}
}

func write(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
