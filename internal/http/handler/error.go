package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"docvault/internal/http/middleware"
)

// errorPayload is the body of every error response.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var internalError = errorEnvelope{Code: "INTERNAL_ERROR", Message: "internal server error"}

// statusErrors are the envelopes used for errors that reach the global handler.
var statusErrors = map[int]errorEnvelope{
	fiber.StatusBadRequest:            {Code: "BAD_REQUEST", Message: "bad request"},
	fiber.StatusNotFound:              {Code: "NOT_FOUND", Message: "resource not found"},
	fiber.StatusMethodNotAllowed:      {Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"},
	fiber.StatusRequestEntityTooLarge: {Code: "PAYLOAD_TOO_LARGE", Message: "request body too large"},
	fiber.StatusUnsupportedMediaType:  {Code: "UNSUPPORTED_MEDIA_TYPE", Message: "unsupported media type"},
}

// writeError writes the standard error envelope. message must be safe to show to users.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: middleware.RequestIDFrom(c),
		Error:     errorEnvelope{Code: code, Message: message},
	})
}

// ErrorHandler returns the Fiber global error handler. Internal error text is never sent.
// Client statuses without a dedicated envelope keep their code under REQUEST_ERROR.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		text := utils.StatusMessage(status)
		if text == "" {
			status = fiber.StatusInternalServerError
		}

		env, ok := statusErrors[status]
		switch {
		case ok:
		case status >= fiber.StatusInternalServerError:
			env = internalError
		default:
			env = errorEnvelope{Code: "REQUEST_ERROR", Message: strings.ToLower(text)}
		}
		return writeError(c, status, env.Code, env.Message)
	}
}
