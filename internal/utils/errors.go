package utils

import (
	"errors"

	"webhookrepo/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func Error(c fiber.Ctx, statusCode int, err error) error {
	return c.Status(statusCode).JSON(ErrorResponse{Error: err.Error()})
}

func StatusError(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(ErrorResponse{Error: se.Message})
}

// ErrorHandler renders errors that escaped a handler, including recovered
// panics, with the same {"error": ...} shape.
func ErrorHandler(c fiber.Ctx, err error) error {
	var se errmsg.StatusError
	if errors.As(err, &se) {
		return StatusError(c, se)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return Error(c, fe.Code, fe)
	}

	return StatusError(c, errmsg.InternalServerError(err))
}
