package apperrors

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an error so the transport boundary can pick a status code.
type Kind int

const (
	KindValidation Kind = iota // malformed input, duplicate login key
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindStore // connectivity/constraint failures not otherwise classified
)

// AppError is a typed error value that flows up through each layer. A single
// boundary translator (Handler) maps its kind to a transport status, so
// handlers never write status codes themselves.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Kind: KindValidation, Message: message}
}

func Unauthorized(message string) *AppError {
	return &AppError{Kind: KindAuthentication, Message: message}
}

func Forbidden(message string) *AppError {
	return &AppError{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Store(message string, err error) *AppError {
	return &AppError{Kind: KindStore, Message: message, Err: err}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return fiber.StatusBadRequest
	case KindAuthentication:
		return fiber.StatusUnauthorized
	case KindAuthorization:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Handler is the boundary translator installed as fiber's ErrorHandler.
// Store errors are logged with their cause and rendered as a generic message
// so internal detail never reaches the caller.
func Handler(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if appErr.Kind == KindStore {
			log.Printf("Store error: %v", appErr)
			message = "Internal server error"
		}
		return c.Status(statusFor(appErr.Kind)).JSON(fiber.Map{
			"status":  false,
			"message": message,
			"data":    nil,
		})
	}

	// Fiber routing errors (404 on unknown paths, 405, oversized bodies)
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"status":  false,
			"message": fiberErr.Message,
			"data":    nil,
		})
	}

	log.Printf("Unclassified error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  false,
		"message": "Internal server error",
		"data":    nil,
	})
}
