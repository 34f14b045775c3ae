package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind is the closed set of failure variants the domain layer can return.
// HTTP status mapping happens once, in ErrorHandler.
type Kind int

const (
	KindValidation Kind = iota
	KindInvalidOtp
	KindInvalidToken
	KindNotFound
	KindConflict
	KindUnauthorized
	KindInternal
)

// RouteError carries a failure kind plus a user-facing message. Field-level
// validation details ride along in Fields.
type RouteError struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error // wrapped cause, never surfaced to clients
}

func (e *RouteError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RouteError) Unwrap() error { return e.Err }

func NewValidationError(fields map[string]string) *RouteError {
	return &RouteError{Kind: KindValidation, Message: "Validation failed!", Fields: fields}
}

func NewInvalidOtp() *RouteError {
	return &RouteError{Kind: KindInvalidOtp, Message: "Invalid or expired OTP!"}
}

func NewInvalidToken() *RouteError {
	return &RouteError{Kind: KindInvalidToken, Message: "Invalid or expired token!"}
}

func NewNotFound(message string) *RouteError {
	return &RouteError{Kind: KindNotFound, Message: message}
}

func NewConflict(message string) *RouteError {
	return &RouteError{Kind: KindConflict, Message: message}
}

func NewUnauthorized(message string) *RouteError {
	return &RouteError{Kind: KindUnauthorized, Message: message}
}

func NewInternal(message string, err error) *RouteError {
	return &RouteError{Kind: KindInternal, Message: message, Err: err}
}

func statusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindInvalidOtp, KindInvalidToken:
		return fiber.StatusBadRequest
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonResponse writes the uniform response envelope used across all controllers.
func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

// ErrorHandler is installed on the fiber app and maps RouteError kinds to
// status codes and the uniform envelope. Internal causes are never leaked.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var routeErr *RouteError
	if errors.As(err, &routeErr) {
		var data interface{}
		if len(routeErr.Fields) > 0 {
			data = routeErr.Fields
		}
		return JsonResponse(c, statusFor(routeErr.Kind), false, routeErr.Message, data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JsonResponse(c, fiberErr.Code, false, fiberErr.Message, nil)
	}

	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
