package response

import "github.com/gofiber/fiber/v3"

// Envelope is the failure/health wire shape. Success responses carry
// their payload field (e.g. "recommended") next to the success flag and
// are built from endpoint-specific DTOs.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "Unauthorized"
	MessageNotFound            = "Not found"
	MessageInternalServerError = "Failed to compute recommendations"
	MessageError               = "Error"
)

func OK(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{Success: true})
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{Success: false, Message: normalizeMessage(message, st)})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
