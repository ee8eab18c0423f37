package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/topronto/admin-backoffice/internal/apperr"
	"github.com/topronto/admin-backoffice/internal/views"
)

func ok(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case apperr.IsValidation(err):
		return fiber.StatusBadRequest
	case apperr.IsNotFound(err):
		return fiber.StatusNotFound
	case apperr.IsAuth(err):
		return fiber.StatusUnauthorized
	case errors.Is(err, apperr.ErrBusy):
		return fiber.StatusConflict
	case errors.Is(err, views.ErrNotLoaded):
		return fiber.StatusServiceUnavailable
	case apperr.IsGateway(err):
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler renders every returned error in the API envelope. Backend
// details are logged and never sent to the client.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := statusFor(err)
		body := fiber.Map{"success": false}

		var fe *fiber.Error
		var ve *apperr.ValidationError
		switch {
		case errors.As(err, &fe):
			body["message"] = fe.Message
		case errors.As(err, &ve):
			body["message"] = ve.Error()
			body["errors"] = ve.Fields
		case errors.Is(err, views.ErrNotLoaded):
			body["message"] = err.Error()
		default:
			body["message"] = apperr.Public(err)
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
		}
		return c.Status(code).JSON(body)
	}
}

func paramID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, apperr.Validation("id", "invalid id")
	}
	return id, nil
}
