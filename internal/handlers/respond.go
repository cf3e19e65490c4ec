package handlers

import (
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/rankmaker/rankmaker/internal/apperr"
	"github.com/rankmaker/rankmaker/internal/dto"
)

// fail translates a service error into the API error shape. Errors outside
// the taxonomy are logged, reported, and answered with a generic 500.
func fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	if kind == apperr.Internal || kind == apperr.Dependency {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		sentry.CaptureException(err)
	}
	return c.Status(kind.HTTPStatus()).JSON(dto.ErrorResponse{
		Error:   true,
		Message: apperr.Message(err),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
