package http

import (
	"assist_server/pkg/apperr"
	"assist_server/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// parseBody decodes a JSON body. An empty body decodes as {}.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(out)
}

// ErrorResponse sends {"error": message}.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// AppErrorResponse renders an apperr.AppError; anything else becomes a generic 500.
func AppErrorResponse(c *fiber.Ctx, err error) error {
	appErr := apperr.AsAppError(err)
	if appErr.HTTPStatus() >= fiber.StatusInternalServerError {
		return InternalErrorResponse(c, err, "request")
	}
	return ErrorResponse(c, appErr.HTTPStatus(), appErr.Message)
}

// InternalErrorResponse logs err and returns a message without internal details.
func InternalErrorResponse(c *fiber.Ctx, err error, operation string) error {
	requestID, _ := c.Locals("request_id").(string)
	logger.WithError(err).
		WithField("operation", operation).
		WithField("request_id", requestID).
		Error("internal error")
	return ErrorResponse(c, fiber.StatusInternalServerError, operation+" failed")
}
