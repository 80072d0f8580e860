package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-stock/internal/application/dto"
	"github.com/jhoicas/Inventario-stock/internal/domain"
	"github.com/jhoicas/Inventario-stock/pkg/logger"
)

// errorMapping traduce errores de dominio a status HTTP y código.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrInsufficientStock, fiber.StatusBadRequest, "INSUFFICIENT_STOCK"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
}

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message, Error: message})
}

// writeError responde con el error de dominio; fallos de almacenamiento u otros se registran
// y se responden como 500 con mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return errorJSON(c, m.status, m.code, err.Error())
		}
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return errorJSON(c, fiber.StatusInternalServerError, "INTERNAL", "error interno del servidor")
}

func invalidBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

func invalidID(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, "INVALID_ID", "id inválido")
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, método no permitido y panics recuperados.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusMethodNotAllowed:
				return errorJSON(c, fe.Code, "METHOD_NOT_ALLOWED", "método no permitido")
			case fiber.StatusNotFound:
				return errorJSON(c, fe.Code, "NOT_FOUND", "ruta no encontrada")
			}
			if fe.Code < fiber.StatusInternalServerError {
				return errorJSON(c, fe.Code, "HTTP_ERROR", fe.Message)
			}
		}
		return writeError(c, log, err)
	}
}
