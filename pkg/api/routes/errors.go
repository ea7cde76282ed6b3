package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

func errorStatus(err error) int {
	switch {
	case errors.Is(err, rmv.InvalidArgumentError):
		return fiber.StatusBadRequest
	case errors.Is(err, rmv.APIConnectionError):
		return fiber.StatusGatewayTimeout
	case errors.Is(err, rmv.DataError):
		return fiber.StatusBadGateway
	case errors.Is(err, rmv.RMVError):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	c.Status(errorStatus(err))
	return c.JSON(fiber.Map{
		"error": err.Error(),
	})
}
