package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/travigo/rmvtransport/pkg/rmv"
)

func APIVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version":  "v0.1",
		"upstream": rmv.DefaultBaseURL,
	})
}
