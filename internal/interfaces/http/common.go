package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/datanova-api/internal/application/dto"
	"github.com/jhoicas/datanova-api/internal/application/usecase"
)

// readOptions ?expand=false devuelve las referencias como id plano.
func readOptions(c *fiber.Ctx) usecase.ReadOptions {
	return usecase.ReadOptions{Expand: c.QueryBool("expand", true)}
}

func deleted(c *fiber.Ctx) error {
	return c.JSON(dto.MessageResponse{Message: "eliminado"})
}
