package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/y22pdf86w4-crypto/apilinhagrolitho/internal/application/dto"
)

// fail escribe el sobre de error {sucesso:false, erro, codigo}.
func fail(c *fiber.Ctx, status int, erro, codigo string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Sucesso: false, Erro: erro, Codigo: codigo})
}

// failDetail igual que fail pero con el mensaje del error original en detalhe.
func failDetail(c *fiber.Ctx, status int, erro string, err error) error {
	body := dto.ErrorResponse{Sucesso: false, Erro: erro, Codigo: "INTERNAL"}
	if err != nil {
		body.Detalhe = err.Error()
	}
	return c.Status(status).JSON(body)
}
