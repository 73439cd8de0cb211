package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
)

// totalsHandler godoc
// @Summary      Montos acumulados de órdenes y costo total de BOMs
// @Produce      json
// @Success      200  {object}  dto.TotalsResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/totals [get]
func totalsHandler(records *usecase.Records) fiber.Handler {
	return func(c *fiber.Ctx) error {
		totals, err := records.Totals(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(totals)
	}
}
