package http

import (
	"github.com/gofiber/fiber/v2"

	appinventory "github.com/jhoicas/erp-manufactura/internal/application/inventory"
	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// replenishmentHandler godoc
// @Summary      Lista de reposición (productos agotados o bajo el punto de reorden)
// @Produce      json
// @Success      200  {array}   appinventory.Suggestion
// @Router       /api/replenishment [get]
func replenishmentHandler(products *usecase.RecordUseCase[entity.Product]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := products.List(c.UserContext())
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(appinventory.Replenishment(list))
	}
}
