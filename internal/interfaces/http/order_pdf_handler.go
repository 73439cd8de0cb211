package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
)

// OrderPDFHandler descarga de órdenes de compra y venta en PDF.
type OrderPDFHandler struct {
	uc *usecase.OrderPDFUseCase
}

// NewOrderPDFHandler construye el handler.
func NewOrderPDFHandler(uc *usecase.OrderPDFUseCase) *OrderPDFHandler {
	return &OrderPDFHandler{uc: uc}
}

// PurchaseOrder godoc
// @Summary      Orden de compra en PDF
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *OrderPDFHandler) PurchaseOrder(c *fiber.Ctx) error {
	out, name, err := h.uc.PurchaseOrderPDF(c.UserContext(), c.Params("id"))
	return sendPDF(c, out, name, err)
}

// SalesOrder godoc
// @Summary      Orden de venta en PDF
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales-orders/{id}/pdf [get]
func (h *OrderPDFHandler) SalesOrder(c *fiber.Ctx) error {
	out, name, err := h.uc.SalesOrderPDF(c.UserContext(), c.Params("id"))
	return sendPDF(c, out, name, err)
}

func sendPDF(c *fiber.Ctx, out []byte, name string, err error) error {
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(out)
}
