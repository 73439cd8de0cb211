package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/erp-manufactura/internal/application/dto"
	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Records  *usecase.Records
	OrderPDF *usecase.OrderPDFUseCase
	Storage  string
	Metrics  *Metrics
	Gatherer prometheus.Gatherer
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
	}

	app.Get("/health", healthHandler(deps))
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")

	r := deps.Records
	NewRecordHandler(r.Partners).Mount(api)
	NewRecordHandler(r.Products).Mount(api)
	NewRecordHandler(r.Orders).Mount(api)
	NewRecordHandler(r.Inventory).Mount(api)
	NewRecordHandler(r.PurchaseOrders).Mount(api)
	NewRecordHandler(r.SalesOrders).Mount(api)
	NewRecordHandler(r.Machines).Mount(api)
	NewRecordHandler(r.Customers).Mount(api)
	NewRecordHandler(r.Suppliers).Mount(api)
	NewRecordHandler(r.Employees).Mount(api)
	NewRecordHandler(r.ProductionOrders).Mount(api)
	NewRecordHandler(r.QualityControls).Mount(api)
	NewRecordHandler(r.Warehouses).Mount(api)
	NewRecordHandler(r.AccountingEntries).Mount(api)
	NewRecordHandler(r.Projects).Mount(api)
	NewRecordHandler(r.Formulations).Mount(api)
	NewRecordHandler(r.BOMs).Mount(api)

	api.Get("/replenishment", replenishmentHandler(r.Products))
	api.Get("/reports/totals", totalsHandler(r))

	// PDF de órdenes
	if deps.OrderPDF != nil {
		pdfHandler := NewOrderPDFHandler(deps.OrderPDF)
		api.Get("/purchase-orders/:id/pdf", pdfHandler.PurchaseOrder)
		api.Get("/sales-orders/:id/pdf", pdfHandler.SalesOrder)
	}
}

// healthHandler godoc
// @Summary      Estado del servicio y registros por entidad
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /health [get]
func healthHandler(deps RouterDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		counts, err := deps.Records.Counts(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "degraded", Storage: deps.Storage})
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Storage: deps.Storage, Records: counts})
	}
}
