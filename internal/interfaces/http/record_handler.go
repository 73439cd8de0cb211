package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/erp-manufactura/internal/application/dto"
	"github.com/jhoicas/erp-manufactura/internal/application/usecase"
	"github.com/jhoicas/erp-manufactura/internal/domain"
	"github.com/jhoicas/erp-manufactura/internal/domain/entity"
)

// RecordHandler CRUD HTTP genérico para una entidad.
type RecordHandler[T entity.Entity[T]] struct {
	uc *usecase.RecordUseCase[T]
}

// NewRecordHandler construye el handler.
func NewRecordHandler[T entity.Entity[T]](uc *usecase.RecordUseCase[T]) *RecordHandler[T] {
	return &RecordHandler[T]{uc: uc}
}

// Mount registra las cinco rutas bajo /<path>.
func (h *RecordHandler[T]) Mount(r fiber.Router) {
	g := r.Group("/" + h.uc.Kind().Path)
	g.Get("/", h.List)
	g.Post("/", h.Create)
	g.Get("/:id", h.GetByID)
	g.Put("/:id", h.Update)
	g.Delete("/:id", h.Delete)
}

// List godoc
// @Summary      Listar registros de la entidad
// @Produce      json
// @Success      200  {array}   object
// @Router       /api/{entity} [get]
func (h *RecordHandler[T]) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		out = []T{}
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{entity}/{id} [get]
func (h *RecordHandler[T]) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return h.notFound(c, id)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear registro (respeta el id enviado)
// @Accept       json
// @Produce      json
// @Success      201  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/{entity} [post]
func (h *RecordHandler[T]) Create(c *fiber.Ctx) error {
	var in T
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar registro (fusión superficial)
// @Accept       json
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  object
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/{entity}/{id} [put]
func (h *RecordHandler[T]) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	patch, err := entity.DecodePatch(c.Body())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, err)
	}
	if out == nil {
		return h.notFound(c, id)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar registro (idempotente)
// @Param        id   path  string  true  "ID del registro"
// @Success      204
// @Router       /api/{entity}/{id} [delete]
func (h *RecordHandler[T]) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RecordHandler[T]) notFound(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Code:    "NOT_FOUND",
		Message: h.uc.Kind().Name + " " + id + " no encontrado",
	})
}

// fail traduce errores de dominio a respuestas HTTP.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
