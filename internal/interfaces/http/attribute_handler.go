package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Catalogo-admin/internal/application/dto"
	"github.com/jhoicas/Catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// AttributeHandler atributos de variante y sus valores.
type AttributeHandler struct {
	uc *usecase.AttributeUseCase
}

// NewAttributeHandler construye el handler.
func NewAttributeHandler(uc *usecase.AttributeUseCase) *AttributeHandler {
	return &AttributeHandler{uc: uc}
}

// List GET /api/attributes
func (h *AttributeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create POST /api/attributes
func (h *AttributeHandler) Create(c *fiber.Ctx) error {
	var in dto.UpsertAttributeRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpsertAttribute(c.UserContext(), "", in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/attributes/:id
func (h *AttributeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpsertAttributeRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpsertAttribute(c.UserContext(), entity.ID(c.Params("id")), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateValue POST /api/attributes/:id/values
func (h *AttributeHandler) CreateValue(c *fiber.Ctx) error {
	var in dto.UpsertAttributeValueRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpsertValue(c.UserContext(), entity.ID(c.Params("id")), "", in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateValue PUT /api/attributes/:id/values/:valueId
func (h *AttributeHandler) UpdateValue(c *fiber.Ctx) error {
	var in dto.UpsertAttributeValueRequest
	if ok, err := bindJSON(c, &in); !ok {
		return err
	}
	out, err := h.uc.UpsertValue(c.UserContext(), entity.ID(c.Params("id")), entity.ID(c.Params("valueId")), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
