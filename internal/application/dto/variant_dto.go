package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// VariantRequest formulario de variante: un valor elegido por atributo más precio, stock y estado.
// En edición los campos ausentes se completan con la variante previa.
type VariantRequest struct {
	Attributes entity.VariantSelection `json:"attributes"`
	Price      FormValue               `json:"price"`
	Stock      FormValue               `json:"stock"`
	Status     string                  `json:"status"` // vacío = available; lo valida el dominio
}

// VariantResponse salida de una variante.
type VariantResponse struct {
	ID              entity.ID                      `json:"id"`
	ProductID       entity.ID                      `json:"product_id"`
	AttributeValues []entity.VariantAttributeValue `json:"attribute_values"`
	Price           decimal.Decimal                `json:"price"`
	Stock           int64                          `json:"stock"`
	Status          entity.VariantStatus           `json:"status"`
}
