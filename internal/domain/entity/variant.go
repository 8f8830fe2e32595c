package entity

import "github.com/shopspring/decimal"

// VariantStatus estado comercial de una variante (conjunto cerrado).
type VariantStatus string

const (
	VariantAvailable   VariantStatus = "available"
	VariantUnavailable VariantStatus = "unavailable"
	VariantCall        VariantStatus = "call"
)

// DefaultVariantStatus se usa cuando el formulario no envía estado.
const DefaultVariantStatus = VariantAvailable

// Valid indica si el estado pertenece al conjunto cerrado.
func (s VariantStatus) Valid() bool {
	switch s {
	case VariantAvailable, VariantUnavailable, VariantCall:
		return true
	}
	return false
}

// VariantAttributeValue referencia a un AttributeValue elegido.
type VariantAttributeValue struct {
	ID ID `json:"id"`
}

// Variant configuración concreta y vendible de un producto: un valor por atributo,
// más precio, stock y estado. Se reemplaza completa en cada edición.
type Variant struct {
	ID              ID                      `json:"id,omitempty"`
	ProductID       ID                      `json:"product_id"`
	AttributeValues []VariantAttributeValue `json:"attribute_values"`
	Price           decimal.Decimal         `json:"price"`
	Stock           int64                   `json:"stock"`
	Status          VariantStatus           `json:"status"`
}
