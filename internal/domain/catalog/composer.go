package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// VariantFields campos libres del formulario de variante, tal como llegan (texto).
// Status vacío equivale a "available".
type VariantFields struct {
	ProductID entity.ID
	VariantID entity.ID // vacío al crear
	Price     string
	Stock     string
	Status    string
}

// ComposeVariant arma una variante canónica a partir del snapshot de atributos, la selección
// y los campos del formulario. Se detiene en el primer error (sin variante parcial).
//
// attribute_values queda en el orden del catálogo para que reenvíos idénticos produzcan
// payloads idénticos.
func ComposeVariant(snapshot []entity.Attribute, sel entity.VariantSelection, fields VariantFields) (entity.Variant, error) {
	values := make([]entity.VariantAttributeValue, 0, len(snapshot))
	known := make(map[entity.ID]struct{}, len(snapshot))
	for _, attr := range snapshot {
		known[attr.ID] = struct{}{}
		valueID, ok := sel[attr.ID]
		if !ok || valueID.IsZero() {
			return entity.Variant{}, &domain.MissingAttributeSelectionError{
				AttributeID:   string(attr.ID),
				AttributeName: attr.Name,
			}
		}
		if !attr.HasValue(valueID) {
			return entity.Variant{}, &domain.InvalidAttributeValueError{
				AttributeID: string(attr.ID),
				ValueID:     string(valueID),
			}
		}
		values = append(values, entity.VariantAttributeValue{ID: valueID})
	}

	if stale := unknownKeys(sel, known); len(stale) > 0 {
		return entity.Variant{}, &domain.UnknownAttributeError{AttributeID: string(stale[0])}
	}

	if fields.ProductID.IsZero() {
		return entity.Variant{}, &domain.InvalidFieldError{Field: "product_id", Reason: "es requerido"}
	}
	price, err := parsePrice(fields.Price)
	if err != nil {
		return entity.Variant{}, err
	}
	stock, err := parseStock(fields.Stock)
	if err != nil {
		return entity.Variant{}, err
	}
	status, err := parseStatus(fields.Status)
	if err != nil {
		return entity.Variant{}, err
	}

	return entity.Variant{
		ID:              fields.VariantID,
		ProductID:       fields.ProductID,
		AttributeValues: values,
		Price:           price,
		Stock:           stock,
		Status:          status,
	}, nil
}

// MergeSelection recupera la selección previa desde los value ids de prior (mapeados a su
// atributo vía snapshot) y superpone current. Valores previos que ya no existen se ignoran.
func MergeSelection(snapshot []entity.Attribute, prior entity.Variant, current entity.VariantSelection) entity.VariantSelection {
	owner := make(map[entity.ID]entity.ID)
	for _, attr := range snapshot {
		for _, v := range attr.Values {
			owner[v.ID] = attr.ID
		}
	}
	merged := make(entity.VariantSelection, len(snapshot))
	for _, av := range prior.AttributeValues {
		if attrID, ok := owner[av.ID]; ok {
			merged[attrID] = av.ID
		}
	}
	for k, v := range current {
		merged[k] = v
	}
	return merged
}

// MergeFields completa los campos ausentes con los de la variante previa.
func MergeFields(prior entity.Variant, current VariantFields) VariantFields {
	out := current
	if out.ProductID.IsZero() {
		out.ProductID = prior.ProductID
	}
	if out.VariantID.IsZero() {
		out.VariantID = prior.ID
	}
	if strings.TrimSpace(out.Price) == "" && !prior.Price.IsZero() {
		out.Price = prior.Price.String()
	}
	if strings.TrimSpace(out.Stock) == "" {
		out.Stock = strconv.FormatInt(prior.Stock, 10)
	}
	if strings.TrimSpace(out.Status) == "" && prior.Status != "" {
		out.Status = string(prior.Status)
	}
	return out
}

func unknownKeys(sel entity.VariantSelection, known map[entity.ID]struct{}) []entity.ID {
	var out []entity.ID
	for k := range sel {
		if _, ok := known[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func parsePrice(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, &domain.InvalidFieldError{Field: "price", Reason: "es requerido"}
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &domain.InvalidFieldError{Field: "price", Reason: "no es un número"}
	}
	if !price.IsPositive() {
		return decimal.Zero, &domain.InvalidFieldError{Field: "price", Reason: "debe ser mayor que cero"}
	}
	return price, nil
}

func parseStock(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &domain.InvalidFieldError{Field: "stock", Reason: "es requerido"}
	}
	stock, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &domain.InvalidFieldError{Field: "stock", Reason: "debe ser un entero"}
	}
	if stock < 0 {
		return 0, &domain.InvalidFieldError{Field: "stock", Reason: "no puede ser negativo"}
	}
	return stock, nil
}

func parseStatus(raw string) (entity.VariantStatus, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entity.DefaultVariantStatus, nil
	}
	status := entity.VariantStatus(raw)
	if !status.Valid() {
		return "", &domain.InvalidFieldError{Field: "status", Reason: "debe ser available, unavailable o call"}
	}
	return status, nil
}
