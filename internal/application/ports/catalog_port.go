package ports

import (
	"context"

	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// CategoryMutation cuerpo de upsertCategory. ID vacío = crear; ParentID vacío = raíz (null).
type CategoryMutation struct {
	ID       entity.ID
	Name     string
	ParentID entity.ID
}

// AttributeMutation cuerpo de upsertAttribute.
type AttributeMutation struct {
	ID   entity.ID
	Name string
}

// AttributeValueMutation cuerpo de upsertAttributeValue.
type AttributeValueMutation struct {
	ID          entity.ID
	AttributeID entity.ID
	Value       string
}

// MutationGateway puerto de salida hacia el servicio de catálogo remoto.
// Toda falla se devuelve como *domain.RemoteError con el mensaje ya extraído.
// El núcleo nunca habla con la red directamente; solo a través de este contrato.
type MutationGateway interface {
	UpsertCategory(ctx context.Context, in CategoryMutation) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id entity.ID) error
	UpsertAttribute(ctx context.Context, in AttributeMutation) (*entity.Attribute, error)
	UpsertAttributeValue(ctx context.Context, in AttributeValueMutation) (*entity.AttributeValue, error)
	UpsertVariant(ctx context.Context, v entity.Variant) (*entity.Variant, error)
}

// CatalogReader lecturas del mismo servicio remoto.
type CatalogReader interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListAttributes(ctx context.Context) ([]entity.Attribute, error)
	// GetVariant devuelve nil, nil si no existe.
	GetVariant(ctx context.Context, id entity.ID) (*entity.Variant, error)
}

// AttributeCache caché opcional del snapshot de atributos.
type AttributeCache interface {
	Get(ctx context.Context) ([]entity.Attribute, bool, error)
	Set(ctx context.Context, attrs []entity.Attribute) error
	Invalidate(ctx context.Context) error
}
