package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-admin/internal/application/dto"
	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/application/submission"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

// AttributeUseCase atributos de variante y sus valores.
type AttributeUseCase struct {
	catalog *AttributeCatalog
	gateway ports.MutationGateway
	tracker *submission.Tracker
	log     *logger.Logger
}

// NewAttributeUseCase construye el caso de uso.
func NewAttributeUseCase(catalog *AttributeCatalog, gateway ports.MutationGateway, tracker *submission.Tracker, log *logger.Logger) *AttributeUseCase {
	return &AttributeUseCase{catalog: catalog, gateway: gateway, tracker: tracker, log: log.Component("attribute")}
}

// List devuelve el snapshot de atributos en el orden del servicio.
func (uc *AttributeUseCase) List(ctx context.Context) (*dto.AttributeListResponse, error) {
	attrs, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		items = append(items, toAttributeResponse(a))
	}
	return &dto.AttributeListResponse{Items: items}, nil
}

// UpsertAttribute crea (id vacío) o renombra un atributo.
func (uc *AttributeUseCase) UpsertAttribute(ctx context.Context, id entity.ID, in dto.UpsertAttributeRequest) (*dto.AttributeResponse, error) {
	name, err := normalizeLabel("name", in.Name)
	if err != nil {
		return nil, err
	}
	if !id.IsZero() {
		if _, err := uc.find(ctx, id); err != nil {
			return nil, err
		}
	}

	key := "attribute:create:" + name
	if !id.IsZero() {
		key = "attribute:upsert:" + string(id)
	}
	var saved *entity.Attribute
	err = uc.tracker.Run(detached(ctx), key, func(ctx context.Context) error {
		var err error
		saved, err = uc.gateway.UpsertAttribute(ctx, ports.AttributeMutation{ID: id, Name: name})
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.catalog.Invalidate(detached(ctx))
	out := toAttributeResponse(*saved)
	return &out, nil
}

// UpsertValue crea (valueID vacío) o actualiza un valor del atributo attrID.
func (uc *AttributeUseCase) UpsertValue(ctx context.Context, attrID, valueID entity.ID, in dto.UpsertAttributeValueRequest) (*dto.AttributeValueResponse, error) {
	value, err := normalizeLabel("value", in.Value)
	if err != nil {
		return nil, err
	}
	attr, err := uc.find(ctx, attrID)
	if err != nil {
		return nil, err
	}
	if !valueID.IsZero() && !attr.HasValue(valueID) {
		return nil, domain.ErrNotFound
	}

	key := "attribute-value:create:" + string(attrID) + ":" + value
	if !valueID.IsZero() {
		key = "attribute-value:upsert:" + string(valueID)
	}
	var saved *entity.AttributeValue
	err = uc.tracker.Run(detached(ctx), key, func(ctx context.Context) error {
		var err error
		saved, err = uc.gateway.UpsertAttributeValue(ctx, ports.AttributeValueMutation{ID: valueID, AttributeID: attrID, Value: value})
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.catalog.Invalidate(detached(ctx))
	out := toAttributeValueResponse(*saved, attrID)
	return &out, nil
}

func (uc *AttributeUseCase) find(ctx context.Context, id entity.ID) (entity.Attribute, error) {
	attrs, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		return entity.Attribute{}, err
	}
	for _, a := range attrs {
		if a.ID == id {
			return a, nil
		}
	}
	return entity.Attribute{}, domain.ErrNotFound
}

func toAttributeResponse(a entity.Attribute) dto.AttributeResponse {
	values := make([]dto.AttributeValueResponse, 0, len(a.Values))
	for _, v := range a.Values {
		values = append(values, toAttributeValueResponse(v, a.ID))
	}
	return dto.AttributeResponse{ID: a.ID, Name: a.Name, Values: values}
}

func toAttributeValueResponse(v entity.AttributeValue, attrID entity.ID) dto.AttributeValueResponse {
	owner := v.AttributeID
	if owner.IsZero() {
		owner = attrID
	}
	return dto.AttributeValueResponse{ID: v.ID, AttributeID: owner, Value: v.Value}
}
