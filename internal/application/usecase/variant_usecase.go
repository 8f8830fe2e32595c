package usecase

import (
	"context"

	"github.com/jhoicas/Catalogo-admin/internal/application/dto"
	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/application/submission"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

// VariantUseCase alta y edición de variantes de producto.
type VariantUseCase struct {
	catalog *AttributeCatalog
	reader  ports.CatalogReader
	gateway ports.MutationGateway
	tracker *submission.Tracker
	log     *logger.Logger
}

// NewVariantUseCase construye el caso de uso.
func NewVariantUseCase(catalog *AttributeCatalog, reader ports.CatalogReader, gateway ports.MutationGateway, tracker *submission.Tracker, log *logger.Logger) *VariantUseCase {
	return &VariantUseCase{catalog: catalog, reader: reader, gateway: gateway, tracker: tracker, log: log.Component("variant")}
}

// Create compone y envía una variante nueva. Sin id: el servicio asigna uno.
func (uc *VariantUseCase) Create(ctx context.Context, productID entity.ID, in dto.VariantRequest) (*dto.VariantResponse, error) {
	snapshot, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	v, err := catalog.ComposeVariant(snapshot, in.Attributes, fieldsFrom(productID, "", in))
	if err != nil {
		return nil, err
	}
	return uc.submit(ctx, "variant:create:"+string(productID), v)
}

// Update edita una variante existente. Los campos que no llegan conservan el valor previo.
func (uc *VariantUseCase) Update(ctx context.Context, id entity.ID, in dto.VariantRequest) (*dto.VariantResponse, error) {
	prior, err := uc.reader.GetVariant(ctx, id)
	if err != nil {
		return nil, err
	}
	if prior == nil {
		return nil, domain.ErrNotFound
	}
	snapshot, err := uc.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	sel := catalog.MergeSelection(snapshot, *prior, in.Attributes)
	fields := catalog.MergeFields(*prior, fieldsFrom("", id, in))
	v, err := catalog.ComposeVariant(snapshot, sel, fields)
	if err != nil {
		return nil, err
	}
	return uc.submit(ctx, "variant:upsert:"+string(id), v)
}

func (uc *VariantUseCase) submit(ctx context.Context, key string, v entity.Variant) (*dto.VariantResponse, error) {
	var saved *entity.Variant
	err := uc.tracker.Run(detached(ctx), key, func(ctx context.Context) error {
		var err error
		saved, err = uc.gateway.UpsertVariant(ctx, v)
		return err
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("variant_id", string(saved.ID)).Str("product_id", string(saved.ProductID)).Msg("variante guardada")
	return toVariantResponse(*saved), nil
}

func fieldsFrom(productID, variantID entity.ID, in dto.VariantRequest) catalog.VariantFields {
	return catalog.VariantFields{
		ProductID: productID,
		VariantID: variantID,
		Price:     string(in.Price),
		Stock:     string(in.Stock),
		Status:    in.Status,
	}
}

func toVariantResponse(v entity.Variant) *dto.VariantResponse {
	return &dto.VariantResponse{
		ID:              v.ID,
		ProductID:       v.ProductID,
		AttributeValues: v.AttributeValues,
		Price:           v.Price,
		Stock:           v.Stock,
		Status:          v.Status,
	}
}
