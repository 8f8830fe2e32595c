package usecase

import (
	"context"
	"errors"

	"github.com/jhoicas/Catalogo-admin/internal/application/dto"
	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/application/submission"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/catalog"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

// CategoryUseCase árbol de categorías y mutaciones protegidas por el DeletionGuard.
// El árbol se reconstruye en cada lectura; nunca se actualiza en memoria.
type CategoryUseCase struct {
	reader  ports.CatalogReader
	gateway ports.MutationGateway
	tracker *submission.Tracker
	log     *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(reader ports.CatalogReader, gateway ports.MutationGateway, tracker *submission.Tracker, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{reader: reader, gateway: gateway, tracker: tracker, log: log.Component("category")}
}

// Tree lee la colección plana y devuelve el bosque.
func (uc *CategoryUseCase) Tree(ctx context.Context) (*dto.CategoryTreeResponse, error) {
	forest, err := uc.forest(ctx)
	if err != nil {
		return nil, err
	}
	items := toNodeResponses(forest)
	return &dto.CategoryTreeResponse{Items: items, Total: catalog.CountNodes(forest)}, nil
}

// GetByID devuelve el nodo con su subárbol, o nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id entity.ID) (*dto.CategoryNodeResponse, error) {
	forest, err := uc.forest(ctx)
	if err != nil {
		return nil, err
	}
	node, ok := catalog.FindNode(forest, id)
	if !ok {
		return nil, nil
	}
	out := toNodeResponse(node)
	return &out, nil
}

// Upsert crea (id vacío) o actualiza una categoría. Valida que el padre exista y que el
// cambio no cuelgue la categoría de sí misma o de un descendiente.
func (uc *CategoryUseCase) Upsert(ctx context.Context, id entity.ID, in dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	name, err := normalizeLabel("name", in.Name)
	if err != nil {
		return nil, err
	}
	parent := entity.NormalizeParent(in.ParentID)

	if !id.IsZero() || !parent.IsZero() {
		forest, err := uc.forest(ctx)
		if err != nil {
			return nil, err
		}
		if !id.IsZero() {
			if _, ok := catalog.FindNode(forest, id); !ok {
				return nil, domain.ErrNotFound
			}
		}
		if err := catalog.CheckParent(forest, id, parent); err != nil {
			return nil, err
		}
	}

	key := "category:create:" + string(parent) + ":" + name
	if !id.IsZero() {
		key = "category:upsert:" + string(id)
	}

	var saved *entity.Category
	err = uc.tracker.Run(detached(ctx), key, func(ctx context.Context) error {
		var err error
		saved, err = uc.gateway.UpsertCategory(ctx, ports.CategoryMutation{ID: id, Name: name, ParentID: parent})
		return err
	})
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: saved.ID, Name: saved.Name, ParentID: entity.NormalizeParent(saved.ParentID)}, nil
}

// Delete borra una categoría hoja. Con hijos devuelve *HasDependentsError y no llama al servicio.
func (uc *CategoryUseCase) Delete(ctx context.Context, id entity.ID) error {
	forest, err := uc.forest(ctx)
	if err != nil {
		return err
	}
	node, ok := catalog.FindNode(forest, id)
	if !ok {
		return domain.ErrNotFound
	}
	if err := catalog.CheckDelete(node); err != nil {
		uc.log.Info().Str("category_id", string(id)).Int("children", len(node.Children)).Msg("borrado rechazado: la categoría tiene subcategorías")
		return err
	}
	return uc.tracker.Run(detached(ctx), "category:delete:"+string(id), func(ctx context.Context) error {
		return catalog.RequestDelete(ctx, node, uc.gateway)
	})
}

func (uc *CategoryUseCase) forest(ctx context.Context) ([]entity.CategoryNode, error) {
	records, err := uc.reader.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	forest, err := catalog.BuildTree(records)
	if err != nil {
		if errors.Is(err, domain.ErrCycle) || errors.Is(err, domain.ErrDuplicateCategory) {
			uc.log.Error().Err(err).Int("records", len(records)).Msg("colección de categorías inconsistente")
		}
		return nil, err
	}
	return forest, nil
}

func toNodeResponses(nodes []entity.CategoryNode) []dto.CategoryNodeResponse {
	out := make([]dto.CategoryNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, toNodeResponse(n))
	}
	return out
}

func toNodeResponse(n entity.CategoryNode) dto.CategoryNodeResponse {
	return dto.CategoryNodeResponse{
		ID:        n.ID,
		Name:      n.Name,
		ParentID:  n.ParentID,
		IsParent:  n.IsParent(),
		CanDelete: catalog.CanDelete(n),
		Children:  toNodeResponses(n.Children),
	}
}
