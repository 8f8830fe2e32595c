package catalog

import (
	"context"

	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// CategoryDeleter ejecuta el borrado remoto. El servicio no borra en cascada.
type CategoryDeleter interface {
	DeleteCategory(ctx context.Context, id entity.ID) error
}

// CanDelete una categoría solo se puede borrar si no tiene hijos.
func CanDelete(node entity.CategoryNode) bool {
	return len(node.Children) == 0
}

// CheckDelete devuelve *HasDependentsError con el número de hijos directos si no se puede borrar.
func CheckDelete(node entity.CategoryNode) error {
	if CanDelete(node) {
		return nil
	}
	return &domain.HasDependentsError{CategoryID: string(node.ID), Children: len(node.Children)}
}

// RequestDelete valida la precondición y, solo si se cumple, delega una vez en deleter.
// Tras un borrado exitoso el llamador debe volver a leer y reconstruir el árbol.
func RequestDelete(ctx context.Context, node entity.CategoryNode, deleter CategoryDeleter) error {
	if err := CheckDelete(node); err != nil {
		return err
	}
	return deleter.DeleteCategory(ctx, node.ID)
}

// CheckParent valida que id pueda colgar de parentID: el padre debe existir y no puede ser
// la propia categoría ni uno de sus descendientes. id vacío = categoría nueva.
func CheckParent(forest []entity.CategoryNode, id, parentID entity.ID) error {
	parentID = entity.NormalizeParent(parentID)
	if parentID.IsZero() {
		return nil
	}
	if !id.IsZero() && parentID == id {
		return &domain.CycleError{CategoryID: string(id)}
	}
	if _, ok := FindNode(forest, parentID); !ok {
		return domain.ErrParentNotFound
	}
	if id.IsZero() {
		return nil
	}
	node, ok := FindNode(forest, id)
	if !ok {
		return nil
	}
	for _, d := range Descendants(node) {
		if d == parentID {
			return &domain.CycleError{CategoryID: string(id)}
		}
	}
	return nil
}
