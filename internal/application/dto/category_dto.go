package dto

import "github.com/jhoicas/Catalogo-admin/internal/domain/entity"

// UpsertCategoryRequest entrada para crear o actualizar una categoría.
// parent_id null, ausente o 0 = categoría principal.
type UpsertCategoryRequest struct {
	Name     string    `json:"name" validate:"required,min=1,max=200"`
	ParentID entity.ID `json:"parent_id"`
}

// CategoryResponse registro de categoría devuelto por el servicio remoto.
type CategoryResponse struct {
	ID       entity.ID `json:"id"`
	Name     string    `json:"name"`
	ParentID entity.ID `json:"parent_id,omitempty"`
}

// CategoryNodeResponse nodo del árbol con los flags que usa la vista de lista.
type CategoryNodeResponse struct {
	ID        entity.ID              `json:"id"`
	Name      string                 `json:"name"`
	ParentID  entity.ID              `json:"parent_id,omitempty"`
	IsParent  bool                   `json:"is_parent"`
	CanDelete bool                   `json:"can_delete"`
	Children  []CategoryNodeResponse `json:"children"`
}

// CategoryTreeResponse bosque completo de categorías.
type CategoryTreeResponse struct {
	Items []CategoryNodeResponse `json:"items"`
	Total int                    `json:"total"`
}
