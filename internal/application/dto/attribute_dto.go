package dto

import "github.com/jhoicas/Catalogo-admin/internal/domain/entity"

// UpsertAttributeRequest entrada para crear o renombrar un atributo.
type UpsertAttributeRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// UpsertAttributeValueRequest entrada para crear o actualizar un valor de atributo.
type UpsertAttributeValueRequest struct {
	Value string `json:"value" validate:"required,min=1,max=100"`
}

// AttributeValueResponse salida de un valor de atributo.
type AttributeValueResponse struct {
	ID          entity.ID `json:"id"`
	AttributeID entity.ID `json:"attribute_id"`
	Value       string    `json:"value"`
}

// AttributeResponse salida de un atributo con sus valores en orden.
type AttributeResponse struct {
	ID     entity.ID                `json:"id"`
	Name   string                   `json:"name"`
	Values []AttributeValueResponse `json:"values"`
}

// AttributeListResponse snapshot del catálogo de atributos.
type AttributeListResponse struct {
	Items []AttributeResponse `json:"items"`
}
