package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrValidation         = errors.New("error de validación")
	ErrDuplicateCategory  = errors.New("categoría duplicada")
	ErrParentNotFound     = errors.New("la categoría padre no existe")
	ErrHasDependents      = errors.New("la categoría tiene subcategorías")
	ErrCycle              = errors.New("la jerarquía de categorías contiene un ciclo")
	ErrSubmissionInFlight = errors.New("ya hay un envío en curso")
	ErrRemote             = errors.New("fallo del servicio de catálogo")
)

// GenericRemoteMessage mensaje fijo cuando el servicio remoto no devuelve uno propio.
const GenericRemoteMessage = "ocurrió un error inesperado"

// HasDependentsError se produce al intentar eliminar una categoría con hijos directos.
type HasDependentsError struct {
	CategoryID string
	Children   int
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("no se puede eliminar la categoría %s: tiene %d subcategorías", e.CategoryID, e.Children)
}

func (e *HasDependentsError) Unwrap() error { return ErrHasDependents }

// CycleError indica que CategoryID participa (o participaría) en un ciclo de parent_id.
type CycleError struct {
	CategoryID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("la categoría %s forma un ciclo en la jerarquía", e.CategoryID)
}

func (e *CycleError) Unwrap() error { return ErrCycle }

// MissingAttributeSelectionError falta un valor seleccionado para un atributo del catálogo.
type MissingAttributeSelectionError struct {
	AttributeID   string
	AttributeName string
}

func (e *MissingAttributeSelectionError) Error() string {
	return fmt.Sprintf("%s es requerido", e.label())
}

func (e *MissingAttributeSelectionError) Unwrap() error { return ErrValidation }

func (e *MissingAttributeSelectionError) label() string {
	if e.AttributeName != "" {
		return e.AttributeName
	}
	return e.AttributeID
}

// UnknownAttributeError la selección referencia un atributo que ya no está en el catálogo.
type UnknownAttributeError struct {
	AttributeID string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("el atributo %s no existe en el catálogo", e.AttributeID)
}

func (e *UnknownAttributeError) Unwrap() error { return ErrValidation }

// InvalidAttributeValueError el valor elegido no pertenece al atributo.
type InvalidAttributeValueError struct {
	AttributeID string
	ValueID     string
}

func (e *InvalidAttributeValueError) Error() string {
	return fmt.Sprintf("el valor %s no pertenece al atributo %s", e.ValueID, e.AttributeID)
}

func (e *InvalidAttributeValueError) Unwrap() error { return ErrValidation }

// InvalidFieldError campo de formulario ausente o mal formado (price, stock, status, name...).
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is permite errors.Is tanto con ErrValidation como con ErrInvalidInput.
func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrValidation || target == ErrInvalidInput
}

// RemoteError fallo devuelto por el servicio de catálogo remoto (o de red).
// Message ya viene extraído y se muestra tal cual al usuario.
type RemoteError struct {
	Op      string
	Status  int // 0 si no hubo respuesta
	Message string
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s (%d): %s", e.Op, e.Status, e.Message)
}

func (e *RemoteError) Unwrap() error { return ErrRemote }
