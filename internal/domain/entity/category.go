package entity

// Category registro plano tal como lo entrega el servicio de catálogo.
type Category struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	ParentID ID     `json:"parent_id"` // vacío si es raíz
}

// CategoryNode nodo inmutable del árbol de categorías. Los hijos se poseen por valor;
// no hay referencia al padre.
type CategoryNode struct {
	ID       ID             `json:"id"`
	Name     string         `json:"name"`
	ParentID ID             `json:"parent_id,omitempty"`
	Children []CategoryNode `json:"children"`
}

// IsParent indica si el nodo tiene subcategorías.
func (n CategoryNode) IsParent() bool { return len(n.Children) > 0 }
