package catalog

import (
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// BuildTree construye el bosque de categorías a partir de registros planos sin orden.
//
// Un registro cuyo parent_id está vacío o apunta a un id inexistente es raíz (nunca se descarta).
// El orden entre hermanos y entre raíces sigue el orden de entrada.
// Falla con ErrDuplicateCategory si un id se repite y con *CycleError si algún registro
// no es alcanzable desde una raíz (ciclo de parent_id, incluido parent_id == id).
func BuildTree(records []entity.Category) ([]entity.CategoryNode, error) {
	index := make(map[entity.ID]int, len(records))
	for i, r := range records {
		if _, dup := index[r.ID]; dup {
			return nil, domain.ErrDuplicateCategory
		}
		index[r.ID] = i
	}

	children := make(map[entity.ID][]int, len(records))
	roots := make([]int, 0)
	for i, r := range records {
		parent := entity.NormalizeParent(r.ParentID)
		if _, ok := index[parent]; parent.IsZero() || !ok {
			roots = append(roots, i)
			continue
		}
		children[parent] = append(children[parent], i)
	}

	visited := make([]bool, len(records))
	var build func(i int) entity.CategoryNode
	build = func(i int) entity.CategoryNode {
		visited[i] = true
		r := records[i]
		kids := children[r.ID]
		node := entity.CategoryNode{
			ID:       r.ID,
			Name:     r.Name,
			ParentID: entity.NormalizeParent(r.ParentID),
			Children: make([]entity.CategoryNode, 0, len(kids)),
		}
		for _, k := range kids {
			node.Children = append(node.Children, build(k))
		}
		return node
	}

	forest := make([]entity.CategoryNode, 0, len(roots))
	for _, i := range roots {
		forest = append(forest, build(i))
	}
	for i, seen := range visited {
		if !seen {
			return nil, &domain.CycleError{CategoryID: string(records[i].ID)}
		}
	}
	return forest, nil
}

// FindNode busca un nodo por id en profundidad.
func FindNode(forest []entity.CategoryNode, id entity.ID) (entity.CategoryNode, bool) {
	for _, n := range forest {
		if n.ID == id {
			return n, true
		}
		if found, ok := FindNode(n.Children, id); ok {
			return found, true
		}
	}
	return entity.CategoryNode{}, false
}

// Descendants devuelve los ids de todo el subárbol bajo node (sin incluirlo), en preorden.
func Descendants(node entity.CategoryNode) []entity.ID {
	var out []entity.ID
	for _, c := range node.Children {
		out = append(out, c.ID)
		out = append(out, Descendants(c)...)
	}
	return out
}

// CountNodes total de nodos del bosque.
func CountNodes(forest []entity.CategoryNode) int {
	n := 0
	for _, node := range forest {
		n += 1 + CountNodes(node.Children)
	}
	return n
}
