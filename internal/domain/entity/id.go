package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID identificador opaco de un registro del catálogo remoto.
// El servicio puede emitir ids numéricos o string; ambos se decodifican igual. "" = ausente.
type ID string

// RootSentinel valor que el formulario envía como "Categoría principal" (sin padre).
const RootSentinel ID = "0"

// IsZero indica si el id está ausente.
func (id ID) IsZero() bool { return id == "" }

// String implementa fmt.Stringer.
func (id ID) String() string { return string(id) }

// UnmarshalJSON acepta "abc", 42 y null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// NormalizeParent convierte el centinela "0" en raíz (id vacío).
func NormalizeParent(id ID) ID {
	if id == RootSentinel {
		return ""
	}
	return id
}
