package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP. Field se llena en errores de validación por campo.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse confirmación simple (ej. borrado).
type MessageResponse struct {
	Message string `json:"message"`
}

// FormValue valor de un input de formulario. Acepta "19.99" o 19.99 en el JSON
// y conserva el texto tal cual para que el dominio lo valide.
type FormValue string

// UnmarshalJSON acepta string, número o null.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("valor de formulario inválido: %w", err)
	}
	*v = FormValue(n.String())
	return nil
}
