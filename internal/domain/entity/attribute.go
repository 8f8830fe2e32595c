package entity

// Attribute eje de variación de producto (ej. "color") con sus valores en orden.
type Attribute struct {
	ID     ID               `json:"id"`
	Name   string           `json:"name"`
	Values []AttributeValue `json:"values"`
}

// AttributeValue valor discreto de un atributo (ej. "rojo").
type AttributeValue struct {
	ID          ID     `json:"id"`
	AttributeID ID     `json:"attribute_id,omitempty"`
	Value       string `json:"value"`
}

// HasValue indica si valueID es uno de los valores del atributo.
func (a Attribute) HasValue(valueID ID) bool {
	for _, v := range a.Values {
		if v.ID == valueID {
			return true
		}
	}
	return false
}

// VariantSelection atributo -> valor elegido. Transitorio, vive durante la composición.
type VariantSelection map[ID]ID
