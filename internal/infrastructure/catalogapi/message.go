package catalogapi

import (
	"encoding/json"
	"strings"

	"github.com/jhoicas/Catalogo-admin/internal/domain"
)

// ExtractMessage política única de mensaje de error: el campo "message" del cuerpo
// si existe y no está vacío; si no, el mensaje genérico.
// parsed es lo que resty ya decodificó (puede venir vacío si el Content-Type no era JSON).
func ExtractMessage(parsed string, body []byte) string {
	if msg := strings.TrimSpace(parsed); msg != "" {
		return msg
	}
	var e apiError
	if len(body) > 0 && json.Unmarshal(body, &e) == nil {
		if msg := strings.TrimSpace(e.Message); msg != "" {
			return msg
		}
	}
	return domain.GenericRemoteMessage
}
