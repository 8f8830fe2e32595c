package usecase

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

// AttributeCatalog fuente de solo lectura del snapshot de atributos (caché opcional + servicio remoto).
type AttributeCatalog struct {
	reader ports.CatalogReader
	cache  ports.AttributeCache // nil = sin caché
	log    *logger.Logger

	// gen cambia en cada Invalidate; un snapshot leído en una generación anterior no se guarda.
	mu  sync.Mutex
	gen uint64
}

// NewAttributeCatalog construye el catálogo. cache puede ser nil.
func NewAttributeCatalog(reader ports.CatalogReader, cache ports.AttributeCache, log *logger.Logger) *AttributeCatalog {
	return &AttributeCatalog{reader: reader, cache: cache, log: log.Component("attribute_catalog")}
}

// Snapshot devuelve los atributos vigentes. Un fallo de caché nunca bloquea la lectura remota.
func (c *AttributeCatalog) Snapshot(ctx context.Context) ([]entity.Attribute, error) {
	if c.cache != nil {
		attrs, hit, err := c.cache.Get(ctx)
		if err != nil {
			c.log.Warn().Err(err).Msg("caché de atributos no disponible")
		}
		if hit {
			return attrs, nil
		}
	}
	gen := c.generation()
	attrs, err := c.reader.ListAttributes(ctx)
	if err != nil {
		return nil, err
	}
	if c.cache != nil {
		c.store(ctx, gen, attrs)
	}
	return attrs, nil
}

// Invalidate descarta el snapshot en caché tras una mutación confirmada.
func (c *AttributeCatalog) Invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if err := c.cache.Invalidate(ctx); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo invalidar la caché de atributos")
	}
}

func (c *AttributeCatalog) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// store guarda attrs solo si no hubo Invalidate desde que se empezó a leer el remoto.
func (c *AttributeCatalog) store(ctx context.Context, gen uint64, attrs []entity.Attribute) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		c.log.Debug().Msg("snapshot de atributos obsoleto, no se guarda en caché")
		return
	}
	if err := c.cache.Set(ctx, attrs); err != nil {
		c.log.Warn().Err(err).Msg("no se pudo guardar el snapshot de atributos")
	}
}

// normalizeLabel recorta espacios y normaliza a NFC para que "Camión" escrito con
// tilde combinada y precompuesta sea el mismo nombre. Vacío -> *InvalidFieldError.
func normalizeLabel(field, raw string) (string, error) {
	s := strings.TrimSpace(norm.NFC.String(raw))
	if s == "" {
		return "", &domain.InvalidFieldError{Field: field, Reason: "es requerido"}
	}
	return s, nil
}

// detached contexto que sobrevive a la cancelación de la petición HTTP: una mutación
// ya despachada no se aborta.
func detached(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
