package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/config"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

var _ ports.AttributeCache = (*AttributeCache)(nil)

const attributesKey = "catalog-admin:attributes:v1"

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// AttributeCache guarda el snapshot completo de atributos bajo una sola clave con TTL.
// Las mutaciones de atributos/valores la invalidan.
type AttributeCache struct {
	client redis.Cmdable
	ttl    time.Duration
	log    *logger.Logger
}

// NewAttributeCache construye la caché.
func NewAttributeCache(client redis.Cmdable, ttl time.Duration, log *logger.Logger) *AttributeCache {
	return &AttributeCache{client: client, ttl: ttl, log: log.Component("rediscache")}
}

// Get devuelve (snapshot, true, nil) en hit; (nil, false, nil) en miss.
// Un valor corrupto se borra y cuenta como miss.
func (c *AttributeCache) Get(ctx context.Context) ([]entity.Attribute, bool, error) {
	data, err := c.client.Get(ctx, attributesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var attrs []entity.Attribute
	if err := json.Unmarshal(data, &attrs); err != nil {
		c.log.Warn().Err(err).Msg("snapshot de atributos corrupto en caché, se descarta")
		_ = c.client.Del(ctx, attributesKey).Err()
		return nil, false, nil
	}
	return attrs, true, nil
}

// Set guarda el snapshot con el TTL configurado.
func (c *AttributeCache) Set(ctx context.Context, attrs []entity.Attribute) error {
	data, err := json.Marshal(attrs)
	if err != nil {
		return fmt.Errorf("serializar atributos: %w", err)
	}
	if err := c.client.Set(ctx, attributesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Invalidate elimina el snapshot.
func (c *AttributeCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, attributesKey).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
