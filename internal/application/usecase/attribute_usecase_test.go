package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-admin/internal/application/dto"
	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/application/submission"
	"github.com/jhoicas/Catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

func newAttributeUC(remote *fakeRemote, cache ports.AttributeCache) *usecase.AttributeUseCase {
	cat := usecase.NewAttributeCatalog(remote, cache, logger.Nop())
	return usecase.NewAttributeUseCase(cat, remote, submission.NewTracker(), logger.Nop())
}

func TestAttributeList_OrdenDelServicio(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()

	out, err := newAttributeUC(remote, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, entity.ID("color"), out.Items[0].ID)
	assert.Equal(t, entity.ID("color"), out.Items[0].Values[0].AttributeID, "el dueño se completa desde el atributo")
}

func TestAttributeCatalog_UsaCache(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	cache := &memCache{}
	cat := usecase.NewAttributeCatalog(remote, cache, logger.Nop())

	_, err := cat.Snapshot(context.Background())
	require.NoError(t, err)
	_, err = cat.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, remote.count("listAttributes"))
}

func TestAttributeCatalog_FalloDeCacheLeeRemoto(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	cache := &memCache{getErr: errors.New("redis caído")}
	cat := usecase.NewAttributeCatalog(remote, cache, logger.Nop())

	attrs, err := cat.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Len(t, attrs, 2)
	assert.Equal(t, 1, remote.count("listAttributes"))
}

func TestAttributeCatalog_LecturaLentaNoRepueblaTrasInvalidar(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	gate, entered := make(chan struct{}), make(chan struct{})
	remote.listGate, remote.listEntered = gate, entered
	cache := &memCache{}
	cat := usecase.NewAttributeCatalog(remote, cache, logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	var stale []entity.Attribute
	go func() {
		defer wg.Done()
		stale, _ = cat.Snapshot(ctx)
	}()
	<-entered

	// Mutación confirmada mientras la lectura anterior sigue en vuelo.
	updated := colorSize()
	updated[1].Values = append(updated[1].Values, entity.AttributeValue{ID: "xl", Value: "XL"})
	remote.setAttributes(updated)
	cat.Invalidate(ctx)

	close(gate)
	wg.Wait()
	assert.Len(t, stale[1].Values, 2, "la lectura en vuelo devuelve lo que leyó")
	assert.False(t, cache.hit, "el snapshot viejo no vuelve a la caché")

	fresh, err := cat.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh[1].Values, 3)
	assert.True(t, cache.hit)
}

func TestUpsertAttribute_InvalidaCache(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	cache := &memCache{}
	uc := newAttributeUC(remote, cache)

	out, err := uc.UpsertAttribute(context.Background(), "", dto.UpsertAttributeRequest{Name: " Material "})
	require.NoError(t, err)
	assert.Equal(t, "Material", out.Name)
	assert.Empty(t, out.Values)
	assert.Equal(t, 1, cache.invalidated)
}

func TestUpsertAttribute_Renombrar(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()

	out, err := newAttributeUC(remote, nil).UpsertAttribute(context.Background(), "size", dto.UpsertAttributeRequest{Name: "Talla"})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("size"), out.ID)
}

func TestUpsertAttribute_Errores(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	uc := newAttributeUC(remote, nil)

	_, err := uc.UpsertAttribute(context.Background(), "", dto.UpsertAttributeRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.UpsertAttribute(context.Background(), "material", dto.UpsertAttributeRequest{Name: "Material"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, remote.count("upsertAttribute"))
}

func TestUpsertValue(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	cache := &memCache{}
	uc := newAttributeUC(remote, cache)

	out, err := uc.UpsertValue(context.Background(), "size", "", dto.UpsertAttributeValueRequest{Value: "XL"})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("size"), out.AttributeID)
	assert.Equal(t, "XL", out.Value)
	assert.Equal(t, 1, cache.invalidated)

	_, err = uc.UpsertValue(context.Background(), "size", "s", dto.UpsertAttributeValueRequest{Value: "Small"})
	require.NoError(t, err)
}

func TestUpsertValue_Errores(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	uc := newAttributeUC(remote, nil)

	_, err := uc.UpsertValue(context.Background(), "material", "", dto.UpsertAttributeValueRequest{Value: "Cuero"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.UpsertValue(context.Background(), "size", "red", dto.UpsertAttributeValueRequest{Value: "Rojo"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el valor pertenece a otro atributo")

	_, err = uc.UpsertValue(context.Background(), "size", "", dto.UpsertAttributeValueRequest{Value: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Equal(t, 0, remote.count("upsertAttributeValue"))
}

func TestUpsertValue_FalloRemotoNoInvalida(t *testing.T) {
	remote := newFakeRemote()
	remote.attributes = colorSize()
	remote.failWith = remoteErr("The value has already been taken.")
	cache := &memCache{}
	uc := newAttributeUC(remote, cache)

	_, err := uc.UpsertValue(context.Background(), "size", "", dto.UpsertAttributeValueRequest{Value: "S"})
	var re *domain.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "The value has already been taken.", re.Message)
	assert.Equal(t, 0, cache.invalidated)
}
