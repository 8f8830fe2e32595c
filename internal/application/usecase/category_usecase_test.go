package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-admin/internal/application/dto"
	"github.com/jhoicas/Catalogo-admin/internal/application/submission"
	"github.com/jhoicas/Catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/Catalogo-admin/pkg/logger"
)

func newCategoryUC(remote *fakeRemote) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(remote, remote, submission.NewTracker(), logger.Nop())
}

func TestCategoryTree_Flags(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()

	tree, err := newCategoryUC(remote).Tree(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Total)
	require.Len(t, tree.Items, 2)

	shoesNode := tree.Items[0]
	assert.Equal(t, entity.ID("1"), shoesNode.ID)
	assert.True(t, shoesNode.IsParent)
	assert.False(t, shoesNode.CanDelete)
	require.Len(t, shoesNode.Children, 1)
	assert.True(t, shoesNode.Children[0].CanDelete)
	assert.NotNil(t, tree.Items[1].Children, "las hojas serializan children como []")
}

func TestCategoryTree_CicloEsError(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = []entity.Category{{ID: "a", Name: "A", ParentID: "b"}, {ID: "b", Name: "B", ParentID: "a"}}

	_, err := newCategoryUC(remote).Tree(context.Background())
	assert.ErrorIs(t, err, domain.ErrCycle)
}

func TestCategoryGetByID(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()
	uc := newCategoryUC(remote)

	node, err := uc.GetByID(context.Background(), "2")
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "Sneakers", node.Name)

	node, err = uc.GetByID(context.Background(), "404")
	require.NoError(t, err)
	assert.Nil(t, node)
}

func TestCategoryDelete_ConHijosNoLlamaAlServicio(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()

	err := newCategoryUC(remote).Delete(context.Background(), "1")
	var dep *domain.HasDependentsError
	require.True(t, errors.As(err, &dep))
	assert.Equal(t, 1, dep.Children)
	assert.Equal(t, 0, remote.count("deleteCategory"))
}

func TestCategoryDelete_Hoja(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()

	require.NoError(t, newCategoryUC(remote).Delete(context.Background(), "2"))
	assert.Equal(t, 1, remote.count("deleteCategory"))
	assert.Equal(t, entity.ID("2"), remote.deletedID)
}

func TestCategoryDelete_NoExiste(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()

	err := newCategoryUC(remote).Delete(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, remote.count("deleteCategory"))
}

func TestCategoryDelete_FalloRemotoSePropaga(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()
	remote.failWith = remoteErr("Category is in use")

	err := newCategoryUC(remote).Delete(context.Background(), "3")
	var re *domain.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "Category is in use", re.Message)
}

func TestCategoryUpsert_CrearRaizConCentinela(t *testing.T) {
	remote := newFakeRemote()

	out, err := newCategoryUC(remote).Upsert(context.Background(), "", dto.UpsertCategoryRequest{Name: "  Shoes ", ParentID: "0"})
	require.NoError(t, err)
	assert.Equal(t, "Shoes", out.Name)
	assert.True(t, out.ParentID.IsZero())
	assert.Equal(t, 0, remote.count("listCategories"), "crear raíz no necesita leer el árbol")
}

func TestCategoryUpsert_NombreNormalizadoNFC(t *testing.T) {
	remote := newFakeRemote()

	out, err := newCategoryUC(remote).Upsert(context.Background(), "", dto.UpsertCategoryRequest{Name: "Camio\u0301n"})
	require.NoError(t, err)
	assert.Equal(t, "Cami\u00f3n", out.Name, "tilde combinada se compone")
}

func TestCategoryUpsert_Validaciones(t *testing.T) {
	cases := []struct {
		name    string
		id      entity.ID
		req     dto.UpsertCategoryRequest
		wantErr error
	}{
		{"nombre vacío", "", dto.UpsertCategoryRequest{Name: "   "}, domain.ErrValidation},
		{"padre inexistente", "", dto.UpsertCategoryRequest{Name: "X", ParentID: "77"}, domain.ErrParentNotFound},
		{"padre de sí misma", "1", dto.UpsertCategoryRequest{Name: "Shoes", ParentID: "1"}, domain.ErrCycle},
		{"padre descendiente", "1", dto.UpsertCategoryRequest{Name: "Shoes", ParentID: "2"}, domain.ErrCycle},
		{"categoría inexistente", "42", dto.UpsertCategoryRequest{Name: "X"}, domain.ErrNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			remote := newFakeRemote()
			remote.categories = shoes()

			_, err := newCategoryUC(remote).Upsert(context.Background(), tc.id, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, 0, remote.count("upsertCategory"))
		})
	}
}

func TestCategoryUpsert_MoverAOtroPadre(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()

	out, err := newCategoryUC(remote).Upsert(context.Background(), "2", dto.UpsertCategoryRequest{Name: "Sneakers", ParentID: "3"})
	require.NoError(t, err)
	assert.Equal(t, entity.ID("3"), out.ParentID)
}

func TestCategoryUpsert_EnvioDobleRechazado(t *testing.T) {
	remote := newFakeRemote()
	remote.categories = shoes()
	remote.block = make(chan struct{})
	uc := newCategoryUC(remote)

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		_, firstErr = uc.Upsert(context.Background(), "2", dto.UpsertCategoryRequest{Name: "Sneakers", ParentID: "1"})
	}()

	require.Eventually(t, func() bool { return remote.count("upsertCategory") == 1 }, time.Second, 5*time.Millisecond)
	_, err := uc.Upsert(context.Background(), "2", dto.UpsertCategoryRequest{Name: "Otra", ParentID: "1"})
	assert.ErrorIs(t, err, domain.ErrSubmissionInFlight)

	close(remote.block)
	wg.Wait()
	require.NoError(t, firstErr)
	assert.Equal(t, 1, remote.count("upsertCategory"))
}

func TestCategoryUpsert_ReintentoTrasFallo(t *testing.T) {
	remote := newFakeRemote()
	remote.failWith = remoteErr("duplicado")
	uc := newCategoryUC(remote)

	_, err := uc.Upsert(context.Background(), "", dto.UpsertCategoryRequest{Name: "Shoes"})
	assert.ErrorIs(t, err, domain.ErrRemote)

	remote.failWith = nil
	_, err = uc.Upsert(context.Background(), "", dto.UpsertCategoryRequest{Name: "Shoes"})
	require.NoError(t, err)
	assert.Equal(t, 2, remote.count("upsertCategory"))
}
