package usecase_test

import (
	"context"
	"strconv"
	"sync"

	"github.com/jhoicas/Catalogo-admin/internal/application/ports"
	"github.com/jhoicas/Catalogo-admin/internal/domain"
	"github.com/jhoicas/Catalogo-admin/internal/domain/entity"
)

// fakeRemote implementa CatalogReader y MutationGateway en memoria y cuenta llamadas.
type fakeRemote struct {
	mu         sync.Mutex
	categories []entity.Category
	attributes []entity.Attribute
	variants   map[entity.ID]entity.Variant

	calls     map[string]int
	nextID    int
	failWith  error
	block     chan struct{} // si no es nil, las mutaciones esperan hasta que se cierre
	lastVar   entity.Variant
	deletedID entity.ID

	// listGate retiene la próxima ListAttributes (ya con los datos leídos) hasta que se cierre;
	// listEntered se cierra cuando esa lectura llegó al punto de espera.
	listGate    chan struct{}
	listEntered chan struct{}
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{variants: map[entity.ID]entity.Variant{}, calls: map[string]int{}, nextID: 100}
}

func (f *fakeRemote) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeRemote) enter(op string) error {
	f.mu.Lock()
	f.calls[op]++
	block, fail := f.block, f.failWith
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return fail
}

func (f *fakeRemote) newID() entity.ID {
	f.nextID++
	return entity.ID(strconv.Itoa(f.nextID))
}

func (f *fakeRemote) ListCategories(context.Context) ([]entity.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["listCategories"]++
	return append([]entity.Category(nil), f.categories...), nil
}

func (f *fakeRemote) ListAttributes(context.Context) ([]entity.Attribute, error) {
	f.mu.Lock()
	f.calls["listAttributes"]++
	out := append([]entity.Attribute(nil), f.attributes...)
	gate, entered := f.listGate, f.listEntered
	f.listGate, f.listEntered = nil, nil
	f.mu.Unlock()
	if gate != nil {
		close(entered)
		<-gate
	}
	return out, nil
}

// setAttributes reemplaza el catálogo remoto.
func (f *fakeRemote) setAttributes(attrs []entity.Attribute) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attributes = attrs
}

func (f *fakeRemote) GetVariant(_ context.Context, id entity.ID) (*entity.Variant, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.variants[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (f *fakeRemote) UpsertCategory(_ context.Context, in ports.CategoryMutation) (*entity.Category, error) {
	if err := f.enter("upsertCategory"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.ID
	if id.IsZero() {
		id = f.newID()
	}
	return &entity.Category{ID: id, Name: in.Name, ParentID: in.ParentID}, nil
}

func (f *fakeRemote) DeleteCategory(_ context.Context, id entity.ID) error {
	if err := f.enter("deleteCategory"); err != nil {
		return err
	}
	f.mu.Lock()
	f.deletedID = id
	f.mu.Unlock()
	return nil
}

func (f *fakeRemote) UpsertAttribute(_ context.Context, in ports.AttributeMutation) (*entity.Attribute, error) {
	if err := f.enter("upsertAttribute"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.ID
	if id.IsZero() {
		id = f.newID()
	}
	return &entity.Attribute{ID: id, Name: in.Name}, nil
}

func (f *fakeRemote) UpsertAttributeValue(_ context.Context, in ports.AttributeValueMutation) (*entity.AttributeValue, error) {
	if err := f.enter("upsertAttributeValue"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := in.ID
	if id.IsZero() {
		id = f.newID()
	}
	return &entity.AttributeValue{ID: id, Value: in.Value}, nil
}

func (f *fakeRemote) UpsertVariant(_ context.Context, v entity.Variant) (*entity.Variant, error) {
	if err := f.enter("upsertVariant"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastVar = v
	if v.ID.IsZero() {
		v.ID = f.newID()
	}
	f.variants[v.ID] = v
	return &v, nil
}

// memCache implementa ports.AttributeCache.
type memCache struct {
	attrs       []entity.Attribute
	hit         bool
	getErr      error
	invalidated int
}

func (c *memCache) Get(context.Context) ([]entity.Attribute, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.attrs, c.hit, nil
}

func (c *memCache) Set(_ context.Context, attrs []entity.Attribute) error {
	c.attrs, c.hit = attrs, true
	return nil
}

func (c *memCache) Invalidate(context.Context) error {
	c.attrs, c.hit = nil, false
	c.invalidated++
	return nil
}

func remoteErr(msg string) error {
	return &domain.RemoteError{Op: "test", Status: 422, Message: msg}
}

func shoes() []entity.Category {
	return []entity.Category{
		{ID: "1", Name: "Shoes"},
		{ID: "2", Name: "Sneakers", ParentID: "1"},
		{ID: "3", Name: "Hats"},
	}
}

func colorSize() []entity.Attribute {
	return []entity.Attribute{
		{ID: "color", Name: "Color", Values: []entity.AttributeValue{{ID: "red", Value: "Red"}, {ID: "blue", Value: "Blue"}}},
		{ID: "size", Name: "Size", Values: []entity.AttributeValue{{ID: "s", Value: "S"}, {ID: "l", Value: "L"}}},
	}
}
