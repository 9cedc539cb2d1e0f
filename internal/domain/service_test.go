package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insural/internal/core/apperror"
	"insural/internal/core/entity"
	"insural/internal/core/id"
)

// --- Fakes ---

type testEntity struct {
	entity.Base
	Name string `db:"name" json:"name"`
}

func (e *testEntity) Validate(ctx context.Context) error {
	if e.Name == "" {
		return apperror.NewValidation("name is required")
	}
	return nil
}

type fakeRepo struct {
	items map[id.ID]*testEntity

	createCalls int
	updateCalls int
	deleteCalls int

	getAllErr error
}

func newFakeRepo(items ...*testEntity) *fakeRepo {
	r := &fakeRepo{items: make(map[id.ID]*testEntity)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*testEntity, error) {
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	out := make([]*testEntity, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, entityID id.ID) (*testEntity, error) {
	if it, ok := r.items[entityID]; ok {
		return it, nil
	}
	return nil, apperror.NewNotFound("test_entity", entityID.String())
}

func (r *fakeRepo) Create(ctx context.Context, e *testEntity) error {
	r.createCalls++
	r.items[e.ID] = e
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, e *testEntity) error {
	r.updateCalls++
	if _, ok := r.items[e.ID]; !ok {
		return apperror.NewNotFound("test_entity", e.ID.String())
	}
	r.items[e.ID] = e
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, entityID id.ID) error {
	r.deleteCalls++
	if _, ok := r.items[entityID]; !ok {
		return apperror.NewNotFound("test_entity", entityID.String())
	}
	delete(r.items, entityID)
	return nil
}

// passthroughTxManager runs the function without a real transaction.
type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *fakeRepo) *CrudService[*testEntity] {
	return NewCrudService[*testEntity](repo, passthroughTxManager{}, "test_entity")
}

func newStoredEntity(name string) *testEntity {
	e := &testEntity{Base: entity.NewBase(), Name: name}
	e.EnsureID()
	return e
}

// --- Tests ---

func TestCrudService_GetAll(t *testing.T) {
	repo := newFakeRepo(newStoredEntity("a"), newStoredEntity("b"))
	svc := newTestService(repo)

	items, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestCrudService_GetAll_EmptyIsNotAnError(t *testing.T) {
	svc := newTestService(newFakeRepo())

	items, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCrudService_GetByID(t *testing.T) {
	stored := newStoredEntity("existing")
	svc := newTestService(newFakeRepo(stored))

	got, err := svc.GetByID(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, "existing", got.Name)
}

func TestCrudService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.GetByID(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestCrudService_Create_AssignsID(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	e := &testEntity{Base: entity.NewBase(), Name: "fresh"}
	require.True(t, id.IsNil(e.ID))

	created, err := svc.Create(context.Background(), e)
	require.NoError(t, err)

	assert.False(t, id.IsNil(created.ID))
	assert.Equal(t, 1, repo.createCalls)
}

func TestCrudService_Create_KeepsExistingID(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	e := newStoredEntity("prepared")
	want := e.ID

	created, err := svc.Create(context.Background(), e)
	require.NoError(t, err)
	assert.Equal(t, want, created.ID)
}

func TestCrudService_Create_InvalidEntity(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), &testEntity{Base: entity.NewBase()})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Zero(t, repo.createCalls)
}

func TestCrudService_Update(t *testing.T) {
	stored := newStoredEntity("before")
	repo := newFakeRepo(stored)
	svc := newTestService(repo)

	stored.Name = "after"
	updated, err := svc.Update(context.Background(), stored)
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, 1, repo.updateCalls)
	assert.False(t, updated.UpdatedAt.Before(updated.CreatedAt))
}

func TestCrudService_Delete(t *testing.T) {
	stored := newStoredEntity("doomed")
	repo := newFakeRepo(stored)
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), stored.ID))
	assert.Equal(t, 1, repo.deleteCalls)
	assert.Empty(t, repo.items)
}

func TestCrudService_Delete_AbsentNeverTouchesRepo(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)

	err := svc.Delete(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, repo.deleteCalls)
}

func TestCrudService_GetAll_WrapsRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.getAllErr = errors.New("connection refused")
	svc := newTestService(repo)

	_, err := svc.GetAll(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
}
