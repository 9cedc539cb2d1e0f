package purchase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
)

type fakeRepo struct {
	items   map[id.ID]*Purchase
	details []Details

	updateCalls int
}

func newFakeRepo(items ...*Purchase) *fakeRepo {
	r := &fakeRepo{items: make(map[id.ID]*Purchase)}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*Purchase, error) {
	out := make([]*Purchase, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, purchaseID id.ID) (*Purchase, error) {
	if p, ok := r.items[purchaseID]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("purchases", purchaseID.String())
}

func (r *fakeRepo) Create(ctx context.Context, p *Purchase) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Purchase) error {
	r.updateCalls++
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, purchaseID id.ID) error {
	delete(r.items, purchaseID)
	return nil
}

func (r *fakeRepo) GetByInsuranceAndUser(ctx context.Context, insuranceID, userID id.ID) (*Purchase, error) {
	for _, p := range r.items {
		if p.InsuranceID == insuranceID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("purchases", insuranceID.String()+"/"+userID.String())
}

func (r *fakeRepo) GetDetails(ctx context.Context) ([]Details, error) {
	return r.details, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func storedPurchase() *Purchase {
	p := New(id.New(), id.New())
	p.EnsureID()
	return p
}

func TestService_GetByInsuranceAndUser(t *testing.T) {
	p := storedPurchase()
	svc := NewService(newFakeRepo(p), passthroughTxManager{})

	got, err := svc.GetByInsuranceAndUser(context.Background(), p.InsuranceID, p.UserID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestService_GetByInsuranceAndUser_NotFound(t *testing.T) {
	p := storedPurchase()
	svc := NewService(newFakeRepo(p), passthroughTxManager{})

	// Same insurance, different user
	_, err := svc.GetByInsuranceAndUser(context.Background(), p.InsuranceID, id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_UpdateStatus(t *testing.T) {
	p := storedPurchase()
	repo := newFakeRepo(p)
	svc := NewService(repo, passthroughTxManager{})

	updated, err := svc.UpdateStatus(context.Background(), p.InsuranceID, p.UserID, StatusConfirmed)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, updated.Status)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestService_UpdateStatus_UnresolvedKeyWritesNothing(t *testing.T) {
	repo := newFakeRepo(storedPurchase())
	svc := NewService(repo, passthroughTxManager{})

	_, err := svc.UpdateStatus(context.Background(), id.New(), id.New(), StatusCancelled)
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, repo.updateCalls)
}

func TestService_GetDetails_EmptyIsNotAnError(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTxManager{})

	rows, err := svc.GetDetails(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestPurchase_Validate(t *testing.T) {
	p := New(id.Nil(), id.New())
	assert.Error(t, p.Validate(context.Background()))

	p = New(id.New(), id.Nil())
	assert.Error(t, p.Validate(context.Background()))

	p = New(id.New(), id.New())
	assert.NoError(t, p.Validate(context.Background()))
	assert.Equal(t, StatusPending, p.Status)
	assert.False(t, p.PurchaseDate.IsZero())
}
