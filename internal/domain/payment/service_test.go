package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
)

type fakeRepo struct {
	items map[id.ID]*Payment

	deleteCalls int
}

func newFakeRepo(items ...*Payment) *fakeRepo {
	r := &fakeRepo{items: make(map[id.ID]*Payment)}
	for _, p := range items {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*Payment, error) {
	out := make([]*Payment, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, paymentID id.ID) (*Payment, error) {
	if p, ok := r.items[paymentID]; ok {
		return p, nil
	}
	return nil, apperror.NewNotFound("payments", paymentID.String())
}

func (r *fakeRepo) Create(ctx context.Context, p *Payment) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, p *Payment) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, paymentID id.ID) error {
	r.deleteCalls++
	delete(r.items, paymentID)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func storedPayment(name string) *Payment {
	p := New(name, "payer@example.com", "5551234567", "123456789")
	p.Status = StatusPending
	p.EnsureID()
	return p
}

func TestService_Update_PartialLeavesIdentityFields(t *testing.T) {
	p := storedPayment("Payment 1")
	svc := NewService(newFakeRepo(p), passthroughTxManager{})

	updated, err := svc.Update(context.Background(), p.ID, UpdateParams{
		Status: strPtr(StatusPaid),
		Reason: strPtr("Completed"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Payment 1", updated.Name)
	assert.Equal(t, "payer@example.com", updated.Email)
	assert.Equal(t, StatusPaid, updated.Status)
	assert.Equal(t, "Completed", updated.Reason)
}

func TestService_Update_NilFieldsKeepStoredValues(t *testing.T) {
	p := storedPayment("Payment 2")
	p.Reason = "Initial"
	svc := NewService(newFakeRepo(p), passthroughTxManager{})

	updated, err := svc.Update(context.Background(), p.ID, UpdateParams{
		Status: strPtr(StatusPaid),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPaid, updated.Status)
	assert.Equal(t, "Initial", updated.Reason)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), passthroughTxManager{})

	_, err := svc.Update(context.Background(), id.New(), UpdateParams{Status: strPtr(StatusPaid)})
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTxManager{})

	p := New("Payee", "payee@example.com", "0123456789", "12345678901234")
	created, err := svc.Create(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, id.IsNil(created.ID))
	assert.Len(t, repo.items, 1)
}

func TestService_Delete_AbsentNeverInvokesRepoDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTxManager{})

	err := svc.Delete(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, repo.deleteCalls)
}

func TestPayment_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Payment)
		wantErr bool
	}{
		{"valid", func(p *Payment) {}, false},
		{"missing name", func(p *Payment) { p.Name = "" }, true},
		{"malformed email", func(p *Payment) { p.Email = "not-an-email" }, true},
		{"short phone", func(p *Payment) { p.Phone = "12345" }, true},
		{"phone with letters", func(p *Payment) { p.Phone = "12345abcde" }, true},
		{"bank account too short", func(p *Payment) { p.BankAccount = "12345678" }, true},
		{"bank account too long", func(p *Payment) { p.BankAccount = "123456789012345" }, true},
		{"bank account upper bound", func(p *Payment) { p.BankAccount = "12345678901234" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New("Payer", "payer@example.com", "5551234567", "123456789")
			tt.mutate(p)

			err := p.Validate(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
