package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
)

type fakeRepo struct {
	items map[id.ID]*Feedback

	updateCalls int
	deleteCalls int
}

func newFakeRepo(items ...*Feedback) *fakeRepo {
	r := &fakeRepo{items: make(map[id.ID]*Feedback)}
	for _, fb := range items {
		r.items[fb.ID] = fb
	}
	return r
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*Feedback, error) {
	out := make([]*Feedback, 0, len(r.items))
	for _, fb := range r.items {
		out = append(out, fb)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, feedbackID id.ID) (*Feedback, error) {
	if fb, ok := r.items[feedbackID]; ok {
		return fb, nil
	}
	return nil, apperror.NewNotFound("feedbacks", feedbackID.String())
}

func (r *fakeRepo) Create(ctx context.Context, fb *Feedback) error {
	r.items[fb.ID] = fb
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, fb *Feedback) error {
	r.updateCalls++
	r.items[fb.ID] = fb
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, feedbackID id.ID) error {
	r.deleteCalls++
	delete(r.items, feedbackID)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func storedFeedback() *Feedback {
	fb := New("Jordan", "jordan@example.com", "5550001111", "Great coverage options")
	fb.EnsureID()
	return fb
}

func TestService_MarkPurchased(t *testing.T) {
	fb := storedFeedback()
	require.False(t, fb.IsPurchase)

	repo := newFakeRepo(fb)
	svc := NewService(repo, passthroughTxManager{})

	updated, err := svc.MarkPurchased(context.Background(), fb.ID)
	require.NoError(t, err)

	assert.True(t, updated.IsPurchase)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestService_MarkPurchased_Idempotent(t *testing.T) {
	fb := storedFeedback()
	fb.IsPurchase = true
	svc := NewService(newFakeRepo(fb), passthroughTxManager{})

	updated, err := svc.MarkPurchased(context.Background(), fb.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPurchase)
}

func TestService_MarkPurchased_NotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, passthroughTxManager{})

	_, err := svc.MarkPurchased(context.Background(), id.New())
	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
	assert.Zero(t, repo.updateCalls)
}

func TestFeedback_Validate(t *testing.T) {
	fb := New("A", "a@example.com", "5550001111", "")
	assert.Error(t, fb.Validate(context.Background()), "empty content rejected")

	fb = New("A", "broken@", "5550001111", "text")
	assert.Error(t, fb.Validate(context.Background()), "malformed email rejected")

	fb = New("A", "a@example.com", "5550001111", "text")
	assert.NoError(t, fb.Validate(context.Background()))
}
