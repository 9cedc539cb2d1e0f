package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
)

type fakeRepo struct {
	items map[id.ID]*User
}

func newFakeRepo(items ...*User) *fakeRepo {
	r := &fakeRepo{items: make(map[id.ID]*User)}
	for _, u := range items {
		r.items[u.ID] = u
	}
	return r
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, userID id.ID) (*User, error) {
	if u, ok := r.items[userID]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("users", userID.String())
}

func (r *fakeRepo) Create(ctx context.Context, u *User) error {
	r.items[u.ID] = u
	return nil
}

func (r *fakeRepo) Update(ctx context.Context, u *User) error {
	r.items[u.ID] = u
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, userID id.ID) error {
	delete(r.items, userID)
	return nil
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperror.NewNotFound("users", email)
}

type passthroughTxManager struct{}

func (passthroughTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeHasher marks hashes with a prefix so tests can spot plaintext storage.
type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Compare(hash, plaintext string) error {
	if hash != "hashed:"+plaintext {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokenIssuer struct {
	issued int
}

func (f *fakeTokenIssuer) IssueToken(profile Profile) (string, error) {
	f.issued++
	return "token-for-" + profile.Email, nil
}

func newTestService(repo *fakeRepo) (*Service, *fakeTokenIssuer) {
	tokens := &fakeTokenIssuer{}
	return NewService(repo, passthroughTxManager{}, fakeHasher{}, tokens), tokens
}

func registeredUser(t *testing.T, svc *Service) *User {
	t.Helper()
	u, err := svc.Register(context.Background(), New("Sam", "sam@example.com", "5550001111"), "correct-horse")
	require.NoError(t, err)
	return u
}

func TestService_Register_StoresHashNotPlaintext(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)

	u := registeredUser(t, svc)

	assert.False(t, id.IsNil(u.ID))
	assert.Equal(t, "hashed:correct-horse", u.PasswordHash)
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.Register(context.Background(), New("Sam", "sam@example.com", ""), "short")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	registeredUser(t, svc)

	_, err := svc.Register(context.Background(), New("Other", "sam@example.com", ""), "another-pass")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestService_Authenticate_Success(t *testing.T) {
	repo := newFakeRepo()
	svc, tokens := newTestService(repo)
	registeredUser(t, svc)

	token, u, err := svc.Authenticate(context.Background(), "sam@example.com", "correct-horse")
	require.NoError(t, err)

	assert.NotEmpty(t, token)
	assert.Equal(t, "sam@example.com", u.Email)
	assert.Equal(t, 1, tokens.issued)
}

func TestService_Authenticate_FailureIsUniform(t *testing.T) {
	repo := newFakeRepo()
	svc, tokens := newTestService(repo)
	registeredUser(t, svc)

	_, _, wrongPassword := svc.Authenticate(context.Background(), "sam@example.com", "wrong")
	_, _, unknownEmail := svc.Authenticate(context.Background(), "nobody@example.com", "correct-horse")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)

	wpErr, ok := apperror.AsAppError(wrongPassword)
	require.True(t, ok)
	ueErr, ok := apperror.AsAppError(unknownEmail)
	require.True(t, ok)

	// Indistinguishable responses: same code, same status, same message.
	assert.Equal(t, wpErr.Code, ueErr.Code)
	assert.Equal(t, wpErr.HTTPStatus, ueErr.HTTPStatus)
	assert.Equal(t, wpErr.Message, ueErr.Message)
	assert.Equal(t, apperror.CodeInvalidCredentials, wpErr.Code)

	assert.Zero(t, tokens.issued)
}

// failingEmailRepo simulates the database being unreachable during login.
type failingEmailRepo struct {
	*fakeRepo
}

func (r *failingEmailRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	return nil, errors.New("get by email: connection refused")
}

func TestService_Authenticate_StorageFailureIsInternal(t *testing.T) {
	repo := &failingEmailRepo{fakeRepo: newFakeRepo()}
	tokens := &fakeTokenIssuer{}
	svc := NewService(repo, passthroughTxManager{}, fakeHasher{}, tokens)

	_, _, err := svc.Authenticate(context.Background(), "sam@example.com", "correct-horse")
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInternal, appErr.Code)
	assert.Zero(t, tokens.issued)
}

func TestUser_ProfileOmitsPasswordHash(t *testing.T) {
	u := New("Sam", "sam@example.com", "5550001111")
	u.PasswordHash = "hashed:secret"
	u.EnsureID()

	p := u.Profile()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Email, p.Email)
}

func TestUser_Validate(t *testing.T) {
	assert.Error(t, New("Sam", "", "").Validate(context.Background()))
	assert.Error(t, New("Sam", "not-an-email", "").Validate(context.Background()))
	assert.NoError(t, New("Sam", "sam@example.com", "").Validate(context.Background()))
}
