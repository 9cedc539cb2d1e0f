package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insural/internal/core/apperror"
	"insural/internal/core/id"
	"insural/internal/domain/user"
	"insural/internal/infrastructure/http/v1/middleware"
)

type fakeUserRepo struct {
	byEmail map[string]*user.User
}

func (r *fakeUserRepo) GetAll(ctx context.Context) ([]*user.User, error) { return nil, nil }

func (r *fakeUserRepo) GetByID(ctx context.Context, userID id.ID) (*user.User, error) {
	return nil, apperror.NewNotFound("users", userID.String())
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) Delete(ctx context.Context, userID id.ID) error { return nil }

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperror.NewNotFound("users", email)
}

type noTxManager struct{}

func (noTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) { return "h:" + plaintext, nil }

func (plainHasher) Compare(hash, plaintext string) error {
	if hash != "h:"+plaintext {
		return errors.New("mismatch")
	}
	return nil
}

type staticTokenIssuer struct{}

func (staticTokenIssuer) IssueToken(profile user.Profile) (string, error) {
	return "signed-token", nil
}

func newLoginRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := &fakeUserRepo{byEmail: make(map[string]*user.User)}
	account := user.New("Sam", "sam@example.com", "")
	account.PasswordHash = "h:correct-horse"
	account.EnsureID()
	repo.byEmail[account.Email] = account

	svc := user.NewService(repo, noTxManager{}, plainHasher{}, staticTokenIssuer{})
	h := NewUserHandler(NewBaseHandler(), svc)

	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/user", h.Login)
	return router
}

func login(router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	q := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodGet, "/user?"+q.Encode(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Login(t *testing.T) {
	router := newLoginRouter()

	w := login(router, "sam@example.com", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "signed-token", body["token"])
}

func TestUserHandler_Login_FailureIsStructured404(t *testing.T) {
	router := newLoginRouter()

	wrongPassword := login(router, "sam@example.com", "wrong")
	unknownEmail := login(router, "nobody@example.com", "correct-horse")

	// Unlike plain lookups, the failed login answers 404 with a body, and
	// both failure modes answer identically.
	for _, w := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail} {
		require.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, apperror.CodeInvalidCredentials, body["code"])
	}
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestUserHandler_Login_MissingParams(t *testing.T) {
	router := newLoginRouter()

	w := login(router, "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
