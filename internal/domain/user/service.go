package user

import (
	"context"
	"fmt"

	"insural/internal/core/apperror"
	"insural/internal/core/tx"
	"insural/internal/domain"
	"insural/pkg/logger"
)

// Service provides account management and authentication.
type Service struct {
	*domain.CrudService[*User]
	repo   Repository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewService creates a new user service.
func NewService(repo Repository, txManager tx.Manager, hasher PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{
		CrudService: domain.NewCrudService[*User](repo, txManager, "user"),
		repo:        repo,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, u *User, password string) (*User, error) {
	if err := u.Validate(ctx); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, apperror.NewValidation("password must be at least 8 characters").
			WithDetail("field", "password")
	}

	if existing, err := s.repo.GetByEmail(ctx, u.Email); err == nil && existing != nil {
		return nil, apperror.NewDuplicate("user", "email", u.Email)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	created, err := s.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered",
		"user_id", created.ID,
		"email", created.Email)
	return created, nil
}

// Authenticate looks up the account by email, verifies the password through
// the hasher and issues a session token. Unknown email and wrong password
// produce the same failure so accounts cannot be enumerated.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", nil, apperror.NewInvalidCredentials()
		}
		return "", nil, apperror.NewInternal(fmt.Errorf("get user by email: %w", err))
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return "", nil, apperror.NewInvalidCredentials()
	}

	token, err := s.tokens.IssueToken(u.Profile())
	if err != nil {
		return "", nil, apperror.NewInternal(fmt.Errorf("issue token: %w", err))
	}

	logger.Info(ctx, "user logged in",
		"user_id", u.ID,
		"email", u.Email)
	return token, u, nil
}
