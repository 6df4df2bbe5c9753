package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"nautica/internal/core/apperror"
	"nautica/pkg/logger"
)

// Session is the result of a successful login or registration.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// Service handles registration, authentication and user management.
type Service struct {
	repo   Repository
	tokens *TokenIssuer
}

func NewService(repo Repository, tokens *TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates a new account and returns a logged-in session.
func (s *Service) Register(ctx context.Context, u *User, password string) (*Session, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if len(password) < 8 {
		return nil, apperror.NewValidation("password must be at least 8 characters").
			WithDetail("field", "password")
	}

	if existing, err := s.repo.GetByEmail(ctx, u.Email); err == nil && existing != nil {
		return nil, apperror.NewDuplicate("user", "email", u.Email)
	} else if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	u.PasswordHash = string(hash)

	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user registered", "user_id", u.ID, "role", u.Role)
	return &Session{User: u, Token: token}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error to avoid account probing.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "user logged in", "user_id", u.ID)
	return &Session{User: u, Token: token}, nil
}

// Verify resolves a bearer token to its claims.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	return s.tokens.Verify(tokenString)
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// UpdateRole changes a user's role.
func (s *Service) UpdateRole(ctx context.Context, id int64, role string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Role = role
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
