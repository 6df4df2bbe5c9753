package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautica/internal/core/apperror"
	"nautica/internal/core/clock"
)

type memUserRepo struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]*User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{rows: make(map[int64]*User)}
}

func (m *memUserRepo) Insert(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	u.ID = m.seq
	u.CreatedAt = time.Now()
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *memUserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.rows[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, apperror.NewNotFound("user", id)
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.rows {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("user", email)
}

func (m *memUserRepo) List(ctx context.Context) ([]*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*User, 0, len(m.rows))
	for _, u := range m.rows {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memUserRepo) Update(ctx context.Context, u *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[u.ID]; !ok {
		return apperror.NewNotFound("user", u.ID)
	}
	cp := *u
	m.rows[u.ID] = &cp
	return nil
}

func (m *memUserRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return apperror.NewNotFound("user", id)
	}
	delete(m.rows, id)
	return nil
}

func newAuthService(clk clock.Clock) (*Service, *memUserRepo) {
	repo := newMemUserRepo()
	issuer := NewTokenIssuer("test-secret", time.Hour, clk)
	return NewService(repo, issuer), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthService(nil)

	session, err := svc.Register(context.Background(), &User{
		Email:     "Ana@Example.com",
		FirstName: "Ana",
		LastName:  "Lopez",
	}, "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, RoleCustomer, session.User.Role)
	// Email normalized on registration.
	assert.Equal(t, "ana@example.com", session.User.Email)

	login, err := svc.Login(context.Background(), "ana@example.com", "s3cret-pass")
	require.NoError(t, err)

	claims, err := svc.Verify(login.Token)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)
	assert.Equal(t, RoleCustomer, claims.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(nil)

	u := &User{Email: "ana@example.com", FirstName: "Ana"}
	_, err := svc.Register(context.Background(), u, "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &User{Email: "ana@example.com", FirstName: "Ana"}, "s3cret-pass")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, repo := newAuthService(nil)

	_, err := svc.Register(context.Background(), &User{Email: "ana@example.com", FirstName: "Ana"}, "short")
	require.Error(t, err)
	users, _ := repo.List(context.Background())
	assert.Empty(t, users)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, _ := newAuthService(nil)

	_, err := svc.Register(context.Background(), &User{Email: "ana@example.com", FirstName: "Ana"}, "s3cret-pass")
	require.NoError(t, err)

	_, errWrong := svc.Login(context.Background(), "ana@example.com", "bad-pass")
	_, errUnknown := svc.Login(context.Background(), "ghost@example.com", "whatever")

	for _, err := range []error{errWrong, errUnknown} {
		require.Error(t, err)
		appErr, ok := apperror.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
		assert.Equal(t, "invalid credentials", appErr.Message)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	issued := clock.Fixed{T: time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)}
	svc, _ := newAuthService(issued)

	session, err := svc.Register(context.Background(), &User{Email: "ana@example.com", FirstName: "Ana"}, "s3cret-pass")
	require.NoError(t, err)

	// Same token checked two hours later against a one-hour TTL.
	later := NewTokenIssuer("test-secret", time.Hour, clock.Fixed{T: issued.T.Add(2 * time.Hour)})
	_, err = later.Verify(session.Token)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestUpdateRole(t *testing.T) {
	svc, _ := newAuthService(nil)

	session, err := svc.Register(context.Background(), &User{Email: "ana@example.com", FirstName: "Ana"}, "s3cret-pass")
	require.NoError(t, err)

	u, err := svc.UpdateRole(context.Background(), session.User.ID, RoleManager)
	require.NoError(t, err)
	assert.Equal(t, RoleManager, u.Role)

	_, err = svc.UpdateRole(context.Background(), session.User.ID, "superuser")
	require.Error(t, err)
}
