package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/postcraft/postcraft-api/internal/domain"
	"github.com/postcraft/postcraft-api/internal/store"
)

// MockUserStore implements store.UserStore in memory, keyed by user ID with
// email uniqueness enforced the way the real store's constraint would be.
// Construct with NewMockUserStore; the Fn fields override whole methods.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error

	byID map[uuid.UUID]*domain.User
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{byID: make(map[uuid.UUID]*domain.User)}
}

func (m *MockUserStore) lookupEmail(email string) *domain.User {
	for _, u := range m.byID {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	if m.lookupEmail(user.Email) != nil {
		return store.ErrEmailExists
	}
	m.byID[user.ID] = user
	return nil
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if u := m.lookupEmail(email); u != nil {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	if _, ok := m.byID[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	if other := m.lookupEmail(user.Email); other != nil && other.ID != user.ID {
		return store.ErrEmailExists
	}
	m.byID[user.ID] = user
	return nil
}

func (m *MockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if _, ok := m.byID[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.byID, id)
	return nil
}

// WithTx returns the mock itself; transactions are not simulated.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockLoginUserStore serves exactly one configured user by email, which is
// all the login handler needs. Every other lookup reports ErrUserNotFound.
type MockLoginUserStore struct {
	UserID         uuid.UUID
	UserEmail      string
	HashedPassword string

	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func NewLoginMockUserStore(userID uuid.UUID, email, hashedPassword string) *MockLoginUserStore {
	return &MockLoginUserStore{
		UserID:         userID,
		UserEmail:      email,
		HashedPassword: hashedPassword,
	}
}

func (m *MockLoginUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if email != m.UserEmail {
		return nil, store.ErrUserNotFound
	}
	return &domain.User{
		ID:             m.UserID,
		Email:          m.UserEmail,
		HashedPassword: m.HashedPassword,
	}, nil
}

func (m *MockLoginUserStore) Create(ctx context.Context, user *domain.User) error { return nil }

func (m *MockLoginUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, store.ErrUserNotFound
}

func (m *MockLoginUserStore) Update(ctx context.Context, user *domain.User) error { return nil }

func (m *MockLoginUserStore) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *MockLoginUserStore) WithTx(tx *sql.Tx) store.UserStore { return m }
