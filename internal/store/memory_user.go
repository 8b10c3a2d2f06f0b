package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/MKhiriev/ucn-accounts/models"
)

// memoryUserRepository keeps users in process memory. Uniqueness checks and
// writes happen under one lock, so duplicates are impossible even under
// concurrent registration.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
	order []string

	ids *utils.UUIDGenerator
	now func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		users: make(map[string]models.User),
		ids:   utils.NewUUIDGenerator(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.taken(user.Email, user.RUT, "") {
		return models.User{}, ErrUserAlreadyExists
	}

	now := m.now()
	user.ID = m.ids.Generate()
	user.CreatedAt = now
	user.UpdatedAt = now

	m.users[user.ID] = user
	m.order = append(m.order, user.ID)

	return user, nil
}

func (m *memoryUserRepository) FindUser(_ context.Context, filter models.UserFilter) (models.User, error) {
	if filter.IsEmpty() {
		return models.User{}, ErrEmptyFilter
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.order {
		user := m.users[id]
		if matches(user, filter) {
			return user, nil
		}
	}

	return models.User{}, ErrNoUserWasFound
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return user, nil
}

func (m *memoryUserRepository) SaveUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.users[user.ID]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}

	if m.taken(user.Email, "", user.ID) {
		return models.User{}, ErrUserAlreadyExists
	}

	stored.Email = user.Email
	stored.Name = user.Name
	stored.BirthDate = user.BirthDate
	stored.PasswordHash = user.PasswordHash
	stored.UpdatedAt = m.now()

	m.users[stored.ID] = stored
	return stored, nil
}

// taken reports whether another user than excludeID already owns email or
// rut. Empty values never clash. Callers hold m.mu.
func (m *memoryUserRepository) taken(email, rut, excludeID string) bool {
	for id, user := range m.users {
		if id == excludeID {
			continue
		}
		if (email != "" && user.Email == email) || (rut != "" && user.RUT == rut) {
			return true
		}
	}
	return false
}

func matches(user models.User, filter models.UserFilter) bool {
	if filter.Email != "" && user.Email != filter.Email {
		return false
	}
	if filter.RUT != "" && user.RUT != filter.RUT {
		return false
	}
	if filter.ExcludeID != "" && user.ID == filter.ExcludeID {
		return false
	}
	return true
}
