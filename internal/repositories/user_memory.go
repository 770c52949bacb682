package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bloglist/internal/models"
)

// UserMemoryRepository keeps users in process memory, in registration order.
type UserMemoryRepository struct {
	mu         sync.RWMutex
	users      []models.UserRecord
	byUsername map[string]int
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{byUsername: make(map[string]int)}
}

func (r *UserMemoryRepository) FindAll(ctx context.Context) ([]models.UserRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.UserRecord, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *UserMemoryRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}

func (r *UserMemoryRepository) Create(ctx context.Context, user models.UserRecord) (models.UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return models.UserRecord{}, models.ErrDuplicateUsername
	}

	user.ID = uuid.NewString()
	r.byUsername[user.Username] = len(r.users)
	r.users = append(r.users, user)
	return user, nil
}
