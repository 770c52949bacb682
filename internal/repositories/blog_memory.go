package repositories

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bloglist/internal/models"
)

// BlogMemoryRepository keeps blogs in process memory, in insertion order.
type BlogMemoryRepository struct {
	mu    sync.RWMutex
	order []string
	blogs map[string]models.BlogRecord
}

func NewBlogMemoryRepository() *BlogMemoryRepository {
	return &BlogMemoryRepository{blogs: make(map[string]models.BlogRecord)}
}

func (r *BlogMemoryRepository) FindAll(ctx context.Context) ([]models.BlogRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]models.BlogRecord, 0, len(r.order))
	for _, id := range r.order {
		records = append(records, r.blogs[id])
	}
	return records, nil
}

func (r *BlogMemoryRepository) Create(ctx context.Context, blog models.BlogRecord) (models.BlogRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	blog.ID = uuid.NewString()
	blog.Revision = 0
	r.blogs[blog.ID] = blog
	r.order = append(r.order, blog.ID)
	return blog, nil
}

func (r *BlogMemoryRepository) FindByIDAndRemove(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return models.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.blogs[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.blogs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *BlogMemoryRepository) FindByIDAndUpdate(ctx context.Context, id string, in models.BlogInput) (models.BlogRecord, error) {
	if _, err := uuid.Parse(id); err != nil {
		return models.BlogRecord{}, models.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.blogs[id]
	if !ok {
		return models.BlogRecord{}, models.ErrNotFound
	}

	updated := models.BlogRecord{ID: current.ID, Revision: current.Revision}
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Author != nil {
		updated.Author = *in.Author
	}
	if in.URL != nil {
		updated.URL = *in.URL
	}
	if in.Likes != nil {
		updated.Likes = *in.Likes
	}
	r.blogs[id] = updated
	return updated, nil
}
