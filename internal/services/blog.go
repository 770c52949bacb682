package services

//go:generate mockgen -source=blog.go -destination=mock_blog.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/bloglist/internal/blogstats"
	"github.com/sbilibin2017/bloglist/internal/logger"
	"github.com/sbilibin2017/bloglist/internal/models"
	"github.com/segmentio/kafka-go"
)

// BlogReader defines read operations for blogs.
type BlogReader interface {
	FindAll(ctx context.Context) ([]models.BlogRecord, error) // Returns every stored blog
}

// BlogWriter defines write operations for blogs.
//
// FindByIDAndRemove and FindByIDAndUpdate report models.ErrInvalidID for an
// identifier the store cannot parse and models.ErrNotFound when nothing matched.
type BlogWriter interface {
	Create(ctx context.Context, blog models.BlogRecord) (models.BlogRecord, error)
	FindByIDAndRemove(ctx context.Context, id string) error
	FindByIDAndUpdate(ctx context.Context, id string, in models.BlogInput) (models.BlogRecord, error)
}

// StatsCache caches the aggregated blog report. Get reports models.ErrNotFound on a miss.
type StatsCache interface {
	Get(ctx context.Context) (models.Report, error)
	Set(ctx context.Context, report models.Report) error
	Invalidate(ctx context.Context) error
}

// EventWriter defines a Kafka writer abstraction.
type EventWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AfterCommitFunc defers fn until the write that ctx belongs to is committed.
type AfterCommitFunc func(ctx context.Context, fn func(ctx context.Context))

// BlogServiceOption configures optional BlogService behaviour.
type BlogServiceOption func(*BlogService)

// WithAfterCommit makes cache invalidation and event publishing wait for the
// surrounding transaction to commit.
func WithAfterCommit(afterCommit AfterCommitFunc) BlogServiceOption {
	return func(s *BlogService) {
		s.afterCommit = afterCommit
	}
}

// BlogService validates blog requests and applies them to the store.
type BlogService struct {
	reader      BlogReader
	writer      BlogWriter
	cache       StatsCache
	events      EventWriter
	afterCommit AfterCommitFunc
}

// NewBlogService creates a new BlogService. cache and events may be nil.
func NewBlogService(
	reader BlogReader,
	writer BlogWriter,
	cache StatsCache,
	events EventWriter,
	opts ...BlogServiceOption,
) *BlogService {
	s := &BlogService{
		reader: reader,
		writer: writer,
		cache:  cache,
		events: events,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every stored blog in its public form.
func (s *BlogService) List(ctx context.Context) ([]models.Blog, error) {
	records, err := s.reader.FindAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list blogs", "error", err)
		return nil, err
	}
	return models.FormatBlogs(records), nil
}

// Create stores a new blog. Title and url are required; likes defaults to 0.
func (s *BlogService) Create(ctx context.Context, in models.BlogInput) (models.Blog, error) {
	if in.Title == nil || in.URL == nil {
		return models.Blog{}, ErrTitleOrURLMissing
	}
	if in.Likes != nil && *in.Likes < 0 {
		return models.Blog{}, ErrNegativeLikes
	}

	record := models.BlogRecord{
		Title: *in.Title,
		URL:   *in.URL,
	}
	if in.Author != nil {
		record.Author = *in.Author
	}
	if in.Likes != nil {
		record.Likes = *in.Likes
	}

	saved, err := s.writer.Create(ctx, record)
	if err != nil {
		logger.Log.Errorw("failed to save blog", "title", record.Title, "error", err)
		return models.Blog{}, err
	}

	blog := models.FormatBlog(saved)
	s.written(ctx, models.BlogCreated, blog.ID, &blog)

	return blog, nil
}

// Remove deletes the blog with the given id. Removing a missing blog succeeds.
func (s *BlogService) Remove(ctx context.Context, id string) error {
	err := s.writer.FindByIDAndRemove(ctx, id)
	switch {
	case errors.Is(err, models.ErrNotFound):
		return nil
	case errors.Is(err, models.ErrInvalidID):
		logger.Log.Errorw("failed to remove blog", "id", id, "error", err)
		return ErrMalformedID
	case err != nil:
		logger.Log.Errorw("failed to remove blog", "id", id, "error", err)
		return err
	}

	s.written(ctx, models.BlogDeleted, id, nil)

	return nil
}

// Update replaces title, author, url and likes of the blog with the given id.
// Fields absent from in are cleared, not preserved.
func (s *BlogService) Update(ctx context.Context, id string, in models.BlogInput) (models.Blog, error) {
	if in.Likes != nil && *in.Likes < 0 {
		return models.Blog{}, ErrNegativeLikes
	}

	updated, err := s.writer.FindByIDAndUpdate(ctx, id, in)
	if err != nil {
		logger.Log.Errorw("failed to update blog", "id", id, "error", err)
		if errors.Is(err, models.ErrInvalidID) || errors.Is(err, models.ErrNotFound) {
			return models.Blog{}, ErrMalformedID
		}
		return models.Blog{}, err
	}

	blog := models.FormatBlog(updated)
	s.written(ctx, models.BlogUpdated, blog.ID, &blog)

	return blog, nil
}

// Stats returns the aggregated report over all blogs, served from cache when possible.
func (s *BlogService) Stats(ctx context.Context) (models.Report, error) {
	if s.cache != nil {
		report, err := s.cache.Get(ctx)
		if err == nil {
			return report, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Errorw("failed to read cached stats", "error", err)
		}
	}

	records, err := s.reader.FindAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to load blogs for stats", "error", err)
		return models.Report{}, err
	}

	report := blogstats.Summarize(records)

	if s.cache != nil {
		if err := s.cache.Set(ctx, report); err != nil {
			logger.Log.Errorw("failed to cache stats", "error", err)
		}
	}

	return report, nil
}

// written runs the side effects of a successful write once it is durable.
func (s *BlogService) written(ctx context.Context, eventType, blogID string, blog *models.Blog) {
	effects := func(ctx context.Context) {
		s.invalidateStats(ctx)
		s.publishEvent(ctx, eventType, blogID, blog)
	}
	if s.afterCommit == nil {
		effects(ctx)
		return
	}
	s.afterCommit(ctx, effects)
}

// invalidateStats drops the cached report after a write.
func (s *BlogService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("failed to invalidate cached stats", "error", err)
	}
}

// publishEvent publishes a blog event to Kafka.
func (s *BlogService) publishEvent(ctx context.Context, eventType, blogID string, blog *models.Blog) {
	if s.events == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", eventType, "blog_id", blogID)
		return
	}

	event := models.BlogEvent{
		EventID:   uuid.NewString(),
		Type:      eventType,
		BlogID:    blogID,
		Timestamp: time.Now().Unix(),
		Blog:      blog,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal blog event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(blogID),
		Value: data,
	}

	if err := s.events.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish blog event to Kafka", "event_id", event.EventID, "type", eventType, "error", err)
	} else {
		logger.Log.Infow("Blog event published to Kafka", "event_id", event.EventID, "type", eventType, "blog_id", blogID)
	}
}
