package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/bloglist/internal/models"
)

//go:generate mockgen -source=blogs.go -destination=mock_blogs.go -package=handlers

// BlogLister defines the interface that the service must implement.
type BlogLister interface {
	List(ctx context.Context) ([]models.Blog, error)
}

// BlogCreator defines the interface that the service must implement.
type BlogCreator interface {
	Create(ctx context.Context, in models.BlogInput) (models.Blog, error)
}

// BlogRemover defines the interface that the service must implement.
type BlogRemover interface {
	Remove(ctx context.Context, id string) error
}

// BlogUpdater defines the interface that the service must implement.
type BlogUpdater interface {
	Update(ctx context.Context, id string, in models.BlogInput) (models.Blog, error)
}

// StatsReporter defines the interface that the service must implement.
type StatsReporter interface {
	Stats(ctx context.Context) (models.Report, error)
}

// BlogRequest represents the JSON body for creating or replacing a blog
// swagger:model BlogRequest
type BlogRequest struct {
	// Title
	// required: true
	// example: React patterns
	Title *string `json:"title"`

	// Author
	// example: Michael Chan
	Author *string `json:"author"`

	// URL
	// required: true
	// example: https://reactpatterns.com/
	URL *string `json:"url"`

	// Likes, 0 when omitted on create
	// example: 7
	Likes *int `json:"likes"`
}

func (req BlogRequest) input() models.BlogInput {
	return models.BlogInput{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
}

// NewListBlogsHandler returns an HTTP handler listing every blog.
// @Summary List blogs
// @Description Returns all stored blogs in storage order
// @Tags blogs
// @Produce json
// @Success 200 {array} models.Blog "Blogs"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/blogs [get]
func NewListBlogsHandler(svc BlogLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, blogs)
	}
}

// NewCreateBlogHandler returns an HTTP handler creating a blog.
// @Summary Create a blog
// @Description Stores a new blog. Title and url are required, likes defaults to 0.
// @Tags blogs
// @Accept json
// @Produce json
// @Param blogRequest body handlers.BlogRequest true "Blog"
// @Success 201 {object} models.Blog "Created blog"
// @Failure 400 {object} handlers.ErrorResponse "title or url missing / malformed request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/blogs [post]
func NewCreateBlogHandler(svc BlogCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogRequest
		if !decodeBody(r, &req) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMalformedBody})
			return
		}

		blog, err := svc.Create(r.Context(), req.input())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, blog)
	}
}

// NewDeleteBlogHandler returns an HTTP handler removing a blog.
// @Summary Delete a blog
// @Description Removes the blog with the given id. Removing a missing blog succeeds.
// @Tags blogs
// @Param id path string true "Blog id"
// @Success 204 "Removed"
// @Failure 400 {object} handlers.ErrorResponse "malformatted id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/blogs/{id} [delete]
func NewDeleteBlogHandler(svc BlogRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Remove(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewUpdateBlogHandler returns an HTTP handler replacing a blog.
// @Summary Replace a blog
// @Description Overwrites title, author, url and likes. Omitted fields are cleared.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path string true "Blog id"
// @Param blogRequest body handlers.BlogRequest true "Blog"
// @Success 200 {object} models.Blog "Updated blog"
// @Failure 400 {object} handlers.ErrorResponse "malformatted id / malformed request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/blogs/{id} [put]
func NewUpdateBlogHandler(svc BlogUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BlogRequest
		if !decodeBody(r, &req) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msgMalformedBody})
			return
		}

		blog, err := svc.Update(r.Context(), chi.URLParam(r, "id"), req.input())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, blog)
	}
}

// NewBlogStatsHandler returns an HTTP handler reporting blog statistics.
// @Summary Blog statistics
// @Description Total likes, favorite blog, most prolific author and most liked author
// @Tags blogs
// @Produce json
// @Success 200 {object} models.Report "Statistics"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/blogs/stats [get]
func NewBlogStatsHandler(svc StatsReporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}
