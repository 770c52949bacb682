package models

// Blog event types.
const (
	BlogCreated = "blog.created"
	BlogUpdated = "blog.updated"
	BlogDeleted = "blog.deleted"
)

// BlogEvent describes a change to a blog, published after the change is stored.
type BlogEvent struct {
	EventID   string `json:"event_id"`       // EventID is a unique identifier for the event.
	Type      string `json:"type"`           // Type is one of BlogCreated, BlogUpdated, BlogDeleted.
	BlogID    string `json:"blog_id"`        // BlogID is the identifier of the affected blog.
	Timestamp int64  `json:"timestamp"`      // Timestamp is the Unix time (in seconds) of the change.
	Blog      *Blog  `json:"blog,omitempty"` // Blog is the new state; nil for deletions.
}
