package models

// BlogRecord is a blog as the persistence layer stores it. ID and Revision
// are owned by the store; empty strings stand for absent fields.
type BlogRecord struct {
	ID       string `json:"_id" db:"id"`
	Revision int    `json:"__v" db:"version"`
	Title    string `json:"title" db:"title"`
	Author   string `json:"author" db:"author"`
	URL      string `json:"url" db:"url"`
	Likes    int    `json:"likes" db:"likes"`
}

// Blog is the public representation of a blog returned over HTTP.
// swagger:model Blog
type Blog struct {
	// Identifier
	// example: 5a422a851b54a676234d17f7
	ID string `json:"id"`

	// Title
	// example: React patterns
	Title string `json:"title"`

	// Author
	// example: Michael Chan
	Author string `json:"author,omitempty"`

	// URL
	// example: https://reactpatterns.com/
	URL string `json:"url"`

	// Likes
	// example: 7
	Likes int `json:"likes"`
}

// BlogInput carries the fields of a create or update request.
// A nil field was absent from the request body.
type BlogInput struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

// FormatBlog projects a stored record onto its public view.
func FormatBlog(r BlogRecord) Blog {
	return Blog{
		ID:     r.ID,
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  r.Likes,
	}
}

// FormatBlogs applies FormatBlog to every record, preserving order.
func FormatBlogs(records []BlogRecord) []Blog {
	blogs := make([]Blog, 0, len(records))
	for _, r := range records {
		blogs = append(blogs, FormatBlog(r))
	}
	return blogs
}
