package models

import "encoding/json"

// emptyObject is how a summary over no blogs is rendered.
var emptyObject = []byte("{}")

// FavoriteBlog is the most liked blog with its identifier, revision and url stripped.
// swagger:model FavoriteBlog
type FavoriteBlog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// MarshalJSON renders the zero value as an empty object.
func (f FavoriteBlog) MarshalJSON() ([]byte, error) {
	if f == (FavoriteBlog{}) {
		return emptyObject, nil
	}
	type plain FavoriteBlog
	return json.Marshal(plain(f))
}

// AuthorBlogs is the author with the most blogs.
// swagger:model AuthorBlogs
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// MarshalJSON renders the zero value as an empty object.
func (a AuthorBlogs) MarshalJSON() ([]byte, error) {
	if a == (AuthorBlogs{}) {
		return emptyObject, nil
	}
	type plain AuthorBlogs
	return json.Marshal(plain(a))
}

// AuthorLikes is the author whose blogs collected the most likes.
// swagger:model AuthorLikes
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// MarshalJSON renders the zero value as an empty object.
func (a AuthorLikes) MarshalJSON() ([]byte, error) {
	if a == (AuthorLikes{}) {
		return emptyObject, nil
	}
	type plain AuthorLikes
	return json.Marshal(plain(a))
}

// Report bundles every statistic computed over the stored blogs.
// swagger:model Report
type Report struct {
	TotalLikes   int          `json:"totalLikes"`
	FavoriteBlog FavoriteBlog `json:"favoriteBlog"`
	MostBlogs    AuthorBlogs  `json:"mostBlogs"`
	MostLikes    AuthorLikes  `json:"mostLikes"`
}
