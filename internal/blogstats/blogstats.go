// Package blogstats computes summary statistics over a list of blogs.
//
// All functions are pure. Ties are resolved in favour of whichever blog or
// author appears first in the input, and an empty input yields the zero value
// of the result type, which renders as an empty JSON object.
package blogstats

import "github.com/sbilibin2017/bloglist/internal/models"

// Dummy always returns 1. It exists to smoke-test the test harness.
func Dummy(blogs []models.BlogRecord) int {
	return 1
}

// TotalLikes returns the sum of likes over all blogs.
func TotalLikes(blogs []models.BlogRecord) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, keeping only its title,
// author and likes.
func FavoriteBlog(blogs []models.BlogRecord) models.FavoriteBlog {
	if len(blogs) == 0 {
		return models.FavoriteBlog{}
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return models.FavoriteBlog{
		Title:  best.Title,
		Author: best.Author,
		Likes:  best.Likes,
	}
}

// MostBlogs returns the author with the largest number of blogs.
func MostBlogs(blogs []models.BlogRecord) models.AuthorBlogs {
	authors, totals := tally(blogs, func(models.BlogRecord) int { return 1 })
	if len(authors) == 0 {
		return models.AuthorBlogs{}
	}

	author, count := leader(authors, totals)
	return models.AuthorBlogs{Author: author, Blogs: count}
}

// MostLikes returns the author whose blogs have the largest total of likes.
func MostLikes(blogs []models.BlogRecord) models.AuthorLikes {
	authors, totals := tally(blogs, func(b models.BlogRecord) int { return b.Likes })
	if len(authors) == 0 {
		return models.AuthorLikes{}
	}

	author, likes := leader(authors, totals)
	return models.AuthorLikes{Author: author, Likes: likes}
}

// Summarize computes every statistic in one report.
func Summarize(blogs []models.BlogRecord) models.Report {
	return models.Report{
		TotalLikes:   TotalLikes(blogs),
		FavoriteBlog: FavoriteBlog(blogs),
		MostBlogs:    MostBlogs(blogs),
		MostLikes:    MostLikes(blogs),
	}
}

// tally sums weight(b) per author. authors lists each author once, in order
// of first appearance.
func tally(blogs []models.BlogRecord, weight func(models.BlogRecord) int) (authors []string, totals map[string]int) {
	totals = make(map[string]int)
	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			authors = append(authors, b.Author)
		}
		totals[b.Author] += weight(b)
	}
	return authors, totals
}

// leader picks the author with the highest total; the earliest author wins ties.
func leader(authors []string, totals map[string]int) (string, int) {
	best := authors[0]
	for _, a := range authors[1:] {
		if totals[a] > totals[best] {
			best = a
		}
	}
	return best, totals[best]
}
