package model

import (
	"strings"
)

type Book struct {
	ID            string  `json:"id" db:"id"`
	Title         string  `json:"title" db:"title"`
	Author        string  `json:"author" db:"author"`
	Description   string  `json:"description" db:"description"`
	CoverImage    string  `json:"coverImage,omitempty" db:"cover_image"`
	PublishedDate string  `json:"publishedDate" db:"published_date"`
	Genre         string  `json:"genre" db:"genre"`
	PageCount     int     `json:"pageCount" db:"page_count"`
	ISBN          string  `json:"isbn" db:"isbn"`
	AverageRating float64 `json:"averageRating" db:"average_rating"`
	RatingsCount  int     `json:"ratingsCount" db:"ratings_count"`
}

type BookFilter struct {
	Query string `query:"query"`
	Genre string `query:"genre"`
}

// Matches reports whether b passes the filter. Query is a case-insensitive
// substring of title or author.
func (f BookFilter) Matches(b Book) bool {
	if f.Genre != "" && NormalizeGenre(f.Genre) != NormalizeGenre(b.Genre) {
		return false
	}
	if f.Query == "" {
		return true
	}
	q := strings.ToLower(strings.TrimSpace(f.Query))
	return strings.Contains(strings.ToLower(b.Title), q) ||
		strings.Contains(strings.ToLower(b.Author), q)
}

// NormalizeGenre folds case and treats '-' as a space, so "science-fiction"
// and "Science Fiction" are the same genre.
func NormalizeGenre(genre string) string {
	return strings.ToLower(strings.TrimSpace(strings.ReplaceAll(genre, "-", " ")))
}

type RateBookRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}
