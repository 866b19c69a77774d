package model

import (
	"slices"
)

// EnvelopeVersion is the only persisted layout so far.
const EnvelopeVersion = 1

type Book struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	CoverImage    string  `json:"coverImage,omitempty"`
	PublishedDate string  `json:"publishedDate"`
	Genre         string  `json:"genre"`
	PageCount     int     `json:"pageCount"`
	ISBN          string  `json:"isbn"`
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int     `json:"ratingsCount"`
}

type ReadingList struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	Books       []Book `json:"books"`
}

// Clone returns a deep copy that shares no backing array with l.
func (l ReadingList) Clone() ReadingList {
	l.Books = slices.Clone(l.Books)
	if l.Books == nil {
		l.Books = []Book{}
	}
	return l
}

func (l ReadingList) HasBook(bookID string) bool {
	return slices.ContainsFunc(l.Books, func(b Book) bool { return b.ID == bookID })
}

// ReadingListUpdate merges into an existing list. Nil fields are left alone.
type ReadingListUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Books       []Book  `json:"books,omitempty"`
}

// Apply returns l with the update merged in.
func (u ReadingListUpdate) Apply(l ReadingList) ReadingList {
	if u.Name != nil && *u.Name != "" {
		l.Name = *u.Name
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Books != nil {
		l.Books = dedupBooks(u.Books)
	}
	return l.Clone()
}

func dedupBooks(books []Book) []Book {
	seen := make(map[string]struct{}, len(books))
	out := make([]Book, 0, len(books))
	for _, b := range books {
		if _, ok := seen[b.ID]; ok {
			continue
		}
		seen[b.ID] = struct{}{}
		out = append(out, b)
	}
	return out
}

// Rating is one profile's judgement of one book. Timestamp is epoch millis.
type Rating struct {
	BookID    string `json:"bookId"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
	Timestamp int64  `json:"timestamp"`
}

type ReadingListsEnvelope struct {
	Version     int           `json:"version"`
	Lists       []ReadingList `json:"lists"`
	LastUpdated int64         `json:"lastUpdated"`
}

type RatingsEnvelope struct {
	Version     int      `json:"version"`
	Ratings     []Rating `json:"ratings"`
	LastUpdated int64    `json:"lastUpdated"`
}

type Aggregate struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int     `json:"ratingsCount"`
}

// Distribution counts ratings per star, index 0 is one star.
type Distribution [5]int

func (d Distribution) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}

type ReviewSummary struct {
	BookID       string       `json:"bookId"`
	Aggregate    Aggregate    `json:"aggregate"`
	Distribution Distribution `json:"distribution"`
	Reviews      []Rating     `json:"reviews"`
	Own          *Rating      `json:"own,omitempty"`
}

type RatedBook struct {
	Book   Book   `json:"book"`
	Rating Rating `json:"rating"`
}

// ProfileStats counts each saved book once, however many lists hold it.
type ProfileStats struct {
	ListsCreated      int            `json:"listsCreated"`
	RatingsGiven      int            `json:"ratingsGiven"`
	BooksSaved        int            `json:"booksSaved"`
	AverageRating     float64        `json:"averageRating"`
	GenreDistribution map[string]int `json:"genreDistribution"`
	PagesRead         int            `json:"pagesRead"`
}

type CreateReadingListRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type AddBookRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

type SaveRatingRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Review string `json:"review" validate:"max=5000"`
}

type SaveUserNameRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type UserName struct {
	Name string `json:"name"`
}

type TrashTicket struct {
	Token     string `json:"token"`
	ListID    string `json:"listId"`
	ExpiresAt int64  `json:"expiresAt"`
}
