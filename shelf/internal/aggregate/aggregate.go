// Package aggregate derives per-book statistics from a set of ratings.
package aggregate

import (
	"slices"

	"github.com/Astemirdum/bookbuddy-service/pkg/rating"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
)

// BookAggregate averages the in-range ratings of bookID. When own is given
// and the snapshot has no rating with the same timestamp and value, own is
// counted as well.
func BookAggregate(ratings []model.Rating, bookID string, own *model.Rating) model.Aggregate {
	filtered := ForBook(ratings, bookID)
	if own != nil && own.BookID == bookID && rating.Valid(own.Rating) {
		found := slices.ContainsFunc(filtered, func(r model.Rating) bool {
			return r.Timestamp == own.Timestamp && r.Rating == own.Rating
		})
		if !found {
			filtered = append(filtered, *own)
		}
	}
	if len(filtered) == 0 {
		return model.Aggregate{}
	}

	sum := 0
	for _, r := range filtered {
		sum += r.Rating
	}
	return model.Aggregate{
		AverageRating: float64(sum) / float64(len(filtered)),
		RatingsCount:  len(filtered),
	}
}

func Distribution(ratings []model.Rating, bookID string) model.Distribution {
	var d model.Distribution
	for _, r := range ForBook(ratings, bookID) {
		d[r.Rating-rating.Min]++
	}
	return d
}

// Reviews returns the ratings of bookID, newest first.
func Reviews(ratings []model.Rating, bookID string) []model.Rating {
	out := ForBook(ratings, bookID)
	slices.SortStableFunc(out, func(a, b model.Rating) int {
		switch {
		case a.Timestamp > b.Timestamp:
			return -1
		case a.Timestamp < b.Timestamp:
			return 1
		}
		return 0
	})
	return out
}

// ForBook returns a copy of the in-range ratings of bookID.
func ForBook(ratings []model.Rating, bookID string) []model.Rating {
	out := make([]model.Rating, 0)
	for _, r := range ratings {
		if r.BookID == bookID && rating.Valid(r.Rating) {
			out = append(out, r)
		}
	}
	return out
}

// Mean is the average of every in-range rating, or 0.
func Mean(ratings []model.Rating) float64 {
	sum, n := 0, 0
	for _, r := range ratings {
		if rating.Valid(r.Rating) {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
