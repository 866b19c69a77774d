// Package rating holds the star arithmetic shared by the catalog and the shelf.
package rating

const (
	Min = 1
	Max = 5
)

// Valid reports whether v is a star value.
func Valid(v int) bool {
	return v >= Min && v <= Max
}

// RunningAverage folds one more rating into a stored average. Every call
// counts as a new independent rating.
func RunningAverage(avg float64, count, newRating int) (float64, int) {
	if count < 0 {
		count = 0
	}
	return (avg*float64(count) + float64(newRating)) / float64(count+1), count + 1
}
