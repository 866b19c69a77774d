package rating_test

import (
	"testing"

	"github.com/Astemirdum/bookbuddy-service/pkg/rating"
	"github.com/stretchr/testify/require"
)

func TestRunningAverage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		avg       float64
		count     int
		newRating int
		wantAvg   float64
		wantCount int
	}{
		{name: "seeded book", avg: 4.0, count: 10, newRating: 5, wantAvg: 45.0 / 11, wantCount: 11},
		{name: "first rating", avg: 0, count: 0, newRating: 3, wantAvg: 3, wantCount: 1},
		{name: "same value keeps average", avg: 2, count: 4, newRating: 2, wantAvg: 2, wantCount: 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			avg, count := rating.RunningAverage(tt.avg, tt.count, tt.newRating)
			require.InDelta(t, tt.wantAvg, avg, 1e-9)
			require.Equal(t, tt.wantCount, count)
		})
	}
}

func TestValid(t *testing.T) {
	for v := -1; v <= 7; v++ {
		require.Equal(t, v >= 1 && v <= 5, rating.Valid(v), v)
	}
}
