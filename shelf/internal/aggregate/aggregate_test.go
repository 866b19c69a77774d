package aggregate_test

import (
	"testing"

	"github.com/Astemirdum/bookbuddy-service/shelf/internal/aggregate"
	"github.com/Astemirdum/bookbuddy-service/shelf/internal/model"
	"github.com/stretchr/testify/require"
)

var ratings = []model.Rating{
	{BookID: "1", Rating: 5, Timestamp: 10},
	{BookID: "1", Rating: 3, Timestamp: 30},
	{BookID: "1", Rating: 7, Timestamp: 40},
	{BookID: "1", Rating: 0, Timestamp: 50},
	{BookID: "2", Rating: 1, Timestamp: 20},
	{BookID: "1", Rating: 4, Timestamp: 20},
}

func TestBookAggregate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		ratings []model.Rating
		bookID  string
		own     *model.Rating
		want    model.Aggregate
	}{
		{
			name:   "empty",
			bookID: "1",
			want:   model.Aggregate{},
		},
		{
			name:    "out of range ignored",
			ratings: ratings,
			bookID:  "1",
			want:    model.Aggregate{AverageRating: 4, RatingsCount: 3},
		},
		{
			name:    "own already present",
			ratings: ratings,
			bookID:  "1",
			own:     &model.Rating{BookID: "1", Rating: 3, Timestamp: 30},
			want:    model.Aggregate{AverageRating: 4, RatingsCount: 3},
		},
		{
			name:    "own missing from stale snapshot",
			ratings: ratings,
			bookID:  "1",
			own:     &model.Rating{BookID: "1", Rating: 2, Timestamp: 99},
			want:    model.Aggregate{AverageRating: 14.0 / 4, RatingsCount: 4},
		},
		{
			name:   "own only",
			bookID: "9",
			own:    &model.Rating{BookID: "9", Rating: 5, Timestamp: 1},
			want:   model.Aggregate{AverageRating: 5, RatingsCount: 1},
		},
		{
			name:    "own for another book",
			ratings: ratings,
			bookID:  "2",
			own:     &model.Rating{BookID: "1", Rating: 5, Timestamp: 99},
			want:    model.Aggregate{AverageRating: 1, RatingsCount: 1},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := aggregate.BookAggregate(tt.ratings, tt.bookID, tt.own)
			require.InDelta(t, tt.want.AverageRating, got.AverageRating, 1e-9)
			require.Equal(t, tt.want.RatingsCount, got.RatingsCount)
		})
	}
}

func TestDistribution(t *testing.T) {
	t.Parallel()
	d := aggregate.Distribution(ratings, "1")
	require.Equal(t, model.Distribution{0, 0, 1, 1, 1}, d)
	require.Equal(t, aggregate.BookAggregate(ratings, "1", nil).RatingsCount, d.Total())
	require.Equal(t, model.Distribution{}, aggregate.Distribution(nil, "1"))
}

func TestReviews_NewestFirst(t *testing.T) {
	t.Parallel()
	got := aggregate.Reviews(ratings, "1")
	require.Len(t, got, 3)
	require.Equal(t, []int64{30, 20, 10}, []int64{got[0].Timestamp, got[1].Timestamp, got[2].Timestamp})
}

func TestMean(t *testing.T) {
	t.Parallel()
	require.Zero(t, aggregate.Mean(nil))
	require.InDelta(t, 13.0/4, aggregate.Mean(ratings), 1e-9)
}
