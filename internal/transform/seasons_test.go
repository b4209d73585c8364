package transform_test

import (
	"testing"

	"kinonote/internal/kinopoisk"
	"kinonote/internal/transform"
)

func TestAggregateSeasons(t *testing.T) {
	cases := []struct {
		name     string
		episodes []int
		want     transform.SeasonStats
	}{
		{"absent", nil, transform.SeasonStats{}},
		{"empty", []int{}, transform.SeasonStats{}},
		{"even split", []int{10, 10}, transform.SeasonStats{Count: 2, AverageEpisodes: 10}},
		{"uneven split rounds up", []int{10, 10, 11}, transform.SeasonStats{Count: 3, AverageEpisodes: 11}},
		{"single season", []int{8}, transform.SeasonStats{Count: 1, AverageEpisodes: 8}},
		{"zero episode counts", []int{0, 0}, transform.SeasonStats{Count: 2, AverageEpisodes: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seasons []kinopoisk.SeasonInfo
			for i, count := range tc.episodes {
				seasons = append(seasons, kinopoisk.SeasonInfo{Number: i + 1, EpisodesCount: count})
			}
			got := transform.AggregateSeasons(seasons)
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
