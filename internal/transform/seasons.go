package transform

import "kinonote/internal/kinopoisk"

// SeasonStats is the aggregate derived from a series' season list.
type SeasonStats struct {
	Count           int
	AverageEpisodes int
}

// AggregateSeasons computes the season count and the ceiling of episodes
// per season. An absent or empty list yields zeros. Ceiling rounding keeps
// the average at a full season's worth even with uneven splits.
func AggregateSeasons(seasons []kinopoisk.SeasonInfo) SeasonStats {
	if len(seasons) == 0 {
		return SeasonStats{}
	}
	total := 0
	for _, season := range seasons {
		if season.EpisodesCount > 0 {
			total += season.EpisodesCount
		}
	}
	count := len(seasons)
	return SeasonStats{
		Count:           count,
		AverageEpisodes: (total + count - 1) / count,
	}
}
