package transform

// FlatRecord maps field names to either a scalar (int64, int, bool) or an
// ordered string slice. It is constructed fresh per transformation and
// owned by the caller.
type FlatRecord map[string]any

// Field names available to templates.
const (
	FieldID                       = "id"
	FieldName                     = "name"
	FieldAlternativeName          = "alternativeName"
	FieldAlternativeNames         = "alternativeNames"
	FieldType                     = "type"
	FieldIsSeries                 = "isSeries"
	FieldYear                     = "year"
	FieldDescription              = "description"
	FieldShortDescription         = "shortDescription"
	FieldSlogan                   = "slogan"
	FieldMovieLength              = "movieLength"
	FieldSeasonsCount             = "seasonsCount"
	FieldAverageEpisodesPerSeason = "averageEpisodesPerSeason"
	FieldRatingKp                 = "ratingKp"
	FieldRatingImdb               = "ratingImdb"
	FieldVotesKp                  = "votesKp"
	FieldVotesImdb                = "votesImdb"
	FieldGenres                   = "genres"
	FieldGenresLinks              = "genresLinks"
	FieldCountries                = "countries"
	FieldCountriesLinks           = "countriesLinks"
	FieldDirectors                = "directors"
	FieldDirectorsLinks           = "directorsLinks"
	FieldDirectorsPathLinks       = "directorsPathLinks"
	FieldDirectorsIDLinks         = "directorsIdLinks"
	FieldActors                   = "actors"
	FieldActorsLinks              = "actorsLinks"
	FieldActorsPathLinks          = "actorsPathLinks"
	FieldActorsIDLinks            = "actorsIdLinks"
	FieldWriters                  = "writers"
	FieldWritersLinks             = "writersLinks"
	FieldWritersPathLinks         = "writersPathLinks"
	FieldWritersIDLinks           = "writersIdLinks"
	FieldProducers                = "producers"
	FieldProducersLinks           = "producersLinks"
	FieldProducersPathLinks       = "producersPathLinks"
	FieldProducersIDLinks         = "producersIdLinks"
	FieldPremiereWorld            = "premiereWorld"
	FieldPremiereRussia           = "premiereRussia"
	FieldPremiereDigital          = "premiereDigital"
	FieldImdbID                   = "imdbId"
	FieldTmdbID                   = "tmdbId"
	FieldKpHDID                   = "kpHdId"
	FieldBudget                   = "budget"
	FieldFeesWorld                = "feesWorld"
	FieldFacts                    = "facts"
	FieldNetworks                 = "networks"
	FieldProductionCompanies      = "productionCompanies"
	FieldSimilarMovies            = "similarMovies"
	FieldSequelsAndPrequels       = "sequelsAndPrequels"
	FieldPosterURL                = "posterUrl"
	FieldCoverURL                 = "coverUrl"
	FieldLogoURL                  = "logoUrl"
	FieldPosterImage              = "posterImage"
	FieldCoverImage               = "coverImage"
	FieldLogoImage                = "logoImage"
	FieldPosterPath               = "posterPath"
	FieldCoverPath                = "coverPath"
	FieldLogoPath                 = "logoPath"
)

// Strings returns the field's slice value, or an empty slice when the
// field is absent or scalar.
func (r FlatRecord) Strings(field string) []string {
	if values, ok := r[field].([]string); ok {
		return values
	}
	return []string{}
}
