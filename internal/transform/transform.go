package transform

import (
	"math"
	"strconv"
	"strings"

	"kinonote/internal/format"
	"kinonote/internal/kinopoisk"
)

// Transform flattens one full record. It never fails: absent optional data
// turns into empty slices and zero scalars so the output record is always
// complete for template substitution.
func Transform(movie *kinopoisk.Movie, paths RolePaths) FlatRecord {
	if movie == nil {
		movie = &kinopoisk.Movie{}
	}

	seasons := AggregateSeasons(movie.SeasonsInfo)
	people := GroupPersons(movie.Persons, paths)

	genres := tagEntities(movie.Genres)
	countries := tagEntities(movie.Countries)

	record := FlatRecord{
		FieldID:       movie.ID,
		FieldIsSeries: movie.IsSeries,
		FieldYear:     movie.Year,

		FieldName:             single(movie.Name, format.ModeShort),
		FieldAlternativeName:  single(movie.AlternativeName, format.ModeShort),
		FieldAlternativeNames: format.Values(nameEntities(movie.Names), format.ModeShort, ""),
		FieldType:             single(TranslateType(movie.Type), format.ModeShort),
		FieldDescription:      single(movie.Description, format.ModeLongText),
		FieldShortDescription: single(movie.ShortDescription, format.ModeLongText),
		FieldSlogan:           single(movie.Slogan, format.ModeLongText),

		FieldMovieLength:              movie.MovieLength,
		FieldSeasonsCount:             seasons.Count,
		FieldAverageEpisodesPerSeason: seasons.AverageEpisodes,

		FieldRatingKp:   roundRating(movie.Rating.KP),
		FieldRatingImdb: roundRating(movie.Rating.IMDB),
		FieldVotesKp:    movie.Votes.KP,
		FieldVotesImdb:  movie.Votes.IMDB,

		FieldGenres:         format.Values(genres, format.ModeShort, ""),
		FieldGenresLinks:    format.Values(genres, format.ModeLink, ""),
		FieldCountries:      format.Values(countries, format.ModeShort, ""),
		FieldCountriesLinks: format.Values(countries, format.ModeLink, ""),

		FieldPremiereWorld:   single(NormalizeDate(movie.Premiere.World), format.ModeShort),
		FieldPremiereRussia:  single(NormalizeDate(movie.Premiere.Russia), format.ModeShort),
		FieldPremiereDigital: single(NormalizeDate(movie.Premiere.Digital), format.ModeShort),

		FieldImdbID: single(movie.ExternalID.IMDB, format.ModeShort),
		FieldTmdbID: movie.ExternalID.TMDB,
		FieldKpHDID: single(movie.ExternalID.KpHD, format.ModeShort),

		FieldBudget:    single(renderMoney(movie.Budget), format.ModeShort),
		FieldFeesWorld: single(renderMoney(movie.Fees.World), format.ModeShort),

		FieldFacts: CleanFacts(movie.Facts),

		FieldNetworks:            format.Values(networkEntities(movie.Networks.Items), format.ModeShort, ""),
		FieldProductionCompanies: format.Values(companyEntities(movie.ProductionCompanies), format.ModeShort, ""),
		FieldSimilarMovies:       format.Values(linkedEntities(movie.SimilarMovies), format.ModeLink, ""),
		FieldSequelsAndPrequels:  format.Values(linkedEntities(movie.SequelsAndPrequels), format.ModeLink, ""),

		FieldPosterURL: single(movie.Poster.URL, format.ModeURL),
		FieldCoverURL:  single(movie.Backdrop.URL, format.ModeURL),
		FieldLogoURL:   single(movie.Logo.URL, format.ModeURL),

		FieldPosterImage: ImageLink(movie.Poster.URL),
		FieldCoverImage:  ImageLink(movie.Backdrop.URL),
		FieldLogoImage:   ImageLink(movie.Logo.URL),

		// Populated by the image collaborator after download.
		FieldPosterPath: []string{},
		FieldCoverPath:  []string{},
		FieldLogoPath:   []string{},
	}

	setRoleGroup(record, people.Directors, FieldDirectors, FieldDirectorsLinks, FieldDirectorsPathLinks, FieldDirectorsIDLinks)
	setRoleGroup(record, people.Actors, FieldActors, FieldActorsLinks, FieldActorsPathLinks, FieldActorsIDLinks)
	setRoleGroup(record, people.Writers, FieldWriters, FieldWritersLinks, FieldWritersPathLinks, FieldWritersIDLinks)
	setRoleGroup(record, people.Producers, FieldProducers, FieldProducersLinks, FieldProducersPathLinks, FieldProducersIDLinks)

	return record
}

func setRoleGroup(record FlatRecord, group RoleGroup, names, links, pathLinks, idLinks string) {
	record[names] = group.Names
	record[links] = group.Links
	record[pathLinks] = group.PathLinks
	record[idLinks] = group.IDLinks
}

// single renders one optional value as a zero-or-one element slice.
func single(value string, mode format.Mode) []string {
	rendered := format.One(value, mode)
	if rendered == "" {
		return []string{}
	}
	return []string{rendered}
}

// roundRating rounds half-up to the nearest integer; absent scores stay 0.
func roundRating(score float64) int {
	if score <= 0 {
		return 0
	}
	return int(math.Floor(score + 0.5))
}

func renderMoney(money kinopoisk.Money) string {
	if money.Value <= 0 {
		return ""
	}
	return strings.TrimSpace(money.Currency) + strconv.FormatInt(money.Value, 10)
}

func tagEntities(tags []kinopoisk.Tag) []format.Entity {
	entities := make([]format.Entity, 0, len(tags))
	for _, tag := range tags {
		entities = append(entities, format.Entity{Name: tag.Name})
	}
	return entities
}

func nameEntities(names []kinopoisk.Name) []format.Entity {
	entities := make([]format.Entity, 0, len(names))
	for _, n := range names {
		entities = append(entities, format.Entity{Name: n.Name})
	}
	return entities
}

func linkedEntities(titles []kinopoisk.LinkedMovie) []format.Entity {
	entities := make([]format.Entity, 0, len(titles))
	for _, title := range titles {
		name := strings.TrimSpace(title.Name)
		if name == "" {
			name = strings.TrimSpace(title.AlternativeName)
		}
		entities = append(entities, format.Entity{Name: name, ID: title.ID})
	}
	return entities
}

func networkEntities(items []kinopoisk.NetworkItem) []format.Entity {
	entities := make([]format.Entity, 0, len(items))
	for _, item := range items {
		entities = append(entities, format.Entity{Name: item.Name})
	}
	return entities
}

func companyEntities(companies []kinopoisk.ProductionCompany) []format.Entity {
	entities := make([]format.Entity, 0, len(companies))
	for _, company := range companies {
		entities = append(entities, format.Entity{Name: company.Name})
	}
	return entities
}
