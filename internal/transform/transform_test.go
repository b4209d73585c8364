package transform_test

import (
	"reflect"
	"testing"

	"kinonote/internal/kinopoisk"
	"kinonote/internal/transform"
)

func TestTransformEmptyRecordDefaults(t *testing.T) {
	record := transform.Transform(&kinopoisk.Movie{
		ID:        1,
		Name:      "Empty",
		Persons:   []kinopoisk.Person{},
		Genres:    []kinopoisk.Tag{},
		Countries: []kinopoisk.Tag{},
	}, transform.RolePaths{})

	arrayFields := []string{
		transform.FieldGenres,
		transform.FieldGenresLinks,
		transform.FieldCountries,
		transform.FieldCountriesLinks,
		transform.FieldDirectors,
		transform.FieldDirectorsLinks,
		transform.FieldDirectorsPathLinks,
		transform.FieldDirectorsIDLinks,
		transform.FieldActors,
		transform.FieldActorsLinks,
		transform.FieldActorsPathLinks,
		transform.FieldActorsIDLinks,
		transform.FieldWriters,
		transform.FieldProducers,
		transform.FieldFacts,
		transform.FieldPosterPath,
		transform.FieldCoverPath,
		transform.FieldLogoPath,
	}
	for _, field := range arrayFields {
		values, ok := record[field].([]string)
		if !ok {
			t.Fatalf("field %q: expected []string, got %T", field, record[field])
		}
		if len(values) != 0 {
			t.Fatalf("field %q: expected empty, got %v", field, values)
		}
	}

	if record[transform.FieldRatingKp] != 0 || record[transform.FieldRatingImdb] != 0 {
		t.Fatalf("expected zero ratings, got %v / %v",
			record[transform.FieldRatingKp], record[transform.FieldRatingImdb])
	}
	if record[transform.FieldSeasonsCount] != 0 || record[transform.FieldAverageEpisodesPerSeason] != 0 {
		t.Fatal("expected zero season aggregate")
	}
}

func TestTransformScalarFieldSanitizedToNothingStaysEmpty(t *testing.T) {
	record := transform.Transform(&kinopoisk.Movie{
		ID:     1,
		Name:   "::",
		Slogan: "   ",
	}, transform.RolePaths{})

	if got := record.Strings(transform.FieldName); len(got) != 0 {
		t.Fatalf("expected empty name slice, got %v", got)
	}
	if got := record.Strings(transform.FieldSlogan); len(got) != 0 {
		t.Fatalf("expected empty slogan slice, got %v", got)
	}
}

func TestTransformNilMovie(t *testing.T) {
	record := transform.Transform(nil, transform.RolePaths{})
	if record[transform.FieldID] != int64(0) {
		t.Fatalf("expected zero id, got %v", record[transform.FieldID])
	}
	if got := record.Strings(transform.FieldName); len(got) != 0 {
		t.Fatalf("expected empty name, got %v", got)
	}
}

func TestTransformFullRecord(t *testing.T) {
	movie := &kinopoisk.Movie{
		ID:               326,
		Name:             "Побег из Шоушенка",
		AlternativeName:  "The Shawshank Redemption",
		Type:             "movie",
		Year:             1994,
		IsSeries:         false,
		Description:      "Бухгалтер Энди Дюфрейн\nобвинён в убийстве.",
		ShortDescription: "Несправедливо осуждённый банкир.",
		MovieLength:      142,
		Rating:           kinopoisk.Rating{KP: 9.111, IMDB: 9.3},
		Votes:            kinopoisk.Votes{KP: 1000000, IMDB: 2500000},
		Genres:           []kinopoisk.Tag{{Name: "драма"}},
		Countries:        []kinopoisk.Tag{{Name: "США"}},
		Persons: []kinopoisk.Person{
			{ID: 23122, Name: "Фрэнк Дарабонт", EnProfession: "director"},
			{ID: 7987, Name: "Тим Роббинс", EnProfession: "actor"},
			{ID: 23122, Name: "Фрэнк Дарабонт", EnProfession: "writer"},
		},
		Poster:     kinopoisk.Image{URL: "https://image.example/326.jpg"},
		ExternalID: kinopoisk.ExternalID{IMDB: "tt0111161", TMDB: 278},
		Budget:     kinopoisk.Money{Value: 25000000, Currency: "$"},
		Fees:       kinopoisk.Fees{World: kinopoisk.Money{Value: 28418687, Currency: "$"}},
		Premiere:   kinopoisk.Premiere{World: "1994-09-10T00:00:00.000Z"},
		Facts:      []kinopoisk.Fact{{Value: "Снят за 62 дня."}},
	}

	record := transform.Transform(movie, transform.RolePaths{
		Directors: "people",
		Actors:    "people",
		Writers:   "people",
	})

	if record[transform.FieldID] != int64(326) {
		t.Fatalf("unexpected id: %v", record[transform.FieldID])
	}
	if got := record.Strings(transform.FieldType); !reflect.DeepEqual(got, []string{"Фильм"}) {
		t.Fatalf("unexpected type translation: %v", got)
	}
	if record[transform.FieldRatingKp] != 9 {
		t.Fatalf("expected kp rating 9, got %v", record[transform.FieldRatingKp])
	}
	if record[transform.FieldRatingImdb] != 9 {
		t.Fatalf("expected imdb rating 9, got %v", record[transform.FieldRatingImdb])
	}
	if got := record.Strings(transform.FieldDescription); len(got) != 1 || got[0] != `"Бухгалтер Энди Дюфрейн обвинён в убийстве."` {
		t.Fatalf("unexpected description: %v", got)
	}
	if got := record.Strings(transform.FieldPremiereWorld); !reflect.DeepEqual(got, []string{"1994-09-10"}) {
		t.Fatalf("unexpected premiere: %v", got)
	}
	if got := record.Strings(transform.FieldDirectorsIDLinks); !reflect.DeepEqual(got, []string{`"[[people/23122|Фрэнк Дарабонт]]"`}) {
		t.Fatalf("unexpected director id links: %v", got)
	}
	if got := record.Strings(transform.FieldActors); !reflect.DeepEqual(got, []string{"Тим Роббинс"}) {
		t.Fatalf("unexpected actors: %v", got)
	}
	if got := record.Strings(transform.FieldPosterImage); !reflect.DeepEqual(got, []string{"![](https://image.example/326.jpg)"}) {
		t.Fatalf("unexpected poster image: %v", got)
	}
	if got := record.Strings(transform.FieldBudget); !reflect.DeepEqual(got, []string{"$25000000"}) {
		t.Fatalf("unexpected budget: %v", got)
	}
	if got := record.Strings(transform.FieldImdbID); !reflect.DeepEqual(got, []string{"tt0111161"}) {
		t.Fatalf("unexpected imdb id: %v", got)
	}
	if record[transform.FieldTmdbID] != int64(278) {
		t.Fatalf("unexpected tmdb id: %v", record[transform.FieldTmdbID])
	}
}

func TestRatingRoundingHalfUp(t *testing.T) {
	cases := []struct {
		score float64
		want  int
	}{
		{0, 0},
		{7.4, 7},
		{7.5, 8}, // ties round up
		{7.6, 8},
		{8.49, 8},
	}
	for _, tc := range cases {
		movie := &kinopoisk.Movie{Rating: kinopoisk.Rating{KP: tc.score}}
		record := transform.Transform(movie, transform.RolePaths{})
		if got := record[transform.FieldRatingKp]; got != tc.want {
			t.Fatalf("score %v: got %v, want %d", tc.score, got, tc.want)
		}
	}
}

func TestTypeTranslation(t *testing.T) {
	cases := map[string]string{
		"movie":           "Фильм",
		"tv-series":       "Сериал",
		"cartoon":         "Мультфильм",
		"anime":           "Аниме",
		"animated-series": "Анимационный сериал",
		"tv-show":         "tv-show", // unknown codes pass through
	}
	for code, want := range cases {
		if got := transform.TranslateType(code); got != want {
			t.Fatalf("TranslateType(%q) = %q, want %q", code, got, want)
		}
	}
}
