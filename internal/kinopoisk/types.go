package kinopoisk

// SearchItem is a single search match, passed to the caller verbatim so a
// selection surface can present it without reshaping.
type SearchItem struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	AlternativeName string `json:"alternativeName"`
	Type            string `json:"type"`
	Year            int    `json:"year"`
	Poster          Image  `json:"poster"`
	Rating          Rating `json:"rating"`
}

// SearchResponse models the paginated search payload.
type SearchResponse struct {
	Docs  []SearchItem `json:"docs"`
	Total int          `json:"total"`
	Limit int          `json:"limit"`
	Page  int          `json:"page"`
	Pages int          `json:"pages"`
}

// Image carries a remote artwork location.
type Image struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl"`
}

// Rating aggregates the per-source score averages.
type Rating struct {
	KP                 float64 `json:"kp"`
	IMDB               float64 `json:"imdb"`
	FilmCritics        float64 `json:"filmCritics"`
	RussianFilmCritics float64 `json:"russianFilmCritics"`
}

// Votes aggregates the per-source vote counts.
type Votes struct {
	KP   int64 `json:"kp"`
	IMDB int64 `json:"imdb"`
}

// Tag is a named classification entry (genre, country).
type Tag struct {
	Name string `json:"name"`
}

// Name is an alternate title variant.
type Name struct {
	Name     string `json:"name"`
	Language string `json:"language"`
	Type     string `json:"type"`
}

// Person is a crew or cast entry. EnProfession selects the output bucket
// during transformation; unrecognized values are dropped there.
type Person struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	EnName       string `json:"enName"`
	Photo        string `json:"photo"`
	Profession   string `json:"profession"`
	EnProfession string `json:"enProfession"`
}

// SeasonInfo describes one season of a series.
type SeasonInfo struct {
	Number        int `json:"number"`
	EpisodesCount int `json:"episodesCount"`
}

// ExternalID carries identifiers on other catalogues.
type ExternalID struct {
	IMDB string `json:"imdb"`
	TMDB int64  `json:"tmdb"`
	KpHD string `json:"kpHD"`
}

// Money is an amount with its currency symbol.
type Money struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// Fees groups box-office figures by region.
type Fees struct {
	World  Money `json:"world"`
	Russia Money `json:"russia"`
	USA    Money `json:"usa"`
}

// Premiere carries the release date strings by venue.
type Premiere struct {
	World   string `json:"world"`
	Russia  string `json:"russia"`
	Digital string `json:"digital"`
	Cinema  string `json:"cinema"`
}

// Fact is a trivia entry; spoilers are filtered out during transformation.
type Fact struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Spoiler bool   `json:"spoiler"`
}

// LinkedMovie is a related title (similar, sequel, prequel).
type LinkedMovie struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	AlternativeName string `json:"alternativeName"`
	Type            string `json:"type"`
}

// NetworkItem is a broadcasting network entry.
type NetworkItem struct {
	Name string `json:"name"`
	Logo Image  `json:"logo"`
}

// Networks wraps the network list the API nests under "items".
type Networks struct {
	Items []NetworkItem `json:"items"`
}

// ProductionCompany is a producing studio entry.
type ProductionCompany struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Movie is the full by-id payload. Apart from the identity fields the API
// contract leaves everything optional; the transformer defaults rather
// than validates.
type Movie struct {
	ID                  int64               `json:"id"`
	Name                string              `json:"name"`
	AlternativeName     string              `json:"alternativeName"`
	EnName              string              `json:"enName"`
	Names               []Name              `json:"names"`
	Type                string              `json:"type"`
	Year                int                 `json:"year"`
	Description         string              `json:"description"`
	ShortDescription    string              `json:"shortDescription"`
	Slogan              string              `json:"slogan"`
	IsSeries            bool                `json:"isSeries"`
	MovieLength         int                 `json:"movieLength"`
	Rating              Rating              `json:"rating"`
	Votes               Votes               `json:"votes"`
	Genres              []Tag               `json:"genres"`
	Countries           []Tag               `json:"countries"`
	Persons             []Person            `json:"persons"`
	SeasonsInfo         []SeasonInfo        `json:"seasonsInfo"`
	Poster              Image               `json:"poster"`
	Backdrop            Image               `json:"backdrop"`
	Logo                Image               `json:"logo"`
	ExternalID          ExternalID          `json:"externalId"`
	Budget              Money               `json:"budget"`
	Fees                Fees                `json:"fees"`
	Premiere            Premiere            `json:"premiere"`
	Facts               []Fact              `json:"facts"`
	SimilarMovies       []LinkedMovie       `json:"similarMovies"`
	SequelsAndPrequels  []LinkedMovie       `json:"sequelsAndPrequels"`
	Networks            Networks            `json:"networks"`
	ProductionCompanies []ProductionCompany `json:"productionCompanies"`
}
