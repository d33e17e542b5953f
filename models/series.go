package models

// Series is a television series together with its genres and seasons.
type Series struct {
	SeriesID    int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`

	// Rating is optional; nil means the series has not been rated.
	Rating *float64 `json:"rating"`

	Genres  []Genre  `json:"genres"`
	Seasons []Season `json:"seasons"`
}

// TableName returns the name of the database table
// associated with the Series model.
func (s Series) TableName() string {
	return "series"
}

// SeriesCreate is the request body for creating a series.
//
// GenreIDs that do not match an existing genre are ignored.
type SeriesCreate struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ReleaseYear int      `json:"release_year"`
	Rating      *float64 `json:"rating"`
	GenreIDs    []int64  `json:"genre_ids"`
}

// SeriesQuery narrows a series listing.
type SeriesQuery struct {
	Page

	// Title, when non-empty, restricts the listing to series with exactly
	// this title.
	Title string
}
