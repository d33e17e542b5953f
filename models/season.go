package models

// Season is a numbered season of a series. SeriesID is the owning series
// and is not part of the JSON projection.
type Season struct {
	SeasonID    int64 `json:"id"`
	Number      int   `json:"number"`
	ReleaseYear int   `json:"release_year"`
	SeriesID    int64 `json:"-"`

	Episodes []Episode `json:"episodes"`
}

// TableName returns the name of the database table
// associated with the Season model.
func (s Season) TableName() string {
	return "seasons"
}
