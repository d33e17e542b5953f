package models

// Genre is a named category that series can be tagged with.
type Genre struct {
	GenreID int64  `json:"id"`
	Name    string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Genre model.
func (g Genre) TableName() string {
	return "genres"
}

// GenreAverageRating is the response of the genre average-rating endpoint.
//
// AverageRating is nil (serialized as null) when the genre has no series or
// none of its series has a rating; Message then explains which case applies.
type GenreAverageRating struct {
	GenreID       int64    `json:"genre_id"`
	AverageRating *float64 `json:"average_rating"`
	Message       string   `json:"message,omitempty"`
}
