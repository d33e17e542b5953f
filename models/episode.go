package models

// Episode is a single episode of a season.
type Episode struct {
	EpisodeID       int64  `json:"id"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
	SeasonID        int64  `json:"-"`
}

// TableName returns the name of the database table
// associated with the Episode model.
func (e Episode) TableName() string {
	return "episodes"
}
