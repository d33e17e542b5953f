package service

// GenreServiceWrapper defines middleware composition for GenreService.
// Implementations wrap an existing GenreService to add behavior such as
// logging or validating.
type GenreServiceWrapper interface {
	Wrap(GenreService) GenreService // returns a decorated GenreService applying additional behavior
}

// SeriesServiceWrapper defines middleware composition for SeriesService.
type SeriesServiceWrapper interface {
	Wrap(SeriesService) SeriesService
}
