package movies

import "errors"

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrDirectorNotFound = errors.New("director not found")
)
