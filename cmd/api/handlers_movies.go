package main

import (
	"errors"
	"net/http"

	"myflix/proj/internal/domain/filters"
	"myflix/proj/internal/lib/validator"
	"myflix/proj/internal/services/movies"
)

func (app *Application) listMovies(w http.ResponseWriter, r *http.Request) {
	var f filters.MovieFilters
	if err := app.decoder.Decode(&f, r.URL.Query()); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	if errs := validator.ValidateStruct(app.validator, f); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return
	}
	list, err := app.Services.Movies.List(r.Context(), f)
	if err != nil {
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, list)
}

func (app *Application) getMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := app.Services.Movies.GetByTitle(r.Context(), urlParam(r, "title"))
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			app.Http.NotFound(w, r, "Movie not found")
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, movie)
}

func (app *Application) getGenre(w http.ResponseWriter, r *http.Request) {
	genre, err := app.Services.Movies.GetGenre(r.Context(), urlParam(r, "name"))
	if err != nil {
		if errors.Is(err, movies.ErrGenreNotFound) {
			app.Http.NotFound(w, r, "Genre not found")
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, genre)
}

func (app *Application) getDirector(w http.ResponseWriter, r *http.Request) {
	director, err := app.Services.Movies.GetDirector(r.Context(), urlParam(r, "name"))
	if err != nil {
		if errors.Is(err, movies.ErrDirectorNotFound) {
			app.Http.NotFound(w, r, "Director not found")
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, director)
}
