package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (app *Application) routes() http.Handler {
	router := chi.NewRouter()
	router.NotFound(app.Http.RouteNotFound)
	router.MethodNotAllowed(app.Http.MethodNotAllowed)
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(app.Recoverer)
	router.Use(app.CORS)
	router.Use(app.RateLimiter)

	router.Get("/healthcheck", app.healthcheck)
	router.Post("/login", app.login)
	router.Post("/users", app.registerUser)
	router.With(app.optionalAuth(app.cfg.Auth.PublicRoot)).Get("/", app.welcome)
	router.With(app.optionalAuth(app.cfg.Auth.PublicFavoriteAdd)).
		Patch("/users/{username}/movies/{movieID}", app.addFavorite)

	router.Group(func(r chi.Router) {
		r.Use(app.authenticate)
		r.Get("/movies", app.listMovies)
		r.Get("/movies/{title}", app.getMovie)
		r.Get("/movies/genre/{name}", app.getGenre)
		r.Get("/movies/directors/{name}", app.getDirector)

		r.Get("/users", app.listUsers)
		r.Get("/users/{username}", app.getUser)
		r.Put("/users/{username}", app.updateUser)
		r.Delete("/users/{username}", app.deregisterUser)
		r.Delete("/users/{username}/movies/{movieID}", app.removeFavorite)
	})
	return router
}
