package main

import (
	"errors"
	"net/http"

	"myflix/proj/internal/services/auth"
)

func (app *Application) login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return
	}
	resp, err := app.Services.Auth.Login(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			app.Http.Unauthorized(w, r, err.Error())
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, resp)
}
