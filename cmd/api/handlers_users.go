package main

import (
	"errors"
	"net/http"

	"myflix/proj/internal/domain/fields"
	"myflix/proj/internal/lib/validator"
	"myflix/proj/internal/services/users"
)

type userInput struct {
	Username string       `json:"username" validate:"required,min=5,alphanum" errorMsg:"required=Username is required;min=Username is required;alphanum=Username contains non alphanumeric characters - not allowed"`
	Password string       `json:"password" validate:"required" errorMsg:"Password is required"`
	Email    string       `json:"email" validate:"required,email" errorMsg:"Email does not appear to be valid"`
	Birthday *fields.Date `json:"birthday"`
}

func (in *userInput) params() users.UserParams {
	return users.UserParams{
		Username: in.Username,
		Password: in.Password,
		Email:    in.Email,
		Birthday: in.Birthday,
	}
}

// readUserInput decodes and validates the body, answering the request itself
// when it returns false.
func (app *Application) readUserInput(w http.ResponseWriter, r *http.Request) (*userInput, bool) {
	var input userInput
	if err := app.readJSON(w, r, &input); err != nil {
		app.Http.BadRequest(w, r, err.Error())
		return nil, false
	}
	if errs := validator.ValidateStruct(app.validator, input); errs != nil {
		app.Http.UnprocessableEntity(w, r, errs)
		return nil, false
	}
	return &input, true
}

func userNotFoundMsg(username string) string {
	return "User with the username " + username + " was not found"
}

func userExistsMsg(username string) string {
	return "User with the Username " + username + " already exists!"
}

func (app *Application) registerUser(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readUserInput(w, r)
	if !ok {
		return
	}
	user, err := app.Services.Users.Register(r.Context(), input.params())
	if err != nil {
		if errors.Is(err, users.ErrUserAlreadyExists) {
			app.Http.BadRequest(w, r, userExistsMsg(input.Username))
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Created(w, r, user)
}

func (app *Application) listUsers(w http.ResponseWriter, r *http.Request) {
	list, err := app.Services.Users.List(r.Context())
	if err != nil {
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, list)
}

func (app *Application) getUser(w http.ResponseWriter, r *http.Request) {
	username := urlParam(r, "username")
	user, err := app.Services.Users.Get(r.Context(), username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, userNotFoundMsg(username))
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Ok(w, r, user)
}

func (app *Application) updateUser(w http.ResponseWriter, r *http.Request) {
	username := urlParam(r, "username")
	input, ok := app.readUserInput(w, r)
	if !ok {
		return
	}
	user, err := app.Services.Users.Update(r.Context(), username, input.params())
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			app.Http.NotFound(w, r, userNotFoundMsg(username))
		case errors.Is(err, users.ErrUserAlreadyExists):
			app.Http.BadRequest(w, r, userExistsMsg(input.Username))
		default:
			app.Http.ServerError(w, r, err)
		}
		return
	}
	app.Http.Ok(w, r, user)
}

func (app *Application) deregisterUser(w http.ResponseWriter, r *http.Request) {
	username := urlParam(r, "username")
	if err := app.Services.Users.Delete(r.Context(), username); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, "User with the Username "+username+" was not found.")
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.log.Info("user deregistered", "username", username, "by", contextGetUsername(r))
	app.Http.Text(w, r, http.StatusOK, "User with the Username "+username+" was successfully deleted.")
}

func (app *Application) addFavorite(w http.ResponseWriter, r *http.Request) {
	username, movieID := urlParam(r, "username"), urlParam(r, "movieID")
	if _, err := app.Services.Users.AddFavorite(r.Context(), username, movieID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, movieID+" was not found.")
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Text(w, r, http.StatusOK, movieID+" was successfully added.")
}

func (app *Application) removeFavorite(w http.ResponseWriter, r *http.Request) {
	username, movieID := urlParam(r, "username"), urlParam(r, "movieID")
	if _, err := app.Services.Users.RemoveFavorite(r.Context(), username, movieID); err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			app.Http.NotFound(w, r, movieID+" was not found.")
			return
		}
		app.Http.ServerError(w, r, err)
		return
	}
	app.Http.Text(w, r, http.StatusOK, movieID+" was successfully deleted.")
}
