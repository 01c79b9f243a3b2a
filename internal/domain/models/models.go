package models

import (
	"myflix/proj/internal/domain/fields"
)

type Genre struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Director struct {
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

// Genre and Director are owned by the movie, two movies sharing a genre name
// hold separate copies of it.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImagePath   string   `json:"imagePath,omitempty"`
	Featured    bool     `json:"featured"`
}

type User struct {
	ID               string       `json:"id"`
	Username         string       `json:"username"`
	PasswordHash     string       `json:"password"` // bcrypt hash, never plaintext
	Email            string       `json:"email"`
	Birthday         *fields.Date `json:"birthday,omitempty"`
	FavoriteMovieIDs []string     `json:"favoriteMovieIds"`
}

type AuthTokens struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
