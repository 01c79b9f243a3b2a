package services

import (
	"log/slog"

	"myflix/proj/internal/config"
	"myflix/proj/internal/lib/hasher"
	"myflix/proj/internal/lib/tokens"
	"myflix/proj/internal/mails"
	"myflix/proj/internal/services/auth"
	"myflix/proj/internal/services/movies"
	"myflix/proj/internal/services/users"
)

// Storage is what a storage driver has to provide: the catalog and the
// credential store.
type Storage interface {
	movies.MoviesStorage
	users.UsersStorage
}

type Services struct {
	Auth   *auth.AuthService
	Movies *movies.MovieService
	Users  *users.UserService
}

func New(log *slog.Logger, cfg *config.Config, storage Storage, taskExecutor users.TaskExecutor) *Services {
	var mailer users.MailProvider
	if cfg.SMTP.Enabled() {
		mailer = mails.New(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.Timeout,
			cfg.SMTP.Username,
			cfg.SMTP.Password,
			cfg.SMTP.Sender,
			cfg.SMTP.RetriesCount,
		)
	}
	bcrypt := hasher.NewBcrypt(cfg.Auth.BcryptCost)
	issuer := tokens.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)
	return &Services{
		Auth:   auth.New(log, storage, bcrypt, issuer),
		Movies: movies.New(log, storage),
		Users:  users.New(log, storage, bcrypt, mailer, taskExecutor),
	}
}
