package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"myflix/proj/internal/config"
	"myflix/proj/internal/lib/logger"
	"myflix/proj/internal/services"
	"myflix/proj/internal/storage"
	"myflix/proj/internal/storage/memory"
	"myflix/proj/internal/storage/mongo"
	"myflix/proj/internal/storage/postgres"
	"myflix/proj/internal/storage/postgres/models"
)

const version = "1.0.0"

type migrator interface {
	Migrate(ctx context.Context) error
}

type backend struct {
	services.Storage
	io.Closer
}

type postgresBackend struct {
	*models.MovieModel
	*models.UserModel
}

func openStorage(cfg *config.Config, log *slog.Logger) (*backend, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Storage.ConnectTimeout)
	defer cancel()
	var (
		b   *backend
		mig migrator
	)
	switch cfg.Storage.Driver {
	case storage.DriverPostgres:
		db, err := postgres.New(ctx, cfg.Storage.Dsn, cfg.Storage.MaxConns, cfg.Storage.MaxConnIdleTime)
		if err != nil {
			return nil, err
		}
		m := models.New(db)
		b, mig = &backend{Storage: postgresBackend{m.Movie, m.User}, Closer: db}, db
	case storage.DriverMongo:
		db, err := mongo.New(ctx, cfg.Storage.Dsn, cfg.Storage.Database)
		if err != nil {
			return nil, err
		}
		b, mig = &backend{Storage: db, Closer: db}, db
	default:
		log.Warn("using in-memory storage, data is lost on restart")
		mem := memory.New(memory.SeedMovies()...)
		return &backend{Storage: mem, Closer: mem}, nil
	}
	log.Info("database connection established", "driver", cfg.Storage.Driver)
	if !cfg.Storage.SkipMigrations {
		if err := mig.Migrate(ctx); err != nil {
			b.Close()
			return nil, err
		}
		log.Info("database migrations applied")
	}
	return b, nil
}

func main() {
	cfgPath := flag.String("config", "config/local.yml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(*cfgPath)
	log := logger.SetupLogger(cfg.Debug)

	store, err := openStorage(cfg, log)
	if err != nil {
		log.Error("failed to open storage", "driver", cfg.Storage.Driver, "reason", err.Error())
		os.Exit(1)
	}
	defer store.Close()

	app := NewApplication(cfg, log, store)
	if err := app.serve(); err != nil {
		app.log.Error("shutting down the server", "reason", err.Error())
		store.Close()
		os.Exit(1)
	}
}
