package main

import (
	"log/slog"
	"sync"

	"myflix/proj/internal/api/tasks"
	"myflix/proj/internal/config"
	"myflix/proj/internal/lib/decoder"
	"myflix/proj/internal/lib/validator"
	"myflix/proj/internal/services"

	govalidator "github.com/go-playground/validator/v10"
)

type Application struct {
	cfg       *config.Config
	log       *slog.Logger
	Http      *Http
	Services  *services.Services
	validator *govalidator.Validate
	decoder   *decoder.URLDecoder
	tasks     *tasks.BackgroundTasks

	// done is closed by stop and ends the middleware janitors tracked in
	// background.
	done       chan struct{}
	stopOnce   sync.Once
	background sync.WaitGroup
}

func NewApplication(cfg *config.Config, log *slog.Logger, storage services.Storage) *Application {
	bgTasks := tasks.New(log, cfg.Tasks.Workers, cfg.Tasks.QueueSize)
	app := &Application{
		cfg:       cfg,
		log:       log,
		validator: validator.New(),
		decoder:   decoder.New(),
		Services:  services.New(log, cfg, storage, bgTasks),
		tasks:     bgTasks,
		done:      make(chan struct{}),
		Http: &Http{
			log: log,
			cfg: cfg,
		},
	}
	return app
}

// stop ends the goroutines started while building the handler chain.
func (app *Application) stop() {
	app.stopOnce.Do(func() { close(app.done) })
	app.background.Wait()
}
