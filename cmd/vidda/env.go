package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/mmcdole/vidda/internal/config"
	"github.com/mmcdole/vidda/internal/domain"
	"github.com/mmcdole/vidda/internal/httpx"
	"github.com/mmcdole/vidda/internal/log"
	"github.com/mmcdole/vidda/internal/player"
	"github.com/mmcdole/vidda/internal/repository"
	"github.com/mmcdole/vidda/internal/store"
	"github.com/mmcdole/vidda/internal/tmdb"
	"github.com/mmcdole/vidda/internal/tui"
	"github.com/mmcdole/vidda/internal/youtube"
)

// env is everything a command needs once configuration is loaded.
type env struct {
	cfg         *config.Config
	logger      *slog.Logger
	repo        domain.TitleRepository
	player      tui.TrailerPlayer
	trailerBase string

	closers []io.Closer
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i].Close(); err != nil {
			e.logger.Error("failed to close resource", "error", err)
		}
	}
}

// opener builds an env from the global flags.
type opener func(opts config.Options) (*env, error)

func openEnv(opts config.Options) (*env, error) {
	cfg, err := config.LoadConfig(afero.NewOsFs(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, logCloser, err := log.SetupLogger(cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
		logCloser = nil
	}
	slog.SetDefault(logger)
	logger.Info("starting vidda", "version", Version)

	e := &env{cfg: cfg, logger: logger, trailerBase: cfg.API.YouTubeBaseURL}
	if logCloser != nil {
		e.closers = append(e.closers, logCloser)
	}

	httpOpts := []httpx.Option{
		httpx.WithHTTPClient(httpx.NewHTTPClient(cfg.HTTP.Timeout)),
		httpx.WithRateLimit(cfg.HTTP.RateLimit),
	}
	movies := tmdb.NewClient(cfg.API.TMDBAPIRoot(), cfg.API.TMDBAPIKey, logger, httpOpts...)
	videos := youtube.NewClient(cfg.API.YouTubeSearchURL, cfg.API.YouTubeAPIKey, logger, httpOpts...)

	saved, err := store.NewTitleStore(cfg.Store.Path, logger)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("failed to open saved titles: %w", err)
	}
	e.closers = append(e.closers, saved)

	e.repo = repository.New(movies, videos, saved, logger)
	e.player = player.NewLauncher(cfg.Player, cfg.API.YouTubeBaseURL, logger)
	return e, nil
}
