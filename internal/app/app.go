package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/five82/listviz/internal/config"
	"github.com/five82/listviz/internal/logging"
	"github.com/five82/listviz/internal/prefs"
	"github.com/five82/listviz/internal/ui"
)

// Options configure the listviz application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/listviz/config.toml
	PrefsPath  string // empty uses default ~/.config/listviz/prefs.toml
}

// env is what every command loads before it starts.
type env struct {
	cfg    config.Config
	prefs  prefs.Prefs
	logger zerolog.Logger
	closer io.Closer
}

func load(opts Options) (env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return env{}, fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return env{}, fmt.Errorf("load prefs: %w", err)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return env{}, fmt.Errorf("init logging: %w", err)
	}

	return env{cfg: cfg, prefs: userPrefs, logger: logger, closer: closer}, nil
}

// Run boots the listviz TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := load(opts)
	if err != nil {
		return err
	}
	defer func() { _ = e.closer.Close() }()

	e.logger.Info().
		Str("policy", e.cfg.OverlapPolicy.String()).
		Str("theme", e.prefs.Theme).
		Msg("starting interface")

	return ui.Run(ctx, ui.Options{
		Config:        e.cfg,
		Logger:        e.logger,
		ThemeName:     e.prefs.Theme,
		HideReference: e.prefs.HideReference,
		PrefsPath:     opts.PrefsPath,
	})
}
