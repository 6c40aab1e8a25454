package bootstrap

import (
	"database/sql"
	"fmt"
	"time"
	_ "time/tzdata"

	"go.uber.org/zap"

	"podium/auth"
	"podium/config"
	"podium/mail"
	"podium/paths"
	"podium/web"
)

// App is the runtime container every component receives. It is built
// once at startup and read-only afterwards, so concurrently handled
// requests share it without locking.
type App struct {
	BasePath string
	Env      config.Environment

	// Debug defaults to on and is suppressed only by production
	// identity, never by configuration.
	Debug bool

	Paths    paths.Set
	Config   *config.Store
	Location *time.Location

	Logger *zap.Logger
	Sugar  *zap.SugaredLogger

	// Populated by service providers.
	DB       *sql.DB
	Renderer web.Renderer
	Tokens   *auth.TokenManager
	Mailer   mail.Mailer
}

// NewApp builds the container. The construction order is load-bearing:
// environment and base path bind first, paths resolve before the config
// load (the config location is itself a resolved path), and providers
// register last against the fully configured container. Any error
// returns a nil App; nothing partially initialized escapes.
func NewApp(basePath string, env config.Environment, providers ...Provider) (*App, error) {
	app := &App{
		BasePath: basePath,
		Env:      env,
		Debug:    !env.IsProduction(),
	}

	logger, sugar := InitLogger(app.Debug)
	app.Logger = logger
	app.Sugar = sugar

	app.Paths = paths.ResolveAll(basePath, env)

	store := config.NewStore()
	if err := store.Load(app.Paths.Get(paths.Config)); err != nil {
		return nil, fmt.Errorf("load %s configuration: %w", env, err)
	}
	app.Config = store

	loc := time.UTC
	if name := store.GetString("application.date_timezone"); name != "" {
		parsed, err := time.LoadLocation(name)
		if err != nil {
			return nil, fmt.Errorf("invalid application.date_timezone %q: %w", name, err)
		}
		loc = parsed
	}
	app.Location = loc

	sugar.Infow("Application bootstrapped",
		"environment", env.String(),
		"base_path", basePath,
		"debug", app.Debug,
		"timezone", loc.String())

	for _, p := range providers {
		if err := p.Register(app); err != nil {
			return nil, fmt.Errorf("register %s provider: %w", p.Name(), err)
		}
		sugar.Debugw("Provider registered", "provider", p.Name())
	}

	return app, nil
}

// Path returns the resolved filesystem path for a slug.
func (a *App) Path(slug paths.Slug) string { return a.Paths.Get(slug) }

// Close releases provider-held resources.
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Sugar.Errorw("Failed to close database", "error", err)
		}
	}
	a.Logger.Sync()
}
