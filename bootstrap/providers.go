package bootstrap

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"time"

	"podium/auth"
	"podium/config"
	"podium/mail"
	"podium/paths"
	"podium/storage"
	"podium/web"
)

// Provider installs one feature module into the container during
// startup. Registration runs in the order providers are passed to
// NewApp; any failure aborts the whole bootstrap.
type Provider interface {
	Name() string
	Register(app *App) error
}

// DefaultProviders returns the standard module set for the server.
func DefaultProviders() []Provider {
	return []Provider{
		&DatabaseProvider{},
		&TemplateProvider{},
		&AuthProvider{},
		&MailProvider{},
	}
}

// DatabaseProvider opens the application database. The path comes from
// "database.path", defaulting to a file under the base path.
type DatabaseProvider struct{}

func (*DatabaseProvider) Name() string { return "database" }

func (*DatabaseProvider) Register(app *App) error {
	path := app.Config.GetString("database.path")
	if path == "" {
		path = filepath.Join(app.BasePath, "data", "podium.db")
	}
	db, err := storage.Open(path, app.Sugar)
	if err != nil {
		return err
	}
	app.DB = db
	return nil
}

// TemplateProvider wires the HTML renderer over the resolved templates
// path.
type TemplateProvider struct{}

func (*TemplateProvider) Name() string { return "templates" }

func (*TemplateProvider) Register(app *App) error {
	renderer, err := web.NewHTMLRenderer(app.Path(paths.Templates))
	if err != nil {
		return err
	}
	app.Renderer = renderer
	return nil
}

// AuthProvider wires the session token manager. The signing secret
// comes from "auth.jwt_secret"; in production a missing secret is a
// startup error, elsewhere an ephemeral one is generated so every
// restart invalidates old sessions.
type AuthProvider struct{}

func (*AuthProvider) Name() string { return "auth" }

func (*AuthProvider) Register(app *App) error {
	secret := app.Config.GetString("auth.jwt_secret")
	if secret == "" {
		if app.Env.IsProduction() {
			return fmt.Errorf("auth.jwt_secret must be configured in production")
		}
		generated, err := generateSecret(32)
		if err != nil {
			return err
		}
		secret = generated
		app.Sugar.Warn("auth.jwt_secret not configured, using ephemeral secret")
	}

	expiry := 24 * time.Hour
	if hours := app.Config.GetInt("auth.token_expiry_hours"); hours > 0 {
		expiry = time.Duration(hours) * time.Hour
	}

	app.Tokens = auth.NewTokenManager(secret, expiry)
	return nil
}

// MailProvider binds the mailer. An absent mail section is fine (the
// log mailer needs nothing), but a present, invalid one is a startup
// error.
type MailProvider struct{}

func (*MailProvider) Name() string { return "mail" }

func (*MailProvider) Register(app *App) error {
	settings := config.MailSettingsFromStore(app.Config)
	if app.Config.Get("mail") != nil {
		if err := settings.Validate(); err != nil {
			return fmt.Errorf("mail settings: %w", err)
		}
	}
	app.Mailer = mail.NewLogMailer(app.Sugar, settings)
	return nil
}

// generateSecret returns a cryptographically random URL-safe string.
func generateSecret(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return base64.URLEncoding.EncodeToString(buf), nil
}
