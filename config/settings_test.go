package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWith(t *testing.T, yaml string) *Store {
	t.Helper()
	path := writeFile(t, t.TempDir(), "testing.yml", yaml)
	store := NewStore()
	require.NoError(t, store.Load(path))
	return store
}

func TestServerSettingsDefaults(t *testing.T) {
	store := storeWith(t, "application: {}")

	settings := ServerSettingsFromStore(store)
	assert.Equal(t, "0.0.0.0", settings.Host)
	assert.Equal(t, 8080, settings.Port)
	assert.NoError(t, settings.Validate())
}

func TestServerSettingsOverride(t *testing.T) {
	store := storeWith(t, `
server:
  host: "localhost"
  port: 3000
`)

	settings := ServerSettingsFromStore(store)
	assert.Equal(t, "localhost", settings.Host)
	assert.Equal(t, 3000, settings.Port)
	assert.NoError(t, settings.Validate())
}

func TestServerSettingsInvalidPort(t *testing.T) {
	settings := ServerSettings{Host: "localhost", Port: 70000}
	assert.Error(t, settings.Validate())
}

func TestMailSettingsValidation(t *testing.T) {
	tests := []struct {
		name     string
		settings MailSettings
		wantErr  bool
	}{
		{
			name:     "valid",
			settings: MailSettings{Host: "smtp.example.com", Port: 587, From: "cfp@example.com"},
		},
		{
			name:     "missing host",
			settings: MailSettings{Port: 587, From: "cfp@example.com"},
			wantErr:  true,
		},
		{
			name:     "bad from address",
			settings: MailSettings{Host: "smtp.example.com", Port: 587, From: "not-an-email"},
			wantErr:  true,
		},
		{
			name:     "bad port",
			settings: MailSettings{Host: "smtp.example.com", Port: 0, From: "cfp@example.com"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMailSettingsFromStore(t *testing.T) {
	store := storeWith(t, `
mail:
  host: "smtp.example.com"
  port: 587
  from: "cfp@example.com"
`)

	settings := MailSettingsFromStore(store)
	assert.Equal(t, "smtp.example.com", settings.Host)
	assert.Equal(t, 587, settings.Port)
	assert.Equal(t, "cfp@example.com", settings.From)
	assert.NoError(t, settings.Validate())
}
