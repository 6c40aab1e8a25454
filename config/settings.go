package config

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ServerSettings is the typed view of the "server" section.
type ServerSettings struct {
	Host string `validate:"required"`
	Port int    `validate:"required,min=1,max=65535"`
}

// ServerSettingsFromStore reads the server section, applying defaults
// for absent keys.
func ServerSettingsFromStore(s *Store) ServerSettings {
	settings := ServerSettings{
		Host: "0.0.0.0",
		Port: 8080,
	}
	if host := s.GetString("server.host"); host != "" {
		settings.Host = host
	}
	if port := s.GetInt("server.port"); port != 0 {
		settings.Port = port
	}
	return settings
}

func (s ServerSettings) Validate() error {
	return validate.Struct(s)
}

// MailSettings is the typed view of the "mail" section.
type MailSettings struct {
	Host string `validate:"required,hostname|ip"`
	Port int    `validate:"required,min=1,max=65535"`
	From string `validate:"required,email"`
}

// MailSettingsFromStore reads the mail section. Callers decide whether
// an absent section is acceptable; Validate only applies once the
// section is present.
func MailSettingsFromStore(s *Store) MailSettings {
	return MailSettings{
		Host: s.GetString("mail.host"),
		Port: s.GetInt("mail.port"),
		From: s.GetString("mail.from"),
	}
}

func (m MailSettings) Validate() error {
	return validate.Struct(m)
}
