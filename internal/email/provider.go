package email

import (
	"time"
)

// Provider is the outgoing-mail boundary. Business code and the
// maintenance worker depend on this interface only; delivery failures are
// reported through the error return and never retried here.
type Provider interface {
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
	SendWelcome(to, name string, role string) error
	SendApplicationStatus(to, name, jobTitle, status string) error
	SendCVReminder(to, name string) error
	SendJobExpiryWarning(to, companyName, jobTitle string, expiresAt time.Time) error
}

// Settings is the effective SMTP transport configuration.
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// SettingsSource yields the current transport settings. The DB-backed
// implementation lets administrators change the mail server without a
// restart; errors fall back to the file configuration.
type SettingsSource interface {
	CurrentSettings() (*Settings, error)
}
