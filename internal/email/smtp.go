package email

import (
	"crypto/tls"
	"fmt"
	"time"

	"fpempleo_backend/internal/config"

	gomail "gopkg.in/gomail.v2"
)

// SMTPProvider sends transactional mail over SMTP using gomail. Transport
// settings are resolved per send so admin changes take effect immediately.
type SMTPProvider struct {
	cfg       *config.Config
	source    SettingsSource
	templates *TemplateManager
}

func NewSMTPProvider(cfg *config.Config, source SettingsSource) (*SMTPProvider, error) {
	tm, err := NewTemplateManager(cfg.Email.TemplatesDir)
	if err != nil {
		return nil, err
	}
	return &SMTPProvider{cfg: cfg, source: source, templates: tm}, nil
}

func (p *SMTPProvider) settings() *Settings {
	if p.source != nil {
		if s, err := p.source.CurrentSettings(); err == nil && s != nil && s.Host != "" {
			if s.FromName == "" {
				s.FromName = p.cfg.Email.FromName
			}
			return s
		}
	}
	return &Settings{
		Host:     p.cfg.Email.SMTPHost,
		Port:     p.cfg.Email.SMTPPort,
		Username: p.cfg.Email.SMTPUsername,
		Password: p.cfg.Email.SMTPPassword,
		From:     p.cfg.Email.FromEmail,
		FromName: p.cfg.Email.FromName,
		UseTLS:   p.cfg.Email.UseTLS,
	}
}

func (p *SMTPProvider) send(to, subject, templateName string, data TemplateData) error {
	s := p.settings()
	if s.Host == "" {
		return fmt.Errorf("smtp host not configured")
	}

	data.Subject = subject
	data.SiteName = p.cfg.Email.FromName
	data.SupportEmail = p.cfg.Site.SupportEmail

	body, err := p.templates.Render(templateName, data)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.From, s.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	if s.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: s.Host}
	}

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, token string) error {
	return p.send(to, "Confirma tu dirección de correo", "verification", TemplateData{
		Body:       "Gracias por registrarte. Confirma tu dirección de correo para activar tu cuenta.",
		ActionURL:  fmt.Sprintf("%s/verify-email?token=%s", p.cfg.Site.BaseURL, token),
		ActionText: "Confirmar correo",
	})
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	return p.send(to, "Restablecer contraseña", "password_reset", TemplateData{
		Body:       "Hemos recibido una solicitud para restablecer tu contraseña. Si no has sido tú, ignora este mensaje.",
		ActionURL:  fmt.Sprintf("%s/reset-password?token=%s", p.cfg.Site.BaseURL, token),
		ActionText: "Restablecer contraseña",
	})
}

func (p *SMTPProvider) SendWelcome(to, name, role string) error {
	return p.send(to, "Bienvenido/a a FP Empleo", "welcome", TemplateData{
		UserName: name,
		Body:     fmt.Sprintf("Tu cuenta de tipo %s ya está activa.", role),
	})
}

func (p *SMTPProvider) SendApplicationStatus(to, name, jobTitle, status string) error {
	return p.send(to, "Actualización de tu candidatura", "application_status", TemplateData{
		UserName: name,
		Body:     fmt.Sprintf("El estado de tu candidatura para \"%s\" ha cambiado a %s.", jobTitle, status),
	})
}

func (p *SMTPProvider) SendCVReminder(to, name string) error {
	return p.send(to, "Tu CV lleva un año sin actualizarse", "cv_reminder", TemplateData{
		UserName:   name,
		Body:       "Tu currículum no se actualiza desde hace más de un año. Mantenerlo al día mejora tus oportunidades.",
		ActionURL:  fmt.Sprintf("%s/me/cv", p.cfg.Site.BaseURL),
		ActionText: "Actualizar mi CV",
	})
}

func (p *SMTPProvider) SendJobExpiryWarning(to, companyName, jobTitle string, expiresAt time.Time) error {
	return p.send(to, "Tu oferta está a punto de caducar", "job_expiry", TemplateData{
		UserName:   companyName,
		Body:       fmt.Sprintf("La oferta \"%s\" caduca el %s. Puedes ampliar la fecha desde tu panel.", jobTitle, expiresAt.Format("02/01/2006")),
		ActionURL:  fmt.Sprintf("%s/jobs", p.cfg.Site.BaseURL),
		ActionText: "Gestionar mis ofertas",
	})
}
