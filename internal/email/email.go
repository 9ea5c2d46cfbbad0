package email

import (
	"bcommune_backend/internal/config"
	"bcommune_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Provider sends transactional mail. Signup uses it fire-and-forget; a mail
// failure never fails the request.
type Provider interface {
	Send(to, subject, body string) error
}

// SMTPProvider sends through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUser,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopProvider is wired when SMTP is not configured (tests, local runs).
type NoopProvider struct{}

func (p *NoopProvider) Send(to, subject, body string) error {
	logger.Debug("email suppressed, no SMTP configured", "to", to, "subject", subject)
	return nil
}

// NewProvider picks SMTP when a host is configured, otherwise the no-op.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return &NoopProvider{}
	}
	return NewSMTPProvider(cfg)
}
