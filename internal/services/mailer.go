package services

import (
	"fmt"

	"portfolio_backend/internal/config"
	"portfolio_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP.
type Mailer struct {
	cfg config.EmailConfig
}

func NewMailer(cfg config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromEmail, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)
	return dialer.DialAndSend(msg)
}

// SendPasswordReset mails the reset link carrying the raw token. The
// token is never logged or stored in clear form.
func (m *Mailer) SendPasswordReset(to, resetLink string) error {
	body := fmt.Sprintf(`
		<p>A password reset was requested for your account.</p>
		<p><a href="%s">Reset your password</a></p>
		<p>The link expires in one hour. If you did not request this, ignore this email.</p>`,
		resetLink)
	return m.send(to, "Password reset", body)
}

// SendContactNotification forwards a contact-form submission to the site
// owner's inbox.
func (m *Mailer) SendContactNotification(to string, message *models.Message) error {
	body := fmt.Sprintf(`
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>`,
		message.Name, message.Email, message.Subject, message.Body)
	return m.send(to, "New contact form message", body)
}
