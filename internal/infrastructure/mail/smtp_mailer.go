package mail

import (
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/Talento-api/internal/application/ports"
	"github.com/jhoicas/Talento-api/pkg/config"
	"github.com/jhoicas/Talento-api/pkg/logger"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implementación del puerto Mailer sobre SMTP (gomail).
// Si Host está vacío funciona en modo dev: registra el correo en el log en vez
// de enviarlo, para no exigir un SMTP en desarrollo.
type SMTPMailer struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.SMTPConfig, log *logger.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, log: log}
}

// Send envía un correo de texto plano. Una entrega fallida devuelve error al
// caller (que la registra); no hay reintento automático.
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" {
		m.log.Info().
			Str("to", to).
			Str("subject", subject).
			Str("body", body).
			Msg("SMTP sin configurar: correo solo registrado (modo dev)")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return d.DialAndSend(msg)
}
