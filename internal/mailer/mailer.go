// Package mailer sends transactional mail over SMTP. Delivery is best effort:
// callers fire it in a goroutine and a failure never fails the request.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/tanvi/artisan-market/internal/config"
	"github.com/tanvi/artisan-market/internal/models"
	"go.uber.org/zap"
)

type Mailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger

	// send is swappable for tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(cfg config.SMTPConfig, logger *zap.Logger) *Mailer {
	return &Mailer{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool {
	return m != nil && m.cfg.Host != ""
}

func (m *Mailer) SendOrderConfirmation(to string, order *models.Order) {
	subject := fmt.Sprintf("Order %s confirmed", order.ID)
	var b strings.Builder
	fmt.Fprintf(&b, "Thank you for your order.\r\n\r\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%d x %s @ %s %s\r\n", item.Quantity, item.ProductName, order.Currency, item.UnitPrice)
	}
	fmt.Fprintf(&b, "\r\nTotal: %s %s\r\n", order.Currency, order.TotalAmount)

	m.deliver(to, subject, b.String())
}

func (m *Mailer) SendSupportAck(to, name, subject string) {
	body := fmt.Sprintf("Hi %s,\r\n\r\nWe received your message about %q and will get back to you soon.\r\n", name, subject)
	m.deliver(to, "We received your message", body)
}

func (m *Mailer) deliver(to, subject, body string) {
	if !m.Enabled() {
		return
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		m.logger.Warn("send mail failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return
	}

	m.logger.Info("mail sent", zap.String("to", to), zap.String("subject", subject))
}
