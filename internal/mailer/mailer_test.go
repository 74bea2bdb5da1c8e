package mailer

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tanvi/artisan-market/internal/config"
	"github.com/tanvi/artisan-market/internal/models"
	"go.uber.org/zap"
)

type capturedMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func testMailer(cfg config.SMTPConfig, sink *[]capturedMail, fail error) *Mailer {
	m := New(cfg, zap.NewNop())
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		if fail != nil {
			return fail
		}
		*sink = append(*sink, capturedMail{addr: addr, from: from, to: to, msg: string(msg)})
		return nil
	}
	return m
}

func TestMailerDisabledWithoutHost(t *testing.T) {
	var sent []capturedMail
	m := testMailer(config.SMTPConfig{}, &sent, nil)

	assert.False(t, m.Enabled())
	m.SendSupportAck("priya@example.com", "Priya", "Damaged vase")
	assert.Empty(t, sent)
}

func TestMailerNilReceiverDisabled(t *testing.T) {
	var m *Mailer
	assert.False(t, m.Enabled())
}

func TestSendOrderConfirmation(t *testing.T) {
	var sent []capturedMail
	cfg := config.SMTPConfig{Host: "mail.local", Port: 2525, From: "orders@artisanmarket.example"}
	m := testMailer(cfg, &sent, nil)

	order := &models.Order{
		ID:          "ord-1",
		Currency:    "INR",
		TotalAmount: decimal.RequireFromString("3798.00"),
		Items: []models.OrderItem{
			{ProductName: "Blue Pottery Vase", Quantity: 2, UnitPrice: decimal.RequireFromString("1899.00")},
		},
	}
	m.SendOrderConfirmation("priya@example.com", order)

	if assert.Len(t, sent, 1) {
		assert.Equal(t, "mail.local:2525", sent[0].addr)
		assert.Equal(t, "orders@artisanmarket.example", sent[0].from)
		assert.Equal(t, []string{"priya@example.com"}, sent[0].to)
		assert.Contains(t, sent[0].msg, "2 x Blue Pottery Vase")
		assert.Contains(t, sent[0].msg, "Total: INR 3798")
	}
}

func TestDeliveryFailureIsSwallowed(t *testing.T) {
	var sent []capturedMail
	cfg := config.SMTPConfig{Host: "mail.local", Port: 2525, From: "orders@artisanmarket.example"}
	m := testMailer(cfg, &sent, errors.New("connection refused"))

	// Must not panic or surface the error.
	m.SendSupportAck("priya@example.com", "Priya", "Damaged vase")
	assert.Empty(t, sent)
}
