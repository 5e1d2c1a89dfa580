package mailing

import (
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/littlelemon/backend/entities"
	"github.com/littlelemon/backend/internal/utils"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// OrderMailer sends checkout confirmations over SMTP.
type OrderMailer struct{}

func NewOrderMailer() OrderMailer {
	return OrderMailer{}
}

func (OrderMailer) SendOrderConfirmation(email string, order *entities.Order) error {
	subject := fmt.Sprintf("Little Lemon order #%d", order.ID)
	body := fmt.Sprintf(
		"<p>Thank you for your order!</p><p>Order #%d placed on %s, total %.2f.</p>",
		order.ID,
		order.Date.Format("2 January 2006 15:04"),
		order.Total,
	)
	if order.InvoiceURL != "" {
		body += fmt.Sprintf("<p>Pay your order here: <a href=%q>%s</a></p>", order.InvoiceURL, order.InvoiceURL)
	}
	return SendMail(email, subject, body)
}
