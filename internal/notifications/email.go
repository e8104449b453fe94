package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"varsity/internal/shared/config"
)

// EmailService sends notification emails over SMTP
type EmailService interface {
	Send(ctx context.Context, notification *Notification) error
}

type smtpEmailService struct {
	cfg       config.EmailConfig
	templates map[NotificationType]*template.Template
}

func NewSMTPEmailService(cfg config.EmailConfig) EmailService {
	s := &smtpEmailService{
		cfg:       cfg,
		templates: make(map[NotificationType]*template.Template),
	}
	s.loadTemplates()
	return s
}

const orderConfirmedTemplate = `
<h2>Your tickets are confirmed!</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your order <strong>{{.OrderID}}</strong> is confirmed.</p>
<p>Seats: <strong>{{.Seats}}</strong></p>
<p>Total paid: <strong>{{.Amount}}</strong></p>
<p>See you at the game.</p>
`

const orderCancelledTemplate = `
<h2>Order cancelled</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your order <strong>{{.OrderID}}</strong> has been cancelled ({{.Reason}}).</p>
<p>Your payment has been refunded.</p>
`

const enrollmentConfirmedTemplate = `
<h2>Enrollment confirmed</h2>
<p>Hi {{.RecipientName}},</p>
<p>You are now enrolled in <strong>{{.SectionName}}</strong>.</p>
`

func (s *smtpEmailService) loadTemplates() {
	s.templates[NotificationTypeOrderConfirmed] = template.Must(
		template.New("order_confirmed").Parse(orderConfirmedTemplate))
	s.templates[NotificationTypeOrderCancelled] = template.Must(
		template.New("order_cancelled").Parse(orderCancelledTemplate))
	s.templates[NotificationTypeEnrollmentConfirmed] = template.Must(
		template.New("enrollment_confirmed").Parse(enrollmentConfirmedTemplate))
}

func (s *smtpEmailService) Send(ctx context.Context, notification *Notification) error {
	tmpl, ok := s.templates[notification.Type]
	if !ok {
		return fmt.Errorf("no template for notification type %s", notification.Type)
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
	}
	for k, v := range notification.TemplateData {
		data[k] = v
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendMail(notification.RecipientEmail, notification.Subject, body.String())
}

func (s *smtpEmailService) sendMail(to, subject, htmlBody string) error {
	if s.cfg.SMTPHost == "" {
		// Email not configured; drop silently in development setups
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.FromEmail))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
