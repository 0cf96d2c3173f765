package notifications

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// EmailService interface for sending emails
type EmailService interface {
	SendNotification(ctx context.Context, notification *EmailNotification) error
	SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error
}

// SMTPConfig holds SMTP configuration
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
	Timeout   time.Duration
}

// SMTPEmailService is a real SMTP implementation of the EmailService interface
type SMTPEmailService struct {
	config    *SMTPConfig
	templates map[NotificationType]*template.Template
}

// NewSMTPEmailService creates a new SMTP email service
func NewSMTPEmailService(config *SMTPConfig) (*SMTPEmailService, error) {
	if err := validateSMTPConfig(config); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}

	service := &SMTPEmailService{
		config:    config,
		templates: make(map[NotificationType]*template.Template),
	}

	if err := service.loadDefaultTemplates(); err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return service, nil
}

func validateSMTPConfig(config *SMTPConfig) error {
	if config == nil {
		return fmt.Errorf("SMTP config is nil")
	}
	if config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return fmt.Errorf("SMTP port must be between 1 and 65535")
	}
	if config.Username == "" {
		return fmt.Errorf("SMTP username is required")
	}
	if config.Password == "" {
		return fmt.Errorf("SMTP password is required")
	}
	if config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SendNotification renders the notification's template and sends it
func (s *SMTPEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	log.Printf("📧 [SMTP] Sending %s notification to %s (%s)",
		notification.Type,
		notification.RecipientEmail,
		notification.RecipientName,
	)

	htmlBody, textBody, err := s.generateContent(notification)
	if err != nil {
		return fmt.Errorf("failed to generate email content: %w", err)
	}

	return s.SendHTML(ctx, notification.RecipientEmail, notification.Subject, htmlBody, textBody)
}

// SendHTML sends an HTML email with a plain text alternative
func (s *SMTPEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := s.buildMessage(to, subject, htmlBody, textBody)

	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	var err error
	if s.config.UseTLS {
		err = s.sendWithSTARTTLS(addr, auth, to, message)
	} else {
		err = smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	}

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("📧 [SMTP] Email sent successfully to %s", to)
	return nil
}

// sendWithSTARTTLS sends email with STARTTLS encryption
func (s *SMTPEmailService) sendWithSTARTTLS(addr string, auth smtp.Auth, to string, message []byte) error {
	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Quit()

	tlsconfig := &tls.Config{
		InsecureSkipVerify: false,
		ServerName:         s.config.Host,
	}

	if err = client.StartTLS(tlsconfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	if auth != nil {
		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}

	if err = client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to get data writer: %w", err)
	}

	_, err = w.Write(message)
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return w.Close()
}

// buildMessage creates the email message with proper headers
func (s *SMTPEmailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = to
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Date"] = time.Now().Format(time.RFC1123Z)

	boundary := "boundary_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	headers["Content-Type"] = fmt.Sprintf("multipart/alternative; boundary=%s", boundary)

	message := ""
	for k, v := range headers {
		message += fmt.Sprintf("%s: %s\r\n", k, v)
	}
	message += "\r\n"

	if textBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/plain; charset=UTF-8\r\n"
		message += "\r\n"
		message += textBody + "\r\n"
	}

	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary)
		message += "Content-Type: text/html; charset=UTF-8\r\n"
		message += "\r\n"
		message += htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)

	return []byte(message)
}

// generateContent renders the notification body from its type's template
func (s *SMTPEmailService) generateContent(notification *EmailNotification) (string, string, error) {
	tmpl, exists := s.templates[notification.Type]
	if !exists {
		return s.generateFallbackContent(notification), fmt.Sprintf(
			"Hi %s,\n\nYou have a new notification from MusoBuddy.\n\nBest regards,\nMusoBuddy",
			notification.RecipientName,
		), nil
	}

	data := map[string]interface{}{
		"RecipientName": notification.RecipientName,
		"Data":          notification.TemplateData,
	}

	var htmlBuf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&htmlBuf, "html", data); err != nil {
		return "", "", err
	}

	var textBuf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&textBuf, "text", data); err != nil {
		textBuf.Reset()
		textBuf.WriteString("Please view this email in HTML format.")
	}

	return htmlBuf.String(), textBuf.String(), nil
}

func (s *SMTPEmailService) generateFallbackContent(notification *EmailNotification) string {
	return fmt.Sprintf(`
		<h2>%s</h2>
		<p>Hi %s,</p>
		<p>You have a new notification from MusoBuddy.</p>
		<p>Best regards,<br>MusoBuddy</p>
	`, notification.Subject, notification.RecipientName)
}

// loadDefaultTemplates parses the built-in per-type email templates
func (s *SMTPEmailService) loadDefaultTemplates() error {
	sources := map[NotificationType]string{
		NotificationTypeBookingConfirmed: `
{{define "html"}}
<h2>✅ Booking Confirmed</h2>
<p>Hi {{.RecipientName}},</p>
<p>Your booking for <strong>{{.Data.client_name}}</strong> on <strong>{{.Data.event_date}}</strong> is confirmed.</p>
{{if .Data.venue}}<p>Venue: {{.Data.venue}}</p>{{end}}
{{if .Data.event_time}}<p>Time: {{.Data.event_time}}</p>{{end}}
<p>Fee: £{{printf "%.2f" .Data.fee}}</p>
<p>Best regards,<br>MusoBuddy</p>
{{end}}
{{define "text"}}Hi {{.RecipientName}},

Your booking for {{.Data.client_name}} on {{.Data.event_date}} is confirmed.
Fee: £{{printf "%.2f" .Data.fee}}

Best regards,
MusoBuddy{{end}}`,

		NotificationTypeContractReadyToSign: `
{{define "html"}}
<h2>Your performance contract is ready</h2>
<p>Hi {{.RecipientName}},</p>
<p>Contract #{{.Data.contract_number}} is ready for your signature.</p>
<p>Fee: £{{printf "%.2f" .Data.fee}}</p>
<p><a href="{{.Data.signing_url}}">Review and sign the contract</a></p>
<p>Best regards,<br>MusoBuddy</p>
{{end}}
{{define "text"}}Hi {{.RecipientName}},

Contract #{{.Data.contract_number}} is ready for your signature.
Fee: £{{printf "%.2f" .Data.fee}}

Review and sign: {{.Data.signing_url}}

Best regards,
MusoBuddy{{end}}`,

		NotificationTypeContractSigned: `
{{define "html"}}
<h2>🎉 Contract Signed</h2>
<p>Hi {{.RecipientName}},</p>
<p>Contract #{{.Data.contract_number}} was signed by <strong>{{.Data.signature_name}}</strong>.</p>
<p>The linked booking has been confirmed on your calendar.</p>
<p>Best regards,<br>MusoBuddy</p>
{{end}}
{{define "text"}}Hi {{.RecipientName}},

Contract #{{.Data.contract_number}} was signed by {{.Data.signature_name}}.
The linked booking has been confirmed on your calendar.

Best regards,
MusoBuddy{{end}}`,

		NotificationTypeInvoiceSent: `
{{define "html"}}
<h2>Invoice #{{.Data.invoice_number}}</h2>
<p>Hi {{.RecipientName}},</p>
<p>You have a new invoice for <strong>£{{printf "%.2f" .Data.amount}}</strong>.</p>
{{if .Data.due_date}}<p>Due by: {{.Data.due_date}}</p>{{end}}
<p>Best regards,<br>MusoBuddy</p>
{{end}}
{{define "text"}}Hi {{.RecipientName}},

You have a new invoice for £{{printf "%.2f" .Data.amount}}.
{{if .Data.due_date}}Due by: {{.Data.due_date}}{{end}}

Best regards,
MusoBuddy{{end}}`,
	}

	for notType, src := range sources {
		tmpl, err := template.New(string(notType)).Parse(src)
		if err != nil {
			return fmt.Errorf("template %s: %w", notType, err)
		}
		s.templates[notType] = tmpl
	}

	return nil
}

type MockEmailService struct{}

// NewMockEmailService creates a new mock email service
func NewMockEmailService() *MockEmailService {
	return &MockEmailService{}
}

// SendNotification logs a mock notification
func (s *MockEmailService) SendNotification(ctx context.Context, notification *EmailNotification) error {
	log.Printf("📧 [MOCK] Sending %s notification to %s (%s)",
		notification.Type,
		notification.RecipientEmail,
		notification.RecipientName,
	)
	return nil
}

// SendHTML logs a mock HTML email
func (s *MockEmailService) SendHTML(ctx context.Context, to, subject, htmlBody, textBody string) error {
	log.Printf("📧 [MOCK] To: %s, Subject: %s", to, subject)
	log.Printf("📧 [MOCK] HTML Body: %s", strings.TrimSpace(htmlBody))
	return nil
}
