package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/yashsingh9651/arvan-backend/config"
)

// EmailSender relays transactional email. Interface so tests can stub it.
type EmailSender interface {
	SendContactForm(name, email, phone, message string) error
}

// SendgridSender delivers mail through the SendGrid v3 API.
type SendgridSender struct {
	client *sendgrid.Client
	from   string
	to     string
}

func NewSendgridSender(cfg *config.Config) *SendgridSender {
	return &SendgridSender{
		client: sendgrid.NewSendClient(cfg.SendgridAPIKey),
		from:   cfg.SenderEmail,
		to:     cfg.ContactEmail,
	}
}

// SendContactForm forwards a storefront contact-form submission to the shop inbox.
func (s *SendgridSender) SendContactForm(name, email, phone, message string) error {
	html := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h2>New Form Submission Received</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p style="background: #f1f1f1; padding: 10px; border-radius: 4px;">%s</p>
		</div>
	`, name, email, phone, message)

	from := mail.NewEmail("Arvan Store", s.from)
	to := mail.NewEmail("Arvan Support", s.to)
	msg := mail.NewSingleEmail(from, "New Form Submission Received", to, message, html)

	resp, err := s.client.Send(msg)
	if err != nil {
		log.Printf("Error sending contact email: %v", err)
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message, status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
