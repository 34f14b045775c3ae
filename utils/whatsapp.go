package utils

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/yashsingh9651/arvan-backend/config"
)

// Messenger dispatches customer-facing WhatsApp messages. It is an interface
// so tests can substitute a fake for the Twilio transport.
type Messenger interface {
	SendOTP(code, mobile string) (string, error)
	SendOrderUpdate(name, item, status, mobile string) error
}

// WhatsAppSender sends messages through the Twilio WhatsApp API.
type WhatsAppSender struct {
	client *twilio.RestClient
	from   string
}

func NewWhatsAppSender(cfg *config.Config) (*WhatsAppSender, error) {
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" || cfg.TwilioWhatsAppNum == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})

	return &WhatsAppSender{client: client, from: cfg.TwilioWhatsAppNum}, nil
}

// SendOTP delivers the verification code and returns the provider message SID.
func (w *WhatsAppSender) SendOTP(code, mobile string) (string, error) {
	body := fmt.Sprintf("%s is your Arvan verification code. Do not share it with anyone.", code)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(w.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", mobile))
	params.SetBody(body)

	resp, err := w.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send OTP to %s: %v", mobile, err)
		return "", err
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	return sid, nil
}

// SendOrderUpdate notifies a customer that their order moved to a new status.
func (w *WhatsAppSender) SendOrderUpdate(name, item, status, mobile string) error {
	body := fmt.Sprintf("Hi %s, your order for %s is now %s. Team Arvan.", name, item, status)

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(w.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", mobile))
	params.SetBody(body)

	if _, err := w.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send order update to %s: %v", mobile, err)
		return err
	}
	return nil
}
