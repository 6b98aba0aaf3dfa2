package utils

import (
	"context"
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/VinukaThejana/immerzo/config"
	"github.com/VinukaThejana/immerzo/services"
	"github.com/VinukaThejana/immerzo/templates"
	"github.com/resendlabs/resend-go"
)

const (
	resendEmailFrom = "onboarding@resend.dev"
	resendReplyFrom = "onboarding@resend.dev"
)

// Email is a struct that contains email related operations
type Email struct {
	Env    *config.Env
	client *resend.Client
}

// NewEmail returns the lead alert sender, nil when no api key or recipient is configured
func NewEmail(env *config.Env) *Email {
	if env.ResendAPIKey == "" || env.LeadAlertEmail == "" {
		return nil
	}

	return &Email{
		Env:    env,
		client: resend.NewClient(env.ResendAPIKey),
	}
}

// Notify is a function that is used to email the sales inbox about a new lead
func (e *Email) Notify(ctx context.Context, lead services.Lead) error {
	emailTemplate, err := templates.Email{}.GetLeadAlertTmpl(templates.LeadAlert{
		Kind:    lead.Kind,
		ID:      lead.ID,
		Name:    lead.Name,
		Email:   lead.Email,
		Phone:   lead.Phone,
		Details: lead.Details,
	})
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    resendEmailFrom,
		To:      []string{e.Env.LeadAlertEmail},
		Html:    emailTemplate,
		Subject: fmt.Sprintf("New %s inquiry from %s", lead.Kind, lead.Name),
		ReplyTo: resendReplyFrom,
	}
	send, err := e.client.Emails.Send(params)
	if err != nil {
		return err
	}

	logger.Log(fmt.Sprintf("[ %s ] : Lead alert sent", send.Id))
	return nil
}
