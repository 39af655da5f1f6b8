package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/models"
)

// ResendEmailRequest represents the request payload for Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendEmailResponse represents the response from Resend API
type ResendEmailResponse struct {
	ID string `json:"id"`
}

// ResendErrorResponse represents an error response from Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer sends notification emails through the Resend API.
//
// Requires environment variables:
//   - RESEND_API_KEY: Resend API key
//   - RESEND_FROM_EMAIL: sender address (e.g. "Portfolio <noreply@example.com>")
//   - CONTACT_NOTIFY_EMAIL: where contact-form notifications go
type Mailer struct {
	apiKey      string
	fromEmail   string
	notifyEmail string
	client      *http.Client
}

func NewMailer(cfg map[string]string) *Mailer {
	return &Mailer{
		apiKey:      config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail:   config.GetString(cfg, "RESEND_FROM_EMAIL", ""),
		notifyEmail: config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", ""),
		client:      &http.Client{},
	}
}

// Enabled reports whether the mailer has enough configuration to send.
func (m *Mailer) Enabled() bool {
	return m.apiKey != "" && m.fromEmail != "" && m.notifyEmail != ""
}

// NotifyContactSubmission emails the site owner about a new contact-form
// submission. Failures are logged, never surfaced to the submitter.
func (m *Mailer) NotifyContactSubmission(contact *models.Contact) {
	if !m.Enabled() {
		log.Debug().Msg("Mailer not configured, skipping contact notification")
		return
	}

	subject := fmt.Sprintf("New contact: %s", contact.Subject)
	body := fmt.Sprintf(
		"<h2>New contact form submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		contact.Name, contact.Email, contact.Subject, contact.Message,
	)

	if err := m.send(subject, body, []string{m.notifyEmail}); err != nil {
		log.Error().Err(err).Str("contactID", contact.ID.String()).Msg("Failed to send contact notification")
	}
}

// send posts one email to the Resend API.
func (m *Mailer) send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    m.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse ResendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		log.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		log.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}
