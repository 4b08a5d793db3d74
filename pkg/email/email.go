package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

type EmailService struct {
	apiKey    string
	from      string
	adminTo   string
	templates *template.Template
	client    *http.Client
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

type ContactNotificationData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func NewEmailService(apiKey, adminTo string) (*EmailService, error) {
	tmpl, err := template.New("emails").Parse(contactNotificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("could not parse email templates: %w", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "EmlakPark <no-reply@emlakpark.com>",
		adminTo:   adminTo,
		templates: tmpl,
		client:    &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SendContactNotification mails the site admin about a new contact
// message. Failures are the caller's to log; the submitting client
// never sees them.
func (s *EmailService) SendContactNotification(name, fromEmail, phone, subject, message string) error {
	var body bytes.Buffer
	err := s.templates.ExecuteTemplate(&body, "contact_notification", ContactNotificationData{
		Name:    name,
		Email:   fromEmail,
		Phone:   phone,
		Subject: subject,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	return s.send(EmailData{
		From:    s.from,
		To:      s.adminTo,
		Subject: "New contact message: " + subject,
		Html:    body.String(),
	})
}

func (s *EmailService) send(data EmailData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, body)
	}
	return nil
}
