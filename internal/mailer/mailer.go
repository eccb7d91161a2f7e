package mailer

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"swiperent/internal/model"
)

// Mailer sends the property-manager notification when an application is
// submitted. With no API key configured it is a no-op.
type Mailer struct {
	apiKey string
	sender string
}

func New(apiKey, sender string) *Mailer {
	return &Mailer{apiKey: apiKey, sender: sender}
}

func (m *Mailer) Enabled() bool {
	return m.apiKey != ""
}

// SendApplicationNotice emails the property manager about a new pending
// application.
func (m *Mailer) SendApplicationNotice(recipient string, app *model.Application, profile *model.Profile) error {
	from := mail.NewEmail("SwipeRent", m.sender)
	to := mail.NewEmail("", recipient)
	subject := fmt.Sprintf("New rental application for listing %d", app.ApartmentID)

	plain := fmt.Sprintf("%s has applied to your listing %d. %d verified documents are attached to the application.",
		profile.FullName, app.ApartmentID, len(app.Documents))
	html := fmt.Sprintf("<p><strong>%s</strong> has applied to your listing %d.</p><p>%d verified documents are attached to the application.</p>",
		profile.FullName, app.ApartmentID, len(app.Documents))

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}
