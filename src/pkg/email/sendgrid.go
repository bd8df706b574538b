package email

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/tuumbleweed/xerr"
)

/*
sendWithSendgrid sends through SendGrid. SENDGRID_API_KEY must be set in
the environment.
*/
func sendWithSendgrid(sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	apiKey := strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	if apiKey == "" {
		err := fmt.Errorf("SENDGRID_API_KEY is empty")
		e = xerr.NewError(err, "read SendGrid credentials", subject)
		return e
	}

	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail("", sender))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	for _, recipient := range recipients {
		personalization.AddTos(mail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)

	message.AddContent(
		mail.NewContent("text/plain", textBody),
		mail.NewContent("text/html", htmlBody),
	)

	for _, attachment := range attachments {
		contentType := attachment.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		sgAttachment := mail.NewAttachment()
		sgAttachment.SetFilename(attachment.Filename)
		sgAttachment.SetType(contentType)
		sgAttachment.SetDisposition("attachment")
		sgAttachment.SetContent(base64.StdEncoding.EncodeToString(attachment.Data))
		message.AddAttachment(sgAttachment)
	}

	client := sendgrid.NewSendClient(apiKey)
	response, sendErr := client.Send(message)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email via SendGrid", subject)
		return e
	}

	if response.StatusCode >= http.StatusBadRequest {
		err := fmt.Errorf("sendgrid responded with status %d: %s", response.StatusCode, response.Body)
		e = xerr.NewError(err, "send email via SendGrid", subject)
		return e
	}

	return e
}
