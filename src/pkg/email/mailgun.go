package email

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/tuumbleweed/xerr"
)

const mailgunSendTimeout = 30 * time.Second

/*
sendWithMailgun sends through Mailgun. MAILGUN_DOMAIN and MAILGUN_API_KEY
must be set in the environment.
*/
func sendWithMailgun(sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	domain := strings.TrimSpace(os.Getenv("MAILGUN_DOMAIN"))
	apiKey := strings.TrimSpace(os.Getenv("MAILGUN_API_KEY"))
	if domain == "" || apiKey == "" {
		err := fmt.Errorf("MAILGUN_DOMAIN or MAILGUN_API_KEY is empty")
		e = xerr.NewError(err, "read Mailgun credentials", subject)
		return e
	}

	mg := mailgun.NewMailgun(domain, apiKey)

	message := mg.NewMessage(sender, subject, textBody, recipients...)
	message.SetHtml(htmlBody)

	for _, attachment := range attachments {
		message.AddBufferAttachment(attachment.Filename, attachment.Data)
	}

	ctx, cancel := context.WithTimeout(context.Background(), mailgunSendTimeout)
	defer cancel()

	_, _, sendErr := mg.Send(ctx, message)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email via Mailgun", subject)
		return e
	}

	return e
}
