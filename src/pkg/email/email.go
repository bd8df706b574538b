// Package email delivers rendered invoices to clients through one of the
// supported providers (Amazon SES, Mailgun, SendGrid). Callers hand over
// ready-made text and HTML bodies plus optional attachments; provider
// credentials come from environment variables.
package email

import (
	"fmt"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

/*
Provider selects the delivery backend.
*/
type Provider string

const (
	ProviderSES      Provider = "ses"
	ProviderMailgun  Provider = "mailgun"
	ProviderSendgrid Provider = "sendgrid"
)

/*
Attachment is one file attached to the outgoing message, typically the
converted invoice PDF.
*/
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

/*
SendMessage sends one message through the chosen provider.

sendEmails is the kill switch: nil or false means dry-run — the message
is logged and dropped, nothing leaves the machine. Useful while testing
render output without spamming real clients.
*/
func SendMessage(provider Provider, sendEmails *bool, sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	if sendEmails == nil || !*sendEmails {
		tl.Log(
			tl.Notice, palette.YellowBold, "Dry run: would send '%s' from '%s' to %d recipient(s) via '%s' (%d attachment(s))",
			subject, sender, len(recipients), provider, len(attachments),
		)
		return e
	}

	if len(recipients) == 0 {
		err := fmt.Errorf("no recipients")
		e = xerr.NewError(err, "send invoice email", subject)
		return e
	}

	tl.Log(
		tl.Notice, palette.BlueBold, "%s '%s' to %d recipient(s) via '%s'",
		"Sending", subject, len(recipients), provider,
	)

	switch provider {
	case ProviderSES:
		e = sendWithSES(sender, recipients, subject, textBody, htmlBody, attachments)
	case ProviderMailgun:
		e = sendWithMailgun(sender, recipients, subject, textBody, htmlBody, attachments)
	case ProviderSendgrid:
		e = sendWithSendgrid(sender, recipients, subject, textBody, htmlBody, attachments)
	default:
		err := fmt.Errorf("unknown provider '%s'", provider)
		e = xerr.NewError(err, "select email provider", string(provider))
	}

	if e == nil {
		tl.Log(tl.Notice1, palette.GreenBold, "%s '%s' via '%s'", "Sent", subject, provider)
	}

	return e
}
