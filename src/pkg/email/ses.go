package email

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

const sesSendTimeout = 30 * time.Second

/*
sendWithSES sends through Amazon SES v2. Credentials and region come from
the standard AWS environment (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
AWS_REGION).

The simple content API carries no attachments; when some were requested
we deliver the message anyway and warn, rather than fail the send.
*/
func sendWithSES(sender string, recipients []string, subject string, textBody string, htmlBody string, attachments []Attachment) (e *xerr.Error) {
	if len(attachments) > 0 {
		tl.Log(
			tl.Warning, palette.PurpleBright, "SES provider %s %d attachment(s); use '%s' or '%s' when attaching the PDF",
			"drops", len(attachments), ProviderMailgun, ProviderSendgrid,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), sesSendTimeout)
	defer cancel()

	awsCfg, loadErr := awsconfig.LoadDefaultConfig(ctx)
	if loadErr != nil {
		e = xerr.NewError(loadErr, "load AWS configuration", subject)
		return e
	}

	client := sesv2.NewFromConfig(awsCfg)

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(sender),
		Destination: &sestypes.Destination{
			ToAddresses: recipients,
		},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body: &sestypes.Body{
					Text: &sestypes.Content{Data: aws.String(textBody)},
					Html: &sestypes.Content{Data: aws.String(htmlBody)},
				},
			},
		},
	}

	_, sendErr := client.SendEmail(ctx, input)
	if sendErr != nil {
		e = xerr.NewError(sendErr, "send email via SES", subject)
		return e
	}

	return e
}
