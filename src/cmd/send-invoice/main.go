package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"invoice-studio/src/pkg/config"
	"invoice-studio/src/pkg/email"
	"invoice-studio/src/pkg/invoicedata"
	"invoice-studio/src/pkg/pdf"
	"invoice-studio/src/pkg/render"
	"invoice-studio/src/pkg/util"
)

/*
main renders an invoice and emails it to the client.

The HTML body is the full standalone document (with the logo embedded, so
mail clients need no external fetches); -attach-pdf additionally converts
and attaches the PDF. Pass -send to actually deliver; without it the run
is a dry-run that only logs what would go out.
*/
func main() {
	// common flags
	configPath := flag.String("config", "./cfg/config.json", "Path to your configuration file.")

	// program's custom flags
	inputPath := flag.String("input", "", "Path to a JSON file with {invoice, client, business, template} records.")
	provider := flag.String("provider", "mailgun", "Provider to use when sending emails (ses, mailgun, sendgrid).")
	senderAddress := flag.String("sender", "", "Sender's address.")
	recipientAddress := flag.String("recipient", "", "Recipient address(es), comma-separated. Defaults to the client email from the records.")
	attachPDF := flag.Bool("attach-pdf", true, "Convert the invoice to PDF and attach it.")
	send := flag.Bool("send", false, "Actually send. Without this flag the run is a dry-run.")

	// parse and init config
	flag.Parse()
	util.RequiredFlag(inputPath, "input")
	util.RequiredFlag(senderAddress, "sender")
	util.EnsureFlags()
	config.InitializeConfig(*configPath)
	pdf.InitializeConfig()

	checkProviderEnvVars(email.Provider(*provider))

	tl.Log(
		tl.Notice, palette.BlueBold, "%s entrypoint. Input: '%s', provider: '%s'",
		"Running invoice delivery", *inputPath, *provider,
	)

	request, e := loadRenderRequest(*inputPath)
	e.QuitIf("error")

	inv, e := invoicedata.Normalize(request.Invoice, request.Client, request.Business, request.Template)
	e.QuitIf("error")

	recipients := resolveRecipients(*recipientAddress, inv)
	if len(recipients) == 0 {
		tl.Log(tl.Error, palette.RedBold, "%s: no -recipient given and the client record has %s", "Cannot send", "no email")
		os.Exit(1)
	}

	document, e := render.DocumentWithEmbeddedLogo(request)
	e.QuitIf("error")

	attachments := []email.Attachment{}
	if *attachPDF {
		pdfBytes, convertErr := pdf.Convert(document, inv)
		if convertErr != nil {
			// Deliverable invoice beats perfect invoice: send the HTML
			// body alone rather than failing the whole delivery.
			tl.Log(tl.Warning, palette.PurpleBold, "PDF conversion failed, sending without attachment: '%s'", convertErr)
		} else {
			attachments = append(attachments, email.Attachment{
				Filename:    inv.InvoiceNumber + ".pdf",
				ContentType: "application/pdf",
				Data:        pdfBytes,
			})
		}
	}

	subject := fmt.Sprintf("Invoice %s from %s", inv.InvoiceNumber, inv.Business.Name)
	textBody := plainTextSummary(inv)

	e = email.SendMessage(email.Provider(*provider), send, *senderAddress, recipients, subject, textBody, document, attachments)
	e.QuitIf("error")
}

/*
checkProviderEnvVars validates the env vars the chosen provider needs,
so a misconfigured run dies before rendering anything.
*/
func checkProviderEnvVars(provider email.Provider) {
	switch provider {
	case email.ProviderSES:
		config.CheckIfEnvVarsPresent("AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_REGION")
	case email.ProviderMailgun:
		config.CheckIfEnvVarsPresent("MAILGUN_DOMAIN", "MAILGUN_API_KEY")
	case email.ProviderSendgrid:
		config.CheckIfEnvVarsPresent("SENDGRID_API_KEY")
	default:
		tl.Log(tl.Error, palette.RedBold, "Unknown provider: %s", provider)
		os.Exit(1)
	}
}

func loadRenderRequest(inputPath string) (request render.Request, e *xerr.Error) {
	fileBytes, readErr := os.ReadFile(inputPath)
	if readErr != nil {
		e = xerr.NewError(readErr, "read render input file", inputPath)
		return request, e
	}

	unmarshalErr := json.Unmarshal(fileBytes, &request)
	if unmarshalErr != nil {
		e = xerr.NewError(unmarshalErr, "unmarshal render input JSON", inputPath)
		return request, e
	}

	return request, e
}

/*
resolveRecipients uses the -recipient flag when given (comma-separated),
falling back to the client email from the normalized records.
*/
func resolveRecipients(recipientFlag string, inv invoicedata.Invoice) []string {
	trimmed := strings.TrimSpace(recipientFlag)
	if trimmed != "" {
		parts := strings.Split(trimmed, ",")
		recipients := make([]string, 0, len(parts))
		for _, part := range parts {
			if address := strings.TrimSpace(part); address != "" {
				recipients = append(recipients, address)
			}
		}
		return recipients
	}

	if inv.Client.Email != "" {
		return []string{inv.Client.Email}
	}

	return nil
}

/*
plainTextSummary builds the text/plain alternative body for clients that
do not render HTML.
*/
func plainTextSummary(inv invoicedata.Invoice) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Invoice %s from %s\n", inv.InvoiceNumber, inv.Business.Name))
	builder.WriteString(fmt.Sprintf("Issue date: %s\n", inv.IssueDateDisplay))
	builder.WriteString(fmt.Sprintf("Due date: %s\n\n", inv.DueDateDisplay))

	for _, item := range inv.Items {
		builder.WriteString(fmt.Sprintf("%s  x%s  %s\n", item.Description, item.Quantity.String(), invoicedata.FormatAmount(item.Amount)))
	}

	builder.WriteString(fmt.Sprintf("\nSubtotal: %s\n", invoicedata.FormatAmount(inv.Subtotal)))
	if inv.ShowTax && inv.TaxAmount.IsPositive() {
		builder.WriteString(fmt.Sprintf("%s: %s\n", inv.TaxLabel, invoicedata.FormatAmount(inv.TaxAmount)))
	}
	builder.WriteString(fmt.Sprintf("Total: %s\n", invoicedata.FormatAmount(inv.DisplayTotal)))

	return builder.String()
}
