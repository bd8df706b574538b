// Package render is the narrow entry point the rest of the application
// calls: raw records in, markup for one of the two targets out. It wires
// the normalizer, the color scheme derivation, the skin tree builder and
// the emission backends together in the one correct order.
package render

import (
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"

	"invoice-studio/src/pkg/colorscheme"
	"invoice-studio/src/pkg/emit"
	"invoice-studio/src/pkg/invoicedata"
	"invoice-studio/src/pkg/logo"
	"invoice-studio/src/pkg/printdoc"
	"invoice-studio/src/pkg/skin"
)

/*
Request bundles the raw records an upstream caller fetched for one
render. The caller has already resolved tenant context and validated
required fields; rendering is presentation only.
*/
type Request struct {
	Invoice  invoicedata.InvoiceRecord  `json:"invoice"`
	Client   invoicedata.PartyRecord    `json:"client"`
	Business invoicedata.PartyRecord    `json:"business"`
	Template invoicedata.TemplateRecord `json:"template"`
}

/*
Preview renders the interactive on-screen target: themed markup for the
host UI to embed next to the invoice editor.
*/
func Preview(request Request) (markup string, e *xerr.Error) {
	inv, e := invoicedata.Normalize(request.Invoice, request.Client, request.Business, request.Template)
	if e != nil {
		return "", e
	}

	scheme := colorscheme.Derive(inv.PrimaryColor)
	tree := skin.Build(inv)

	return emit.RenderScreen(tree, scheme), e
}

/*
Document renders the static print target and wraps it into a complete
standalone document, ready for PDF conversion or archival.
*/
func Document(request Request) (document string, e *xerr.Error) {
	inv, e := invoicedata.Normalize(request.Invoice, request.Client, request.Business, request.Template)
	if e != nil {
		return "", e
	}

	return documentFromInvoice(inv), e
}

/*
DocumentWithEmbeddedLogo is Document plus the one piece of I/O the static
target needs to be fully self-contained: the logo is fetched, downscaled
and inlined as a data URI before rendering. A logo that cannot be loaded
degrades to the no-logo header layout with a warning — never a failure.

Document itself stays pure; call this variant when the output leaves the
application (PDF conversion, email, archival).
*/
func DocumentWithEmbeddedLogo(request Request) (document string, e *xerr.Error) {
	inv, e := invoicedata.Normalize(request.Invoice, request.Client, request.Business, request.Template)
	if e != nil {
		return "", e
	}

	if inv.Logo.URL != "" {
		dataURI, embedErr := logo.EmbedDataURI(inv.Logo.URL, skin.LogoPixels(inv.Logo.Size))
		if embedErr != nil {
			tl.Log(
				tl.Warning, palette.PurpleBright, "Logo '%s' could not be embedded, rendering without it: %s",
				inv.Logo.URL, embedErr,
			)
			inv.Logo.URL = ""
		} else {
			inv.Logo.URL = dataURI
		}
	}

	return documentFromInvoice(inv), e
}

func documentFromInvoice(inv invoicedata.Invoice) string {
	scheme := colorscheme.Derive(inv.PrimaryColor)
	tree := skin.Build(inv)
	bodyMarkup := emit.RenderDocument(tree, scheme)

	return printdoc.Assemble(bodyMarkup, inv.InvoiceNumber, scheme)
}
