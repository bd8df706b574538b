package skin

import (
	"invoice-studio/src/pkg/invoicedata"
)

// Shared content rules. Skins differ in geometry, typography and
// decoration only — the information shown, its order, and every computed
// value come from the helpers in this file, so no skin can disagree with
// another about content.

/*
metaField is one labelled header value (invoice number, issue date, due
date). All skins render all three, in this order.
*/
type metaField struct {
	Label string
	Value string
}

func metaFields(inv invoicedata.Invoice) []metaField {
	return []metaField{
		{Label: "Invoice #", Value: inv.InvoiceNumber},
		{Label: "Issue Date", Value: inv.IssueDateDisplay},
		{Label: "Due Date", Value: inv.DueDateDisplay},
	}
}

/*
billToLines returns the "Bill To" block lines in display order: client
name, company, email, address. Fields empty after normalization are
skipped entirely — a missing company never appears as a blank line.
*/
func billToLines(inv invoicedata.Invoice) []string {
	lines := make([]string, 0, 4)
	lines = append(lines, inv.Client.Name)
	for _, optional := range []string{inv.Client.CompanyName, inv.Client.Email, inv.Client.Address} {
		if optional != "" {
			lines = append(lines, optional)
		}
	}
	return lines
}

/*
businessLines returns the issuer contact lines shown under the issuer
name: email, phone, address, each only when present.
*/
func businessLines(inv invoicedata.Invoice) []string {
	lines := make([]string, 0, 3)
	for _, optional := range []string{inv.Business.Email, inv.Business.Phone, inv.Business.Address} {
		if optional != "" {
			lines = append(lines, optional)
		}
	}
	return lines
}

/*
itemColumn describes one of the four line-item table columns.
*/
type itemColumn struct {
	Label string
	Align string
	Width string
}

func itemColumns() []itemColumn {
	return []itemColumn{
		{Label: "Description", Align: "left", Width: ""},
		{Label: "Qty", Align: "right", Width: "12%"},
		{Label: "Rate", Align: "right", Width: "18%"},
		{Label: "Amount", Align: "right", Width: "18%"},
	}
}

/*
itemCells formats one line item into its four display cells. Quantities
print in their minimal form ("10", "2.5"); money always carries two
decimals. Zero rows are formatted like any other — they were kept on
purpose.
*/
func itemCells(item invoicedata.LineItem) []string {
	return []string{
		item.Description,
		item.Quantity.String(),
		invoicedata.FormatAmount(item.Rate),
		invoicedata.FormatAmount(item.Amount),
	}
}

/*
totalRow is one row of the totals block. Emphasis marks the final total,
which skins style more heavily.
*/
type totalRow struct {
	Label    string
	Value    string
	Emphasis bool
}

/*
totalsRows returns the totals block rows: subtotal always, the tax row
only when the template shows tax AND the computed amount is above zero,
and the display total always.
*/
func totalsRows(inv invoicedata.Invoice) []totalRow {
	rows := make([]totalRow, 0, 3)
	rows = append(rows, totalRow{Label: "Subtotal", Value: invoicedata.FormatAmount(inv.Subtotal)})

	if inv.ShowTax && inv.TaxAmount.IsPositive() {
		rows = append(rows, totalRow{Label: inv.TaxLabel, Value: invoicedata.FormatAmount(inv.TaxAmount)})
	}

	rows = append(rows, totalRow{Label: "Total", Value: invoicedata.FormatAmount(inv.DisplayTotal), Emphasis: true})
	return rows
}

/*
footerSection is one footer card (Notes, Payment Terms).
*/
type footerSection struct {
	Title string
	Body  string
}

/*
footerSections returns the footer cards that actually have content. When
both notes and terms are empty the footer contributes nothing at all —
not an empty bordered box.
*/
func footerSections(inv invoicedata.Invoice) []footerSection {
	sections := make([]footerSection, 0, 2)
	if inv.Notes != "" {
		sections = append(sections, footerSection{Title: "Notes", Body: inv.Notes})
	}
	if inv.Terms != "" {
		sections = append(sections, footerSection{Title: "Payment Terms", Body: inv.Terms})
	}
	return sections
}

/*
LogoPixels is the fixed logo size → rendered height mapping, identical on
both targets.
*/
func LogoPixels(size invoicedata.LogoSize) int {
	switch size {
	case invoicedata.LogoSmall:
		return 48
	case invoicedata.LogoLarge:
		return 80
	case invoicedata.LogoExtraLarge:
		return 96
	default:
		return 60
	}
}

/*
logoJustify maps the logo position onto a flex alignment.
*/
func logoJustify(position invoicedata.LogoPosition) string {
	switch position {
	case invoicedata.LogoCenter:
		return "center"
	case invoicedata.LogoRight:
		return "flex-end"
	default:
		return "flex-start"
	}
}

/*
logoNode builds the header logo image, or nothing when no logo is set —
the caller collapses to its no-logo header variant in that case.
*/
func logoNode(inv invoicedata.Invoice) (Node, bool) {
	if inv.Logo.URL == "" {
		return Node{}, false
	}

	return Box("iv-logo", Style{
		Flex:           true,
		JustifyContent: logoJustify(inv.Logo.Position),
		Margin:         "0 0 16px 0",
	},
		Image("iv-logo-img", Style{Height: LogoPixels(inv.Logo.Size)}, inv.Logo.URL, "Logo"),
	), true
}
