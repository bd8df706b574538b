package pdf

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
	"github.com/tuumbleweed/xerr"

	"invoice-studio/src/pkg/invoicedata"
)

/*
convertWithGofpdf is the last-resort, always-available method: a plain
typographic rendering built directly from the normalized invoice with
gofpdf. It ignores the skin entirely — when neither Chrome nor
wkhtmltopdf exists on the host, a correct unstyled invoice still beats
no invoice (the document is often the final customer-facing artifact).
*/
func convertWithGofpdf(_ string, inv invoicedata.Invoice) (pdfBytes []byte, e *xerr.Error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(18, 20, 18)
	doc.AddPage()

	// Issuer block.
	doc.SetFont("Helvetica", "B", 18)
	doc.Cell(0, 9, inv.Business.Name)
	doc.Ln(9)

	doc.SetFont("Helvetica", "", 9)
	doc.SetTextColor(107, 114, 128)
	for _, line := range []string{inv.Business.Email, inv.Business.Phone} {
		if line != "" {
			doc.Cell(0, 5, line)
			doc.Ln(5)
		}
	}
	if inv.Business.Address != "" {
		doc.MultiCell(0, 5, inv.Business.Address, "", "L", false)
	}
	doc.Ln(4)

	// Invoice metadata.
	doc.SetTextColor(17, 24, 39)
	doc.SetFont("Helvetica", "B", 11)
	doc.Cell(0, 6, "Invoice # "+inv.InvoiceNumber)
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 9)
	doc.Cell(0, 5, "Issue Date: "+inv.IssueDateDisplay)
	doc.Ln(5)
	doc.Cell(0, 5, "Due Date: "+inv.DueDateDisplay)
	doc.Ln(9)

	// Bill To.
	doc.SetFont("Helvetica", "B", 10)
	doc.Cell(0, 6, "Bill To")
	doc.Ln(6)
	doc.SetFont("Helvetica", "", 9)
	billToLines := []string{inv.Client.Name, inv.Client.CompanyName, inv.Client.Email}
	for _, line := range billToLines {
		if line != "" {
			doc.Cell(0, 5, line)
			doc.Ln(5)
		}
	}
	if inv.Client.Address != "" {
		doc.MultiCell(0, 5, inv.Client.Address, "", "L", false)
	}
	doc.Ln(4)

	if inv.Subject != "" {
		doc.SetFont("Helvetica", "I", 10)
		doc.MultiCell(0, 5, inv.Subject, "", "L", false)
		doc.Ln(3)
	}

	// Line items.
	columnWidths := []float64{94, 20, 30, 30}
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(229, 231, 235)
	doc.CellFormat(columnWidths[0], 7, "Description", "1", 0, "L", true, 0, "")
	doc.CellFormat(columnWidths[1], 7, "Qty", "1", 0, "R", true, 0, "")
	doc.CellFormat(columnWidths[2], 7, "Rate", "1", 0, "R", true, 0, "")
	doc.CellFormat(columnWidths[3], 7, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 9)
	for _, item := range inv.Items {
		doc.CellFormat(columnWidths[0], 7, item.Description, "1", 0, "L", false, 0, "")
		doc.CellFormat(columnWidths[1], 7, item.Quantity.String(), "1", 0, "R", false, 0, "")
		doc.CellFormat(columnWidths[2], 7, invoicedata.FormatAmount(item.Rate), "1", 0, "R", false, 0, "")
		doc.CellFormat(columnWidths[3], 7, invoicedata.FormatAmount(item.Amount), "1", 1, "R", false, 0, "")
	}
	doc.Ln(3)

	// Totals, right-aligned. Same visibility rules as the skins: tax only
	// when shown and above zero, total equals the display total.
	totalsIndent := columnWidths[0] + columnWidths[1]
	writeTotal := func(label string, value string, heavy bool) {
		style := ""
		if heavy {
			style = "B"
		}
		doc.SetFont("Helvetica", style, 10)
		doc.Cell(totalsIndent, 6, "")
		doc.CellFormat(columnWidths[2], 6, label, "", 0, "R", false, 0, "")
		doc.CellFormat(columnWidths[3], 6, value, "", 1, "R", false, 0, "")
	}

	writeTotal("Subtotal", invoicedata.FormatAmount(inv.Subtotal), false)
	if inv.ShowTax && inv.TaxAmount.IsPositive() {
		writeTotal(inv.TaxLabel, invoicedata.FormatAmount(inv.TaxAmount), false)
	}
	writeTotal("Total", invoicedata.FormatAmount(inv.DisplayTotal), true)
	doc.Ln(6)

	// Footer sections.
	writeSection := func(title string, body string) {
		if body == "" {
			return
		}
		doc.SetFont("Helvetica", "B", 9)
		doc.Cell(0, 5, title)
		doc.Ln(5)
		doc.SetFont("Helvetica", "", 9)
		doc.SetTextColor(107, 114, 128)
		doc.MultiCell(0, 5, body, "", "L", false)
		doc.SetTextColor(17, 24, 39)
		doc.Ln(2)
	}
	writeSection("Notes", inv.Notes)
	writeSection("Payment Terms", inv.Terms)

	var pdfBuffer bytes.Buffer
	outputErr := doc.Output(&pdfBuffer)
	if outputErr != nil {
		e = xerr.NewError(outputErr, "render gofpdf fallback document", inv.InvoiceNumber)
		return nil, e
	}

	return pdfBuffer.Bytes(), e
}
