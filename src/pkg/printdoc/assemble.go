// Package printdoc wraps document-target markup in a complete standalone
// HTML document: embedded typography, color preservation directives and
// page-break control for the paginated artifact. The output depends on
// nothing at conversion time except an optional font CDN fetch, which
// degrades to the system font stack when unreachable.
package printdoc

import (
	"bytes"
	"html"

	"invoice-studio/src/pkg/colorscheme"
)

const fontStylesheetURL = "https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600;700;800;900&display=swap"

const fontStack = `'Inter',-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Arial,sans-serif`

/*
Assemble wraps rendered document-target markup into one self-contained
HTML string ready for PDF conversion.

The embedded stylesheet covers every layout primitive the four skins use
and declares the pagination rules: table headers repeat per page and are
never orphaned from the first body row, line-item rows never split across
a page boundary, and the totals block, footer sections and card-like
containers are kept atomic. Printed backgrounds and colors are forced on
so the converter does not strip the theme.
*/
func Assemble(bodyMarkup string, invoiceNumber string, scheme colorscheme.Scheme) string {
	var buffer bytes.Buffer

	buffer.WriteString("<!doctype html>")
	buffer.WriteString(`<html lang="en">`)
	buffer.WriteString("<head>")
	buffer.WriteString(`<meta charset="utf-8">`)
	buffer.WriteString(`<title>Invoice ` + html.EscapeString(invoiceNumber) + `</title>`)
	buffer.WriteString(`<link rel="stylesheet" href="` + fontStylesheetURL + `">`)
	buffer.WriteString(`<style>` + printStylesheet(scheme) + `</style>`)
	buffer.WriteString("</head>")
	buffer.WriteString("<body>")
	buffer.WriteString(bodyMarkup)
	buffer.WriteString("</body>")
	buffer.WriteString("</html>")

	return buffer.String()
}

/*
printStylesheet returns the embedded stylesheet. Everything here is
structural or pagination-related; per-element visual styling already
arrived inlined from the document emission target.
*/
func printStylesheet(scheme colorscheme.Scheme) string {
	var css bytes.Buffer

	css.WriteString(`*{box-sizing:border-box;margin:0;padding:0;}`)
	css.WriteString(`html,body{background-color:` + scheme.Background + `;}`)
	css.WriteString(`body{font-family:` + fontStack + `;color:` + scheme.Text + `;`)
	css.WriteString(`-webkit-print-color-adjust:exact;print-color-adjust:exact;}`)
	css.WriteString(`img{max-width:100%;}`)

	// Page geometry for the converter.
	css.WriteString(`@page{size:A4;margin:0;}`)
	css.WriteString(`.iv-page{width:210mm;min-height:297mm;margin:0 auto;}`)

	// Pagination control:
	// - thead repeats on every page and stays glued to at least one row
	// - a line-item row never splits mid-row
	// - totals, footer cards and bordered cards stay atomic
	css.WriteString(`thead{display:table-header-group;}`)
	css.WriteString(`tr{page-break-inside:avoid;break-inside:avoid;}`)
	css.WriteString(`thead tr{page-break-after:avoid;break-after:avoid;}`)
	css.WriteString(`.iv-totals,.iv-footer-section,.iv-billto,.iv-header,.iv-band{page-break-inside:avoid;break-inside:avoid;}`)

	return css.String()
}
