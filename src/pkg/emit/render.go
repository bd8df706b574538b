package emit

import (
	"bytes"
	"html"
	"strings"

	"invoice-studio/src/pkg/colorscheme"
	"invoice-studio/src/pkg/skin"
)

/*
RenderScreen emits the on-screen preview markup for a skin tree: the same
structure as the document target, but every scheme color is a CSS custom
property reference so the host UI can re-theme a live preview by swapping
the variables on the root element.

The call is pure and deterministic: same tree and scheme in, byte
identical markup out.
*/
func RenderScreen(doc skin.Document, scheme colorscheme.Scheme) string {
	var buffer bytes.Buffer

	buffer.WriteString(`<div class="iv-screen" style="` + schemeVariables(scheme) + `">`)
	writeNode(&buffer, doc.Root, screenResolver, false)
	buffer.WriteString(`</div>`)

	return buffer.String()
}

/*
RenderDocument emits the static document markup for a skin tree: fully
inlined styles, literal hex colors, no dependency on any runtime styling
engine. This is the form handed to document assembly and then PDF
conversion, which cannot resolve classes or variables.

All user-supplied text is escaped here; the document path gets no
escaping for free anywhere downstream.
*/
func RenderDocument(doc skin.Document, scheme colorscheme.Scheme) string {
	var buffer bytes.Buffer
	writeNode(&buffer, doc.Root, documentResolver(scheme), true)
	return buffer.String()
}

// schemeVariables renders the scheme as CSS custom properties for the
// screen wrapper element.
func schemeVariables(scheme colorscheme.Scheme) string {
	var css strings.Builder
	css.WriteString("--iv-primary:" + scheme.Primary + ";")
	css.WriteString("--iv-secondary:" + scheme.Secondary + ";")
	css.WriteString("--iv-accent:" + scheme.Accent + ";")
	css.WriteString("--iv-text:" + scheme.Text + ";")
	css.WriteString("--iv-text-secondary:" + scheme.TextSecondary + ";")
	css.WriteString("--iv-background:" + scheme.Background + ";")
	css.WriteString("--iv-border:" + scheme.Border + ";")
	return css.String()
}

// screenResolver maps scheme roles onto their CSS variable references.
func screenResolver(c skin.Color) string {
	switch c.Role {
	case skin.RolePrimary:
		return "var(--iv-primary)"
	case skin.RoleSecondary:
		return "var(--iv-secondary)"
	case skin.RoleAccent:
		return "var(--iv-accent)"
	case skin.RoleText:
		return "var(--iv-text)"
	case skin.RoleTextSecondary:
		return "var(--iv-text-secondary)"
	case skin.RoleBackground:
		return "var(--iv-background)"
	case skin.RoleBorder:
		return "var(--iv-border)"
	default:
		return c.Hex
	}
}

// documentResolver maps scheme roles onto literal hex values from the
// derived scheme.
func documentResolver(scheme colorscheme.Scheme) colorResolver {
	return func(c skin.Color) string {
		switch c.Role {
		case skin.RolePrimary:
			return scheme.Primary
		case skin.RoleSecondary:
			return scheme.Secondary
		case skin.RoleAccent:
			return scheme.Accent
		case skin.RoleText:
			return scheme.Text
		case skin.RoleTextSecondary:
			return scheme.TextSecondary
		case skin.RoleBackground:
			return scheme.Background
		case skin.RoleBorder:
			return scheme.Border
		default:
			return c.Hex
		}
	}
}

/*
writeNode walks the tree recursively, emitting one element per node. Text
and attribute values are escaped exactly once, here.
*/
func writeNode(buffer *bytes.Buffer, node skin.Node, resolve colorResolver, forPrint bool) {
	switch node.Kind {
	case skin.KindTable:
		writeTable(buffer, node, resolve, forPrint)
	case skin.KindImage:
		buffer.WriteString(`<img`)
		writeClassAttr(buffer, node.Class)
		writeStyleAttr(buffer, node.Style, resolve, forPrint)
		buffer.WriteString(` src="` + html.EscapeString(node.Src) + `" alt="` + html.EscapeString(node.Alt) + `"/>`)
	case skin.KindText:
		buffer.WriteString(`<div`)
		writeClassAttr(buffer, node.Class)
		writeStyleAttr(buffer, node.Style, resolve, forPrint)
		buffer.WriteString(`>` + html.EscapeString(node.Text) + `</div>`)
	default: // KindBox
		buffer.WriteString(`<div`)
		writeClassAttr(buffer, node.Class)
		writeStyleAttr(buffer, node.Style, resolve, forPrint)
		buffer.WriteString(`>`)
		for _, child := range node.Children {
			writeNode(buffer, child, resolve, forPrint)
		}
		buffer.WriteString(`</div>`)
	}
}

/*
writeTable emits a real table element: header rows into thead (so the
conversion step repeats them per page), body rows into tbody, one row per
line item in stored order.
*/
func writeTable(buffer *bytes.Buffer, table skin.Node, resolve colorResolver, forPrint bool) {
	buffer.WriteString(`<table`)
	writeClassAttr(buffer, table.Class)

	tableCSS := "border-collapse:collapse;" + serializeStyle(table.Style, resolve, forPrint)
	buffer.WriteString(` style="` + tableCSS + `"`)
	buffer.WriteString(`>`)

	headRows := make([]skin.Node, 0, 1)
	bodyRows := make([]skin.Node, 0, len(table.Children))
	for _, row := range table.Children {
		if row.HeaderRow {
			headRows = append(headRows, row)
		} else {
			bodyRows = append(bodyRows, row)
		}
	}

	if len(headRows) > 0 {
		buffer.WriteString(`<thead>`)
		for _, row := range headRows {
			writeTableRow(buffer, row, resolve, forPrint, true)
		}
		buffer.WriteString(`</thead>`)
	}

	buffer.WriteString(`<tbody>`)
	for _, row := range bodyRows {
		writeTableRow(buffer, row, resolve, forPrint, false)
	}
	buffer.WriteString(`</tbody>`)

	buffer.WriteString(`</table>`)
}

func writeTableRow(buffer *bytes.Buffer, row skin.Node, resolve colorResolver, forPrint bool, isHeader bool) {
	rowCSS := serializeStyle(row.Style, resolve, forPrint)
	if forPrint {
		// Individual rows must never split across a page boundary.
		rowCSS += "page-break-inside:avoid;break-inside:avoid;"
	}

	buffer.WriteString(`<tr style="` + rowCSS + `">`)

	cellTag := "td"
	if isHeader {
		cellTag = "th"
	}

	for _, cell := range row.Children {
		buffer.WriteString(`<` + cellTag)
		writeStyleAttr(buffer, cell.Style, resolve, forPrint)
		buffer.WriteString(`>` + html.EscapeString(cell.Text) + `</` + cellTag + `>`)
	}

	buffer.WriteString(`</tr>`)
}

func writeClassAttr(buffer *bytes.Buffer, class string) {
	if class != "" {
		buffer.WriteString(` class="` + class + `"`)
	}
}

func writeStyleAttr(buffer *bytes.Buffer, style skin.Style, resolve colorResolver, forPrint bool) {
	css := serializeStyle(style, resolve, forPrint)
	if css != "" {
		buffer.WriteString(` style="` + css + `"`)
	}
}
