package skin

import (
	"invoice-studio/src/pkg/invoicedata"
)

/*
minimal is the scandinavian layout: generous whitespace, light type, no
fills, hairline rules only, and color used solely for the issuer name and
the final total.
*/
func minimal(inv invoicedata.Invoice) Node {
	children := make([]Node, 0, 8)

	if logo, hasLogo := logoNode(inv); hasLogo {
		children = append(children, logo)
	}

	children = append(children, minimalHeader(inv), minimalBillTo(inv))

	if inv.Subject != "" {
		children = append(children, TextNode("iv-subject", Style{
			FontSize: 13,
			Color:    TextSecondary,
			Margin:   "0 0 32px 0",
		}, inv.Subject))
	}

	children = append(children, minimalItemsTable(inv), minimalTotals(inv))

	if footer := minimalFooter(inv); len(footer.Children) > 0 {
		children = append(children, footer)
	}

	padding := "72px 64px"
	if inv.Logo.URL == "" {
		padding = "56px 64px"
	}

	return Box("iv-page iv-minimal", Style{
		Background: Background,
		Color:      Text,
		Padding:    padding,
	}, children...)
}

func minimalHeader(inv invoicedata.Invoice) Node {
	issuer := make([]Node, 0, 4)
	issuer = append(issuer, TextNode("iv-business-name", Style{
		FontSize:      18,
		FontWeight:    600,
		LetterSpacing: "0.04em",
		Color:         Primary,
		Margin:        "0 0 6px 0",
	}, inv.Business.Name))

	for _, line := range businessLines(inv) {
		issuer = append(issuer, TextNode("iv-business-line", Style{
			FontSize:   11,
			Color:      TextSecondary,
			WhiteSpace: "pre-line",
			LineHeight: "1.7",
		}, line))
	}

	meta := make([]Node, 0, 3)
	for _, field := range metaFields(inv) {
		meta = append(meta, Box("iv-meta-row", Style{Flex: true, JustifyContent: "flex-end", Gap: 12},
			TextNode("iv-meta-label", Style{
				FontSize:      10,
				TextTransform: "uppercase",
				LetterSpacing: "0.14em",
				Color:         TextSecondary,
			}, field.Label),
			TextNode("iv-meta-value", Style{FontSize: 12, Color: Text}, field.Value),
		))
	}

	return Box("iv-header", Style{
		Flex:           true,
		JustifyContent: "space-between",
		AlignItems:     "flex-start",
		Margin:         "0 0 48px 0",
		KeepTogether:   true,
	},
		Box("iv-business", Style{}, issuer...),
		Box("iv-meta", Style{TextAlign: "right"}, meta...),
	)
}

func minimalBillTo(inv invoicedata.Invoice) Node {
	lines := make([]Node, 0, 5)
	lines = append(lines, TextNode("iv-billto-title", Style{
		FontSize:      10,
		TextTransform: "uppercase",
		LetterSpacing: "0.16em",
		Color:         TextSecondary,
		Margin:        "0 0 10px 0",
	}, "Bill To"))

	for index, line := range billToLines(inv) {
		lineStyle := Style{FontSize: 12, Color: TextSecondary, WhiteSpace: "pre-line", LineHeight: "1.7"}
		if index == 0 {
			lineStyle = Style{FontSize: 14, FontWeight: 600, Color: Text, WhiteSpace: "pre-line", LineHeight: "1.7"}
		}
		lines = append(lines, TextNode("iv-billto-line", lineStyle, line))
	}

	return Box("iv-billto", Style{Margin: "0 0 40px 0", KeepTogether: true}, lines...)
}

func minimalItemsTable(inv invoicedata.Invoice) Node {
	headCells := make([]Node, 0, 4)
	for _, column := range itemColumns() {
		headCells = append(headCells, Cell(Style{
			FontSize:      10,
			TextTransform: "uppercase",
			LetterSpacing: "0.14em",
			TextAlign:     column.Align,
			Color:         TextSecondary,
			Padding:       "0 8px 12px 8px",
			BorderBottom:  Edge{Width: 1, Color: Text},
			Width:         column.Width,
		}, column.Label))
	}

	rows := make([]Node, 0, len(inv.Items)+1)
	rows = append(rows, HeadRow(Style{}, headCells...))

	for _, item := range inv.Items {
		cells := make([]Node, 0, 4)
		for cellIndex, cellText := range itemCells(item) {
			cells = append(cells, Cell(Style{
				FontSize:     12,
				TextAlign:    itemColumns()[cellIndex].Align,
				Color:        Text,
				Padding:      "14px 8px",
				BorderBottom: Edge{Width: 1, Color: Border},
			}, cellText))
		}
		rows = append(rows, BodyRow(Style{}, cells...))
	}

	return Table("iv-items", Style{Width: "100%", Margin: "0 0 32px 0"}, rows...)
}

func minimalTotals(inv invoicedata.Invoice) Node {
	rows := make([]Node, 0, 3)
	for _, total := range totalsRows(inv) {
		rowStyle := Style{Flex: true, JustifyContent: "space-between", Padding: "5px 0"}
		labelStyle := Style{FontSize: 12, Color: TextSecondary}
		valueStyle := Style{FontSize: 12, Color: Text}

		if total.Emphasis {
			rowStyle.BorderTop = Edge{Width: 1, Color: Text}
			rowStyle.Padding = "12px 0 0 0"
			rowStyle.Margin = "6px 0 0 0"
			labelStyle = Style{FontSize: 13, FontWeight: 600, Color: Text}
			valueStyle = Style{FontSize: 16, FontWeight: 600, Color: Primary}
		}

		rows = append(rows, Box("iv-total-row", rowStyle,
			TextNode("iv-total-label", labelStyle, total.Label),
			TextNode("iv-total-value", valueStyle, total.Value),
		))
	}

	return Box("iv-totals-wrap", Style{Flex: true, JustifyContent: "flex-end", Margin: "0 0 48px 0"},
		Box("iv-totals", Style{Width: "40%", KeepTogether: true}, rows...),
	)
}

func minimalFooter(inv invoicedata.Invoice) Node {
	sections := make([]Node, 0, 2)
	for _, section := range footerSections(inv) {
		sections = append(sections, Box("iv-footer-section", Style{Margin: "0 0 20px 0", KeepTogether: true},
			TextNode("iv-footer-title", Style{
				FontSize:      10,
				TextTransform: "uppercase",
				LetterSpacing: "0.16em",
				Color:         TextSecondary,
				Margin:        "0 0 6px 0",
			}, section.Title),
			TextNode("iv-footer-body", Style{
				FontSize:   11,
				Color:      TextSecondary,
				LineHeight: "1.8",
				WhiteSpace: "pre-line",
			}, section.Body),
		))
	}

	return Box("iv-footer", Style{}, sections...)
}
