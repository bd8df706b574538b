package skin

import (
	"invoice-studio/src/pkg/invoicedata"
)

/*
classic is the traditional letterhead layout: centered issuer block, a
heavy double rule under the header, fully ruled items table, right-hand
totals column. It is also the fallback skin for unknown template types,
so it must stay the most conservative of the four.
*/
func classic(inv invoicedata.Invoice) Node {
	children := make([]Node, 0, 8)

	if logo, hasLogo := logoNode(inv); hasLogo {
		children = append(children, logo)
	}

	children = append(children,
		classicHeader(inv),
		classicParties(inv),
	)

	if inv.Subject != "" {
		children = append(children, TextNode("iv-subject", Style{
			FontSize:   14,
			FontStyle:  "italic",
			Color:      TextSecondary,
			Margin:     "0 0 20px 0",
		}, inv.Subject))
	}

	children = append(children, classicItemsTable(inv), classicTotals(inv))

	if footer := classicFooter(inv); len(footer.Children) > 0 {
		children = append(children, footer)
	}

	padding := "56px 48px"
	if inv.Logo.URL == "" {
		padding = "40px 48px" // no-logo variant: no reserved space up top
	}

	return Box("iv-page iv-classic", Style{
		Background: Background,
		Color:      Text,
		Padding:    padding,
	}, children...)
}

func classicHeader(inv invoicedata.Invoice) Node {
	issuer := make([]Node, 0, 4)
	issuer = append(issuer, TextNode("iv-business-name", Style{
		FontSize:      26,
		FontWeight:    700,
		Color:         Primary,
		LetterSpacing: "0.02em",
	}, inv.Business.Name))

	for _, line := range businessLines(inv) {
		issuer = append(issuer, TextNode("iv-business-line", Style{
			FontSize:   12,
			Color:      TextSecondary,
			WhiteSpace: "pre-line",
			LineHeight: "1.6",
		}, line))
	}

	meta := make([]Node, 0, 3)
	for _, field := range metaFields(inv) {
		meta = append(meta, Box("iv-meta-row", Style{Flex: true, JustifyContent: "flex-end", Gap: 8},
			TextNode("iv-meta-label", Style{FontSize: 12, FontWeight: 700, Color: Text}, field.Label+":"),
			TextNode("iv-meta-value", Style{FontSize: 12, Color: TextSecondary}, field.Value),
		))
	}

	return Box("iv-header", Style{
		Flex:           true,
		JustifyContent: "space-between",
		AlignItems:     "flex-start",
		Padding:        "0 0 20px 0",
		Margin:         "0 0 28px 0",
		BorderBottom:   Edge{Width: 3, Color: Primary},
		KeepTogether:   true,
	},
		Box("iv-business", Style{}, issuer...),
		Box("iv-meta", Style{TextAlign: "right"}, meta...),
	)
}

func classicParties(inv invoicedata.Invoice) Node {
	lines := make([]Node, 0, 5)
	lines = append(lines, TextNode("iv-billto-title", Style{
		FontSize:      11,
		FontWeight:    700,
		LetterSpacing: "0.1em",
		TextTransform: "uppercase",
		Color:         Secondary,
		Margin:        "0 0 8px 0",
	}, "Bill To"))

	for index, line := range billToLines(inv) {
		lineStyle := Style{FontSize: 13, Color: Text, WhiteSpace: "pre-line", LineHeight: "1.6"}
		if index == 0 {
			lineStyle.FontWeight = 700
			lineStyle.FontSize = 15
		}
		lines = append(lines, TextNode("iv-billto-line", lineStyle, line))
	}

	return Box("iv-billto", Style{Margin: "0 0 28px 0", KeepTogether: true}, lines...)
}

func classicItemsTable(inv invoicedata.Invoice) Node {
	headCells := make([]Node, 0, 4)
	for _, column := range itemColumns() {
		headCells = append(headCells, Cell(Style{
			FontSize:      11,
			FontWeight:    700,
			TextTransform: "uppercase",
			LetterSpacing: "0.08em",
			TextAlign:     column.Align,
			Color:         Background,
			Background:    Secondary,
			Padding:       "10px 12px",
			Width:         column.Width,
		}, column.Label))
	}

	rows := make([]Node, 0, len(inv.Items)+1)
	rows = append(rows, HeadRow(Style{}, headCells...))

	for _, item := range inv.Items {
		cells := make([]Node, 0, 4)
		for cellIndex, cellText := range itemCells(item) {
			cells = append(cells, Cell(Style{
				FontSize:     13,
				TextAlign:    itemColumns()[cellIndex].Align,
				Color:        Text,
				Padding:      "10px 12px",
				BorderBottom: Edge{Width: 1, Color: Border},
			}, cellText))
		}
		rows = append(rows, BodyRow(Style{}, cells...))
	}

	return Table("iv-items", Style{Width: "100%", Margin: "0 0 24px 0"}, rows...)
}

func classicTotals(inv invoicedata.Invoice) Node {
	rows := make([]Node, 0, 3)
	for _, total := range totalsRows(inv) {
		rowStyle := Style{Flex: true, JustifyContent: "space-between", Padding: "6px 0"}
		labelStyle := Style{FontSize: 13, Color: TextSecondary}
		valueStyle := Style{FontSize: 13, Color: Text}

		if total.Emphasis {
			rowStyle.BorderTop = Edge{Width: 2, Color: Primary}
			rowStyle.Padding = "10px 0 0 0"
			labelStyle = Style{FontSize: 15, FontWeight: 700, Color: Text}
			valueStyle = Style{FontSize: 15, FontWeight: 700, Color: Primary}
		}

		rows = append(rows, Box("iv-total-row", rowStyle,
			TextNode("iv-total-label", labelStyle, total.Label),
			TextNode("iv-total-value", valueStyle, total.Value),
		))
	}

	return Box("iv-totals-wrap", Style{Flex: true, JustifyContent: "flex-end", Margin: "0 0 32px 0"},
		Box("iv-totals", Style{Width: "45%", KeepTogether: true}, rows...),
	)
}

func classicFooter(inv invoicedata.Invoice) Node {
	sections := make([]Node, 0, 2)
	for _, section := range footerSections(inv) {
		sections = append(sections, Box("iv-footer-section", Style{Margin: "0 0 16px 0", KeepTogether: true},
			TextNode("iv-footer-title", Style{
				FontSize:      11,
				FontWeight:    700,
				TextTransform: "uppercase",
				LetterSpacing: "0.1em",
				Color:         Secondary,
				Margin:        "0 0 6px 0",
			}, section.Title),
			TextNode("iv-footer-body", Style{
				FontSize:   12,
				Color:      TextSecondary,
				LineHeight: "1.7",
				WhiteSpace: "pre-line",
			}, section.Body),
		))
	}

	return Box("iv-footer", Style{
		BorderTop: Edge{Width: 1, Color: Border},
		Padding:   "20px 0 0 0",
	}, sections...)
}
