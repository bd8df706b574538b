package skin

import (
	"invoice-studio/src/pkg/invoicedata"
)

/*
modern is the clean layout: a full-width primary band across the top with
the issuer on the left and the invoice metadata reversed out on the
right, an accent-tinted bill-to card, and a borderless table separated by
hairlines.
*/
func modern(inv invoicedata.Invoice) Node {
	children := make([]Node, 0, 8)

	children = append(children, modernBand(inv), modernBillTo(inv))

	if inv.Subject != "" {
		children = append(children, TextNode("iv-subject", Style{
			FontSize:   15,
			FontWeight: 600,
			Color:      Text,
			Margin:     "0 0 20px 0",
		}, inv.Subject))
	}

	children = append(children, modernItemsTable(inv), modernTotals(inv))

	if footer := modernFooter(inv); len(footer.Children) > 0 {
		children = append(children, footer)
	}

	return Box("iv-page iv-modern", Style{
		Background: Background,
		Color:      Text,
	}, children...)
}

func modernBand(inv invoicedata.Invoice) Node {
	issuer := make([]Node, 0, 5)

	if logo, hasLogo := logoNode(inv); hasLogo {
		issuer = append(issuer, logo)
	}

	issuer = append(issuer, TextNode("iv-business-name", Style{
		FontSize:   24,
		FontWeight: 800,
		Color:      Background,
	}, inv.Business.Name))

	for _, line := range businessLines(inv) {
		issuer = append(issuer, TextNode("iv-business-line", Style{
			FontSize:   12,
			Color:      Accent,
			WhiteSpace: "pre-line",
			LineHeight: "1.6",
		}, line))
	}

	meta := make([]Node, 0, 4)
	meta = append(meta, TextNode("iv-doc-title", Style{
		FontSize:      32,
		FontWeight:    800,
		LetterSpacing: "0.06em",
		TextTransform: "uppercase",
		Color:         Background,
		Margin:        "0 0 10px 0",
	}, "Invoice"))

	for _, field := range metaFields(inv) {
		meta = append(meta, Box("iv-meta-row", Style{Flex: true, JustifyContent: "flex-end", Gap: 8},
			TextNode("iv-meta-label", Style{FontSize: 12, Color: Accent}, field.Label),
			TextNode("iv-meta-value", Style{FontSize: 12, FontWeight: 700, Color: Background}, field.Value),
		))
	}

	padding := "40px 48px"
	if inv.Logo.URL == "" {
		padding = "32px 48px"
	}

	return Box("iv-band", Style{
		Flex:           true,
		JustifyContent: "space-between",
		AlignItems:     "flex-start",
		Background:     Primary,
		Padding:        padding,
		KeepTogether:   true,
	},
		Box("iv-business", Style{}, issuer...),
		Box("iv-meta", Style{TextAlign: "right"}, meta...),
	)
}

func modernBillTo(inv invoicedata.Invoice) Node {
	lines := make([]Node, 0, 5)
	lines = append(lines, TextNode("iv-billto-title", Style{
		FontSize:      11,
		FontWeight:    700,
		TextTransform: "uppercase",
		LetterSpacing: "0.12em",
		Color:         Primary,
		Margin:        "0 0 8px 0",
	}, "Bill To"))

	for index, line := range billToLines(inv) {
		lineStyle := Style{FontSize: 13, Color: TextSecondary, WhiteSpace: "pre-line", LineHeight: "1.6"}
		if index == 0 {
			lineStyle = Style{FontSize: 16, FontWeight: 700, Color: Text, WhiteSpace: "pre-line", LineHeight: "1.6"}
		}
		lines = append(lines, TextNode("iv-billto-line", lineStyle, line))
	}

	return Box("iv-billto", Style{
		Background:   Hex("#f9fafb"),
		BorderLeft:   Edge{Width: 4, Color: Primary},
		BorderRadius: 6,
		Padding:      "20px 24px",
		Margin:       "32px 48px 28px 48px",
		KeepTogether: true,
	}, lines...)
}

func modernItemsTable(inv invoicedata.Invoice) Node {
	headCells := make([]Node, 0, 4)
	for _, column := range itemColumns() {
		headCells = append(headCells, Cell(Style{
			FontSize:      11,
			FontWeight:    700,
			TextTransform: "uppercase",
			LetterSpacing: "0.1em",
			TextAlign:     column.Align,
			Color:         Primary,
			Padding:       "0 12px 10px 12px",
			BorderBottom:  Edge{Width: 2, Color: Primary},
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
				Padding:      "12px",
				BorderBottom: Edge{Width: 1, Color: Border},
			}, cellText))
		}
		rows = append(rows, BodyRow(Style{}, cells...))
	}

	return Box("iv-items-wrap", Style{Margin: "0 48px 24px 48px"},
		Table("iv-items", Style{Width: "100%"}, rows...),
	)
}

func modernTotals(inv invoicedata.Invoice) Node {
	rows := make([]Node, 0, 3)
	for _, total := range totalsRows(inv) {
		if total.Emphasis {
			rows = append(rows, Box("iv-total-row iv-total-final", Style{
				Flex:           true,
				JustifyContent: "space-between",
				Background:     Primary,
				BorderRadius:   6,
				Padding:        "12px 16px",
				Margin:         "8px 0 0 0",
			},
				TextNode("iv-total-label", Style{FontSize: 14, FontWeight: 700, Color: Background}, total.Label),
				TextNode("iv-total-value", Style{FontSize: 16, FontWeight: 800, Color: Background}, total.Value),
			))
			continue
		}

		rows = append(rows, Box("iv-total-row", Style{Flex: true, JustifyContent: "space-between", Padding: "6px 16px"},
			TextNode("iv-total-label", Style{FontSize: 13, Color: TextSecondary}, total.Label),
			TextNode("iv-total-value", Style{FontSize: 13, FontWeight: 600, Color: Text}, total.Value),
		))
	}

	return Box("iv-totals-wrap", Style{Flex: true, JustifyContent: "flex-end", Margin: "0 48px 32px 48px"},
		Box("iv-totals", Style{Width: "45%", KeepTogether: true}, rows...),
	)
}

func modernFooter(inv invoicedata.Invoice) Node {
	sections := make([]Node, 0, 2)
	for _, section := range footerSections(inv) {
		sections = append(sections, Box("iv-footer-section", Style{
			Background:   Hex("#f9fafb"),
			BorderRadius: 6,
			Padding:      "16px 20px",
			Margin:       "0 0 12px 0",
			KeepTogether: true,
		},
			TextNode("iv-footer-title", Style{
				FontSize:      11,
				FontWeight:    700,
				TextTransform: "uppercase",
				LetterSpacing: "0.12em",
				Color:         Primary,
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

	return Box("iv-footer", Style{Padding: "0 48px 40px 48px"}, sections...)
}
