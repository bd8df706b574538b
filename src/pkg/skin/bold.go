package skin

import (
	"invoice-studio/src/pkg/invoicedata"
)

/*
bold is the executive layout: an oversized document title, a dark
secondary sidebar band for the bill-to block, heavy weights throughout,
and an accent-filled totals card.
*/
func bold(inv invoicedata.Invoice) Node {
	children := make([]Node, 0, 8)

	children = append(children, boldHeader(inv), boldBillTo(inv))

	if inv.Subject != "" {
		children = append(children, TextNode("iv-subject", Style{
			FontSize:   16,
			FontWeight: 700,
			Color:      Secondary,
			Margin:     "0 0 24px 0",
		}, inv.Subject))
	}

	children = append(children, boldItemsTable(inv), boldTotals(inv))

	if footer := boldFooter(inv); len(footer.Children) > 0 {
		children = append(children, footer)
	}

	padding := "48px 44px"
	if inv.Logo.URL == "" {
		padding = "36px 44px"
	}

	return Box("iv-page iv-bold", Style{
		Background: Background,
		Color:      Text,
		Padding:    padding,
	}, children...)
}

func boldHeader(inv invoicedata.Invoice) Node {
	issuer := make([]Node, 0, 5)

	if logo, hasLogo := logoNode(inv); hasLogo {
		issuer = append(issuer, logo)
	}

	issuer = append(issuer, TextNode("iv-business-name", Style{
		FontSize:   28,
		FontWeight: 900,
		Color:      Text,
	}, inv.Business.Name))

	for _, line := range businessLines(inv) {
		issuer = append(issuer, TextNode("iv-business-line", Style{
			FontSize:   12,
			FontWeight: 500,
			Color:      TextSecondary,
			WhiteSpace: "pre-line",
			LineHeight: "1.6",
		}, line))
	}

	meta := make([]Node, 0, 4)
	meta = append(meta, TextNode("iv-doc-title", Style{
		FontSize:      44,
		FontWeight:    900,
		LetterSpacing: "-0.02em",
		TextTransform: "uppercase",
		Color:         Primary,
		Margin:        "0 0 12px 0",
	}, "Invoice"))

	for _, field := range metaFields(inv) {
		meta = append(meta, Box("iv-meta-row", Style{Flex: true, JustifyContent: "flex-end", Gap: 10},
			TextNode("iv-meta-label", Style{
				FontSize:      11,
				FontWeight:    800,
				TextTransform: "uppercase",
				LetterSpacing: "0.08em",
				Color:         TextSecondary,
			}, field.Label),
			TextNode("iv-meta-value", Style{FontSize: 13, FontWeight: 800, Color: Text}, field.Value),
		))
	}

	return Box("iv-header", Style{
		Flex:           true,
		JustifyContent: "space-between",
		AlignItems:     "flex-start",
		Padding:        "0 0 24px 0",
		Margin:         "0 0 28px 0",
		BorderBottom:   Edge{Width: 6, Color: Primary},
		KeepTogether:   true,
	},
		Box("iv-business", Style{}, issuer...),
		Box("iv-meta", Style{TextAlign: "right"}, meta...),
	)
}

func boldBillTo(inv invoicedata.Invoice) Node {
	lines := make([]Node, 0, 5)
	lines = append(lines, TextNode("iv-billto-title", Style{
		FontSize:      11,
		FontWeight:    800,
		TextTransform: "uppercase",
		LetterSpacing: "0.14em",
		Color:         Accent,
		Margin:        "0 0 10px 0",
	}, "Bill To"))

	for index, line := range billToLines(inv) {
		lineStyle := Style{FontSize: 13, Color: Hex("#d1d5db"), WhiteSpace: "pre-line", LineHeight: "1.6"}
		if index == 0 {
			lineStyle = Style{FontSize: 18, FontWeight: 800, Color: Background, WhiteSpace: "pre-line", LineHeight: "1.6"}
		}
		lines = append(lines, TextNode("iv-billto-line", lineStyle, line))
	}

	return Box("iv-billto", Style{
		Background:   Secondary,
		BorderRadius: 8,
		Padding:      "24px 28px",
		Margin:       "0 0 28px 0",
		KeepTogether: true,
	}, lines...)
}

func boldItemsTable(inv invoicedata.Invoice) Node {
	headCells := make([]Node, 0, 4)
	for _, column := range itemColumns() {
		headCells = append(headCells, Cell(Style{
			FontSize:      11,
			FontWeight:    900,
			TextTransform: "uppercase",
			LetterSpacing: "0.1em",
			TextAlign:     column.Align,
			Color:         Background,
			Background:    Primary,
			Padding:       "12px 14px",
			Width:         column.Width,
		}, column.Label))
	}

	rows := make([]Node, 0, len(inv.Items)+1)
	rows = append(rows, HeadRow(Style{}, headCells...))

	for rowIndex, item := range inv.Items {
		rowBackground := Color{}
		if rowIndex%2 == 1 {
			rowBackground = Hex("#f9fafb")
		}

		cells := make([]Node, 0, 4)
		for cellIndex, cellText := range itemCells(item) {
			cellStyle := Style{
				FontSize:     13,
				FontWeight:   500,
				TextAlign:    itemColumns()[cellIndex].Align,
				Color:        Text,
				Background:   rowBackground,
				Padding:      "12px 14px",
				BorderBottom: Edge{Width: 1, Color: Border},
			}
			if cellIndex == 3 {
				cellStyle.FontWeight = 700
			}
			cells = append(cells, Cell(cellStyle, cellText))
		}
		rows = append(rows, BodyRow(Style{}, cells...))
	}

	return Table("iv-items", Style{Width: "100%", Margin: "0 0 24px 0"}, rows...)
}

func boldTotals(inv invoicedata.Invoice) Node {
	rows := make([]Node, 0, 3)
	for _, total := range totalsRows(inv) {
		if total.Emphasis {
			rows = append(rows, Box("iv-total-row iv-total-final", Style{
				Flex:           true,
				JustifyContent: "space-between",
				Background:     Primary,
				BorderRadius:   8,
				Padding:        "14px 18px",
				Margin:         "10px 0 0 0",
			},
				TextNode("iv-total-label", Style{
					FontSize:      13,
					FontWeight:    900,
					TextTransform: "uppercase",
					LetterSpacing: "0.08em",
					Color:         Background,
				}, total.Label),
				TextNode("iv-total-value", Style{FontSize: 20, FontWeight: 900, Color: Background}, total.Value),
			))
			continue
		}

		rows = append(rows, Box("iv-total-row", Style{Flex: true, JustifyContent: "space-between", Padding: "7px 18px"},
			TextNode("iv-total-label", Style{FontSize: 13, FontWeight: 600, Color: TextSecondary}, total.Label),
			TextNode("iv-total-value", Style{FontSize: 13, FontWeight: 700, Color: Text}, total.Value),
		))
	}

	return Box("iv-totals-wrap", Style{Flex: true, JustifyContent: "flex-end", Margin: "0 0 32px 0"},
		Box("iv-totals", Style{Width: "50%", KeepTogether: true}, rows...),
	)
}

func boldFooter(inv invoicedata.Invoice) Node {
	sections := make([]Node, 0, 2)
	for _, section := range footerSections(inv) {
		sections = append(sections, Box("iv-footer-section", Style{
			BorderLeft:   Edge{Width: 4, Color: Accent},
			Padding:      "4px 0 4px 16px",
			Margin:       "0 0 16px 0",
			KeepTogether: true,
		},
			TextNode("iv-footer-title", Style{
				FontSize:      11,
				FontWeight:    800,
				TextTransform: "uppercase",
				LetterSpacing: "0.12em",
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

	return Box("iv-footer", Style{}, sections...)
}
