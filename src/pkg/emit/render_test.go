package emit

import (
	"regexp"
	"strings"
	"testing"

	"invoice-studio/src/pkg/colorscheme"
	"invoice-studio/src/pkg/invoicedata"
	"invoice-studio/src/pkg/skin"
)

func testInvoice(templateType string) invoicedata.Invoice {
	inv, e := invoicedata.Normalize(
		invoicedata.InvoiceRecord{
			InvoiceNumber: "INV-042",
			IssueDate:     "2025-01-05",
			DueDate:       "2025-02-04",
			Notes:         "Thanks!",
			Terms:         "Net 30",
			Items: []invoicedata.LineItemRecord{
				{ID: "li-1", Description: "Consulting", Quantity: 10, Rate: 150},
			},
		},
		invoicedata.PartyRecord{Name: "Acme Corp", Email: "billing@acme.test"},
		invoicedata.PartyRecord{Name: "Jane Doe", CompanyName: "Doe Design Studio"},
		invoicedata.TemplateRecord{
			TemplateType: templateType,
			ColorScheme:  "#1e40af",
			ShowTax:      true,
			TaxRate:      0.085,
		},
	)
	if e != nil {
		panic(e)
	}
	return inv
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// visibleText strips markup and collapses whitespace, leaving only what a
// reader of either target actually sees.
func visibleText(markup string) string {
	stripped := tagPattern.ReplaceAllString(markup, " ")
	return strings.Join(strings.Fields(stripped), " ")
}

func TestRender_Idempotent(t *testing.T) {
	inv := testInvoice("classic")
	scheme := colorscheme.Derive(inv.PrimaryColor)
	doc := skin.Build(inv)

	if RenderScreen(doc, scheme) != RenderScreen(doc, scheme) {
		t.Error("RenderScreen is not byte-stable across calls")
	}
	if RenderDocument(doc, scheme) != RenderDocument(doc, scheme) {
		t.Error("RenderDocument is not byte-stable across calls")
	}
}

func TestRender_ScreenAndDocumentShowIdenticalText(t *testing.T) {
	for _, templateType := range []string{"classic", "modern", "minimal", "bold"} {
		t.Run(templateType, func(t *testing.T) {
			inv := testInvoice(templateType)
			scheme := colorscheme.Derive(inv.PrimaryColor)
			doc := skin.Build(inv)

			screenText := visibleText(RenderScreen(doc, scheme))
			documentText := visibleText(RenderDocument(doc, scheme))
			if screenText != documentText {
				t.Errorf("targets disagree on visible text:\nscreen:   %s\ndocument: %s", screenText, documentText)
			}

			for _, want := range []string{"INV-042", "Acme Corp", "$1500.00", "$1627.50", "Tax (8.5%)"} {
				if !strings.Contains(documentText, want) {
					t.Errorf("document text is missing %q", want)
				}
			}
		})
	}
}

func TestRender_LegacyAliasMatchesNewName(t *testing.T) {
	aliases := map[string]string{
		"traditional-corporate":  "classic",
		"modern-creative":        "modern",
		"minimal-scandinavian":   "minimal",
		"executive-professional": "bold",
	}

	for legacy, current := range aliases {
		legacyInv := testInvoice(legacy)
		currentInv := testInvoice(current)
		scheme := colorscheme.Derive(currentInv.PrimaryColor)

		legacyMarkup := RenderDocument(skin.Build(legacyInv), scheme)
		currentMarkup := RenderDocument(skin.Build(currentInv), scheme)
		if legacyMarkup != currentMarkup {
			t.Errorf("alias %q does not render byte-identical to %q", legacy, current)
		}
	}
}

func TestRender_ColorResolution(t *testing.T) {
	inv := testInvoice("classic")
	scheme := colorscheme.Derive(inv.PrimaryColor)
	doc := skin.Build(inv)

	screen := RenderScreen(doc, scheme)
	document := RenderDocument(doc, scheme)

	if !strings.Contains(screen, "--iv-primary:#1e40af;") {
		t.Error("screen wrapper is missing the primary custom property")
	}
	if !strings.Contains(screen, "var(--iv-primary)") {
		t.Error("screen markup never references the primary variable")
	}

	if strings.Contains(document, "var(--iv-") {
		t.Error("document markup references CSS variables; must inline literal hex")
	}
	if !strings.Contains(document, "#1e40af") {
		t.Error("document markup is missing the literal primary hex")
	}
}

func TestRender_PrintBreakHintsOnlyInDocument(t *testing.T) {
	inv := testInvoice("classic")
	scheme := colorscheme.Derive(inv.PrimaryColor)
	doc := skin.Build(inv)

	if strings.Contains(RenderScreen(doc, scheme), "page-break-inside") {
		t.Error("screen markup carries pagination hints")
	}
	if !strings.Contains(RenderDocument(doc, scheme), "page-break-inside:avoid") {
		t.Error("document markup is missing row break-avoidance")
	}
}

func TestRender_TableStructure(t *testing.T) {
	inv := testInvoice("classic")
	scheme := colorscheme.Derive(inv.PrimaryColor)
	document := RenderDocument(skin.Build(inv), scheme)

	for _, want := range []string{"<thead>", "<tbody>", "border-collapse:collapse;", "<th", "<td"} {
		if !strings.Contains(document, want) {
			t.Errorf("document markup is missing %q", want)
		}
	}
}

func TestRender_EscapesUserText(t *testing.T) {
	inv := testInvoice("classic")
	inv.Client.Name = `<script>alert("x")</script>`
	inv.Notes = "Fish & Chips <b>bold</b>"
	doc := skin.Build(inv)
	scheme := colorscheme.Derive(inv.PrimaryColor)

	for _, markup := range []string{RenderScreen(doc, scheme), RenderDocument(doc, scheme)} {
		if strings.Contains(markup, "<script>") {
			t.Error("markup contains unescaped script tag")
		}
		if !strings.Contains(markup, "&lt;script&gt;") {
			t.Error("markup is missing the escaped script tag")
		}
		if !strings.Contains(markup, "Fish &amp; Chips &lt;b&gt;bold&lt;/b&gt;") {
			t.Error("markup is missing the escaped notes text")
		}
	}
}

func TestSerializeStyle_FixedOrderAndZeroSuppression(t *testing.T) {
	style := skin.Style{
		FontSize:   14,
		FontWeight: 700,
		Color:      skin.Primary,
		Background: skin.Hex("#f9fafb"),
		Padding:    "8px 12px",
		BorderTop:  skin.Edge{Width: 3, Color: skin.Primary},
	}

	got := serializeStyle(style, screenResolver, false)
	want := "font-size:14px;font-weight:700;color:var(--iv-primary);" +
		"background-color:#f9fafb;padding:8px 12px;border-top:3px solid var(--iv-primary);"
	if got != want {
		t.Errorf("serializeStyle = %q, want %q", got, want)
	}

	if got := serializeStyle(skin.Style{}, screenResolver, false); got != "" {
		t.Errorf("zero style serialized to %q, want empty", got)
	}
}

func TestSerializeStyle_KeepTogetherIsPrintOnly(t *testing.T) {
	style := skin.Style{KeepTogether: true}

	if got := serializeStyle(style, screenResolver, false); got != "" {
		t.Errorf("screen target serialized %q for keep-together, want empty", got)
	}
	if got := serializeStyle(style, screenResolver, true); got != "page-break-inside:avoid;break-inside:avoid;" {
		t.Errorf("print target serialized %q for keep-together", got)
	}
}
