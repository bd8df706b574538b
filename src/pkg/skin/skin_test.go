package skin

import (
	"reflect"
	"strings"
	"testing"

	"invoice-studio/src/pkg/invoicedata"
)

func testInvoice() invoicedata.Invoice {
	inv, e := invoicedata.Normalize(
		invoicedata.InvoiceRecord{
			InvoiceNumber: "INV-042",
			IssueDate:     "2025-01-05",
			DueDate:       "2025-02-04",
			Notes:         "Thanks!",
			Terms:         "Net 30",
			Items: []invoicedata.LineItemRecord{
				{ID: "li-1", Description: "Consulting", Quantity: 10, Rate: 150},
				{ID: "li-2", Description: "Travel", Quantity: 2.5, Rate: 40},
			},
		},
		invoicedata.PartyRecord{
			Name:         "Acme Corp",
			Email:        "billing@acme.test",
			AddressLine1: "100 Main St",
			City:         "Portland",
			State:        "OR",
			PostalCode:   "97201",
		},
		invoicedata.PartyRecord{Name: "Jane Doe", CompanyName: "Doe Design Studio"},
		invoicedata.TemplateRecord{
			TemplateType: "classic",
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

// collectText gathers every text and cell string in the tree, in document
// order, so tests can assert on content without caring about layout.
func collectText(node Node, out *[]string) {
	if node.Text != "" {
		*out = append(*out, node.Text)
	}
	for _, child := range node.Children {
		collectText(child, out)
	}
}

func treeText(doc Document) []string {
	var out []string
	collectText(doc.Root, &out)
	return out
}

func containsAll(haystack []string, needles []string) (missing string, ok bool) {
	joined := strings.Join(haystack, "\n")
	for _, needle := range needles {
		if !strings.Contains(joined, needle) {
			return needle, false
		}
	}
	return "", true
}

func allSkins() []invoicedata.Skin {
	return []invoicedata.Skin{
		invoicedata.SkinClassic,
		invoicedata.SkinModern,
		invoicedata.SkinMinimal,
		invoicedata.SkinBold,
	}
}

func TestBuild_AllSkinsCarryIdenticalContent(t *testing.T) {
	wanted := []string{
		"INV-042",
		"January 5, 2025",
		"February 4, 2025",
		"Acme Corp",
		"billing@acme.test",
		"100 Main St\nPortland, OR 97201",
		"Doe Design Studio",
		"Consulting",
		"10",
		"$150.00",
		"$1500.00",
		"Travel",
		"2.5",
		"$40.00",
		"$100.00",
		"Subtotal",
		"$1600.00",
		"Tax (8.5%)",
		"$136.00",
		"Total",
		"$1736.00",
		"Thanks!",
		"Net 30",
	}

	for _, s := range allSkins() {
		t.Run(s.String(), func(t *testing.T) {
			inv := testInvoice()
			inv.Skin = s

			texts := treeText(Build(inv))
			if missing, ok := containsAll(texts, wanted); !ok {
				t.Errorf("%s skin tree is missing %q", s, missing)
			}
		})
	}
}

func TestBuild_TaxRowOnlyWhenShownAndPositive(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(inv *invoicedata.Invoice)
		wantTax bool
	}{
		{name: "shown and positive", mutate: func(inv *invoicedata.Invoice) {}, wantTax: true},
		{name: "hidden", mutate: func(inv *invoicedata.Invoice) { inv.ShowTax = false }, wantTax: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range allSkins() {
				inv := testInvoice()
				inv.Skin = s
				tt.mutate(&inv)

				texts := strings.Join(treeText(Build(inv)), "\n")
				hasTax := strings.Contains(texts, inv.TaxLabel)
				if hasTax != tt.wantTax {
					t.Errorf("%s skin: tax row present = %v, want %v", s, hasTax, tt.wantTax)
				}
			}
		})
	}
}

func TestBuild_ZeroTaxAmountSuppressesRow(t *testing.T) {
	inv, e := invoicedata.Normalize(
		invoicedata.InvoiceRecord{
			InvoiceNumber: "INV-043",
			IssueDate:     "2025-01-05",
			DueDate:       "2025-02-04",
			Items:         []invoicedata.LineItemRecord{{Description: "Work", Quantity: 1, Rate: 100}},
		},
		invoicedata.PartyRecord{Name: "Acme Corp"},
		invoicedata.PartyRecord{Name: "Jane Doe"},
		invoicedata.TemplateRecord{TemplateType: "classic", ShowTax: true, TaxRate: 0},
	)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	texts := strings.Join(treeText(Build(inv)), "\n")
	if strings.Contains(texts, "Tax (") {
		t.Error("tax row rendered despite zero tax amount")
	}
}

func TestBuild_EmptyFooterContributesNothing(t *testing.T) {
	for _, s := range allSkins() {
		inv := testInvoice()
		inv.Skin = s
		inv.Notes = ""
		inv.Terms = ""

		texts := strings.Join(treeText(Build(inv)), "\n")
		for _, title := range []string{"Notes", "Payment Terms"} {
			if strings.Contains(texts, title) {
				t.Errorf("%s skin renders footer title %q with no content", s, title)
			}
		}
	}
}

func TestBuild_LogoPresence(t *testing.T) {
	var countImages func(node Node) int
	countImages = func(node Node) int {
		n := 0
		if node.Kind == KindImage {
			n++
		}
		for _, child := range node.Children {
			n += countImages(child)
		}
		return n
	}

	for _, s := range allSkins() {
		withoutLogo := testInvoice()
		withoutLogo.Skin = s
		if n := countImages(Build(withoutLogo).Root); n != 0 {
			t.Errorf("%s skin without logo has %d images, want 0", s, n)
		}

		withLogo := testInvoice()
		withLogo.Skin = s
		withLogo.Logo = invoicedata.Logo{
			URL:      "https://cdn.test/logo.png",
			Position: invoicedata.LogoRight,
			Size:     invoicedata.LogoLarge,
		}
		if n := countImages(Build(withLogo).Root); n != 1 {
			t.Errorf("%s skin with logo has %d images, want 1", s, n)
		}
	}
}

func TestBuild_BillToSkipsAbsentFields(t *testing.T) {
	inv, e := invoicedata.Normalize(
		invoicedata.InvoiceRecord{
			InvoiceNumber: "INV-044",
			IssueDate:     "2025-01-05",
			DueDate:       "2025-02-04",
			Items:         []invoicedata.LineItemRecord{{Description: "Work", Quantity: 1, Rate: 100}},
		},
		invoicedata.PartyRecord{Name: "Acme Corp", Email: "billing@acme.test"},
		invoicedata.PartyRecord{Name: "Jane Doe"},
		invoicedata.TemplateRecord{TemplateType: "classic"},
	)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	var billToLineCount int
	var countBillTo func(node Node)
	countBillTo = func(node Node) {
		if node.Class == "iv-billto-line" {
			billToLineCount++
			if strings.TrimSpace(node.Text) == "" {
				t.Error("bill-to block rendered a blank line")
			}
		}
		for _, child := range node.Children {
			countBillTo(child)
		}
	}

	for _, s := range allSkins() {
		inv.Skin = s
		billToLineCount = 0
		countBillTo(Build(inv).Root)
		if billToLineCount != 2 {
			t.Errorf("%s skin rendered %d bill-to lines, want 2 (name + email)", s, billToLineCount)
		}
	}
}

func TestBuild_NoEmptyTextNodes(t *testing.T) {
	var checkNode func(s invoicedata.Skin, node Node)
	checkNode = func(s invoicedata.Skin, node Node) {
		if node.Kind == KindText && strings.TrimSpace(node.Text) == "" {
			t.Errorf("%s skin emitted an empty text node with class %q", s, node.Class)
		}
		for _, child := range node.Children {
			checkNode(s, child)
		}
	}

	for _, s := range allSkins() {
		inv := testInvoice()
		inv.Skin = s
		inv.Subject = ""
		inv.Notes = ""
		checkNode(s, Build(inv).Root)
	}
}

func TestBuild_NoLogoCollapsesHeaderPadding(t *testing.T) {
	withLogo := testInvoice()
	withLogo.Logo = invoicedata.Logo{
		URL:      "https://cdn.test/logo.png",
		Position: invoicedata.LogoLeft,
		Size:     invoicedata.LogoMedium,
	}
	withoutLogo := testInvoice()

	if Build(withLogo).Root.Style.Padding == Build(withoutLogo).Root.Style.Padding {
		t.Error("classic skin does not reduce top padding for the no-logo variant")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	for _, s := range allSkins() {
		inv := testInvoice()
		inv.Skin = s

		first := Build(inv)
		second := Build(inv)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s skin produced different trees for identical input", s)
		}
	}
}

func TestLogoPixels(t *testing.T) {
	tests := []struct {
		size invoicedata.LogoSize
		want int
	}{
		{size: invoicedata.LogoSmall, want: 48},
		{size: invoicedata.LogoMedium, want: 60},
		{size: invoicedata.LogoLarge, want: 80},
		{size: invoicedata.LogoExtraLarge, want: 96},
		{size: invoicedata.LogoSize("weird"), want: 60},
	}

	for _, tt := range tests {
		if got := LogoPixels(tt.size); got != tt.want {
			t.Errorf("LogoPixels(%s) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
