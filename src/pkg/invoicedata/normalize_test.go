package invoicedata

import (
	"strings"
	"testing"
	"time"
)

func sampleInvoiceRecord() InvoiceRecord {
	return InvoiceRecord{
		InvoiceNumber: "INV-001",
		IssueDate:     "2025-01-05",
		DueDate:       "2025-02-04",
		Notes:         "Thank you for your business.",
		Terms:         "Net 30",
		Items: []LineItemRecord{
			{ID: "li-1", Description: "Consulting", Quantity: 10, Rate: 150},
		},
	}
}

func sampleClientRecord() PartyRecord {
	return PartyRecord{
		Name:         "Acme Corp",
		Email:        "billing@acme.test",
		AddressLine1: "100 Main St",
		City:         "Portland",
		State:        "OR",
		PostalCode:   "97201",
	}
}

func sampleBusinessRecord() PartyRecord {
	return PartyRecord{
		Name:        "Jane Doe",
		CompanyName: "Doe Design Studio",
		Email:       "jane@doedesign.test",
	}
}

func sampleTemplateRecord() TemplateRecord {
	return TemplateRecord{
		TemplateType: "classic",
		ColorScheme:  "#1e40af",
		ShowTax:      true,
		TaxRate:      0.085,
	}
}

func TestNormalize_TotalsWithTax(t *testing.T) {
	inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), sampleBusinessRecord(), sampleTemplateRecord())
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	if got := FormatAmount(inv.Subtotal); got != "$1500.00" {
		t.Errorf("Subtotal = %s, want $1500.00", got)
	}
	if got := FormatAmount(inv.TaxAmount); got != "$127.50" {
		t.Errorf("TaxAmount = %s, want $127.50", got)
	}
	if got := FormatAmount(inv.TotalAmount); got != "$1627.50" {
		t.Errorf("TotalAmount = %s, want $1627.50", got)
	}
	if got := FormatAmount(inv.DisplayTotal); got != "$1627.50" {
		t.Errorf("DisplayTotal = %s, want $1627.50", got)
	}
	if inv.TaxLabel != "Tax (8.5%)" {
		t.Errorf("TaxLabel = %q, want %q", inv.TaxLabel, "Tax (8.5%)")
	}
}

func TestNormalize_HiddenTaxFallsBackToSubtotal(t *testing.T) {
	template := sampleTemplateRecord()
	template.ShowTax = false

	inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), sampleBusinessRecord(), template)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	// Tax math still happens; only the displayed total changes.
	if got := FormatAmount(inv.TaxAmount); got != "$127.50" {
		t.Errorf("TaxAmount = %s, want $127.50", got)
	}
	if got := FormatAmount(inv.DisplayTotal); got != "$1500.00" {
		t.Errorf("DisplayTotal = %s, want $1500.00", got)
	}
}

func TestNormalize_AmountsAlwaysRecomputed(t *testing.T) {
	invoice := sampleInvoiceRecord()
	invoice.Items = []LineItemRecord{
		{ID: "li-1", Description: "Design", Quantity: 3, Rate: 33.33},
		{ID: "li-2", Description: "Hosting", Quantity: 1.5, Rate: 80},
		{ID: "li-3", Description: "Placeholder", Quantity: 0, Rate: 500},
	}
	template := sampleTemplateRecord()
	template.TaxRate = 0

	inv, e := Normalize(invoice, sampleClientRecord(), sampleBusinessRecord(), template)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	wantAmounts := []string{"$99.99", "$120.00", "$0.00"}
	for i, want := range wantAmounts {
		if got := FormatAmount(inv.Items[i].Amount); got != want {
			t.Errorf("item %d amount = %s, want %s", i, got, want)
		}
	}

	// Zero-quantity rows stay in; dropping empty rows is an editing concern.
	if len(inv.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(inv.Items))
	}
	if got := FormatAmount(inv.Subtotal); got != "$219.99" {
		t.Errorf("Subtotal = %s, want $219.99", got)
	}
	if !inv.TaxAmount.IsZero() {
		t.Errorf("TaxAmount = %s, want 0 with no tax rate", inv.TaxAmount)
	}
}

func TestNormalize_ValidationErrors(t *testing.T) {
	t.Run("missing client name", func(t *testing.T) {
		client := sampleClientRecord()
		client.Name = "   "

		_, e := Normalize(sampleInvoiceRecord(), client, sampleBusinessRecord(), sampleTemplateRecord())
		if e == nil {
			t.Fatal("expected error for whitespace-only client name, got nil")
		}
	})

	t.Run("no line items", func(t *testing.T) {
		invoice := sampleInvoiceRecord()
		invoice.Items = nil

		_, e := Normalize(invoice, sampleClientRecord(), sampleBusinessRecord(), sampleTemplateRecord())
		if e == nil {
			t.Fatal("expected error for empty item list, got nil")
		}
	})
}

func TestNormalize_TemplateLetterheadOverridesBusiness(t *testing.T) {
	template := sampleTemplateRecord()
	template.CompanyName = "Doe Design GmbH"
	template.Email = "invoices@doedesign.test"
	template.Address = "Unter den Linden 1\nBerlin"

	inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), sampleBusinessRecord(), template)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	if inv.Business.Name != "Doe Design GmbH" {
		t.Errorf("Business.Name = %q, want template override", inv.Business.Name)
	}
	if inv.Business.Email != "invoices@doedesign.test" {
		t.Errorf("Business.Email = %q, want template override", inv.Business.Email)
	}
	if inv.Business.Address != "Unter den Linden 1\nBerlin" {
		t.Errorf("Business.Address = %q, want template override", inv.Business.Address)
	}
}

func TestNormalize_BusinessFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		business PartyRecord
		wantName string
	}{
		{name: "company name preferred", business: PartyRecord{Name: "Jane", CompanyName: "Studio"}, wantName: "Studio"},
		{name: "personal name next", business: PartyRecord{Name: "Jane"}, wantName: "Jane"},
		{name: "placeholder when blank", business: PartyRecord{}, wantName: "Your Business"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), tt.business, sampleTemplateRecord())
			if e != nil {
				t.Fatalf("Normalize returned error: %v", e)
			}
			if inv.Business.Name != tt.wantName {
				t.Errorf("Business.Name = %q, want %q", inv.Business.Name, tt.wantName)
			}
		})
	}
}

func TestNormalize_CustomTaxLabelWins(t *testing.T) {
	template := sampleTemplateRecord()
	template.TaxLabel = "VAT"

	inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), sampleBusinessRecord(), template)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}
	if inv.TaxLabel != "VAT" {
		t.Errorf("TaxLabel = %q, want %q", inv.TaxLabel, "VAT")
	}
}

func TestFormatAddress(t *testing.T) {
	tests := []struct {
		name  string
		party PartyRecord
		want  string
	}{
		{
			name: "full domestic address drops default country",
			party: PartyRecord{
				AddressLine1: "100 Main St",
				AddressLine2: "Suite 400",
				City:         "Portland",
				State:        "OR",
				PostalCode:   "97201",
				Country:      "United States",
			},
			want: "100 Main St\nSuite 400\nPortland, OR 97201",
		},
		{
			name: "foreign country kept",
			party: PartyRecord{
				AddressLine1: "1 Queen St",
				City:         "Auckland",
				Country:      "New Zealand",
			},
			want: "1 Queen St\nAuckland\nNew Zealand",
		},
		{
			name:  "city only",
			party: PartyRecord{City: "Portland"},
			want:  "Portland",
		},
		{
			name:  "state and postal without city",
			party: PartyRecord{State: "OR", PostalCode: "97201"},
			want:  "OR 97201",
		},
		{
			name:  "whitespace-only fields are absent",
			party: PartyRecord{AddressLine1: "  ", City: " ", State: "\t"},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAddress(tt.party); got != tt.want {
				t.Errorf("FormatAddress = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDisplayDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "2025-01-05", want: "January 5, 2025"},
		{input: "2025-01-31", want: "January 31, 2025"},
		{input: "2025-03-01", want: "March 1, 2025"},
		{input: "2025-12-31", want: "December 31, 2025"},
		{input: " 2025-01-05 ", want: "January 5, 2025"},
		{input: "", want: ""},
		{input: "January 5", want: "January 5"},
		{input: "2025-13-01", want: "2025-13-01"},
		{input: "2025-01", want: "2025-01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatDisplayDate(tt.input); got != tt.want {
				t.Errorf("FormatDisplayDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDisplayDate_StableAcrossTimezones(t *testing.T) {
	// A naive UTC parse displayed as local time would shift the day
	// backwards on any negative-offset host. Pin the worst case.
	original := time.Local
	time.Local = time.FixedZone("UTC-12", -12*60*60)
	defer func() { time.Local = original }()

	if got := FormatDisplayDate("2025-01-31"); got != "January 31, 2025" {
		t.Errorf("FormatDisplayDate in UTC-12 = %q, want %q", got, "January 31, 2025")
	}
	if got := FormatDisplayDate("2025-03-01"); got != "March 1, 2025" {
		t.Errorf("FormatDisplayDate in UTC-12 = %q, want %q", got, "March 1, 2025")
	}
}

func TestResolveTemplateType(t *testing.T) {
	tests := []struct {
		input string
		want  Skin
	}{
		{input: "classic", want: SkinClassic},
		{input: "modern", want: SkinModern},
		{input: "minimal", want: SkinMinimal},
		{input: "bold", want: SkinBold},
		{input: "traditional-corporate", want: SkinClassic},
		{input: "modern-creative", want: SkinModern},
		{input: "minimal-scandinavian", want: SkinMinimal},
		{input: "executive-professional", want: SkinBold},
		{input: "  Modern  ", want: SkinModern},
		{input: "art-deco", want: SkinClassic},
		{input: "", want: SkinClassic},
	}

	for _, tt := range tests {
		name := tt.input
		if strings.TrimSpace(name) == "" {
			name = "blank"
		}
		t.Run(name, func(t *testing.T) {
			if got := ResolveTemplateType(tt.input); got != tt.want {
				t.Errorf("ResolveTemplateType(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogoNormalization(t *testing.T) {
	template := sampleTemplateRecord()
	template.LogoURL = " https://cdn.test/logo.png "
	template.LogoPosition = "CENTER"
	template.LogoSize = "diagonal"

	inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), sampleBusinessRecord(), template)
	if e != nil {
		t.Fatalf("Normalize returned error: %v", e)
	}

	if inv.Logo.URL != "https://cdn.test/logo.png" {
		t.Errorf("Logo.URL = %q, want trimmed", inv.Logo.URL)
	}
	if inv.Logo.Position != LogoCenter {
		t.Errorf("Logo.Position = %s, want center", inv.Logo.Position)
	}
	if inv.Logo.Size != LogoMedium {
		t.Errorf("Logo.Size = %s, want medium fallback", inv.Logo.Size)
	}
}

func TestFormatTaxRate(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{rate: 0.085, want: "8.5%"},
		{rate: 0.1, want: "10%"},
		{rate: 0.0725, want: "7.25%"},
		{rate: 0, want: "0%"},
	}

	for _, tt := range tests {
		template := sampleTemplateRecord()
		template.TaxRate = tt.rate
		template.TaxLabel = ""

		inv, e := Normalize(sampleInvoiceRecord(), sampleClientRecord(), sampleBusinessRecord(), template)
		if e != nil {
			t.Fatalf("Normalize returned error: %v", e)
		}
		want := "Tax (" + tt.want + ")"
		if inv.TaxLabel != want {
			t.Errorf("TaxLabel for rate %v = %q, want %q", tt.rate, inv.TaxLabel, want)
		}
	}
}
