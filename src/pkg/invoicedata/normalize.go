package invoicedata

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
	"github.com/tuumbleweed/xerr"
)

// Fallbacks used when neither the template nor the business row carries
// a value. The issuer name must never render empty.
const (
	fallbackBusinessName = "Your Business"
	defaultCountry       = "United States"
)

/*
Normalize merges the raw invoice, client, business and template records
into one canonical Invoice with every derived field populated: resolved
skin, merged letterhead, formatted addresses and dates, recomputed line
amounts and totals.

Upstream validates required data before calling the renderer, but we still
refuse to render a broken document: a missing client name or an empty item
list returns a *xerr.Error rather than silently emitting nonsense.

Everything optional is total: absent fields become empty strings and are
skipped at render time.
*/
func Normalize(invoice InvoiceRecord, client PartyRecord, business PartyRecord, template TemplateRecord) (inv Invoice, e *xerr.Error) {
	if strings.TrimSpace(client.Name) == "" {
		err := fmt.Errorf("client name is empty")
		e = xerr.NewError(err, "validate invoice input", invoice.InvoiceNumber)
		return inv, e
	}
	if len(invoice.Items) == 0 {
		err := fmt.Errorf("invoice has no line items")
		e = xerr.NewError(err, "validate invoice input", invoice.InvoiceNumber)
		return inv, e
	}

	inv = Invoice{
		InvoiceNumber: strings.TrimSpace(invoice.InvoiceNumber),

		IssueDate:        strings.TrimSpace(invoice.IssueDate),
		DueDate:          strings.TrimSpace(invoice.DueDate),
		IssueDateDisplay: FormatDisplayDate(invoice.IssueDate),
		DueDateDisplay:   FormatDisplayDate(invoice.DueDate),

		Subject: strings.TrimSpace(invoice.Subject),
		Notes:   strings.TrimSpace(invoice.Notes),
		Terms:   strings.TrimSpace(invoice.Terms),

		ShowTax:      template.ShowTax,
		TaxRate:      decimal.NewFromFloat(template.TaxRate),
		PrimaryColor: strings.TrimSpace(template.ColorScheme),

		Skin: ResolveTemplateType(template.TemplateType),

		Logo: Logo{
			URL:      strings.TrimSpace(template.LogoURL),
			Position: normalizeLogoPosition(template.LogoPosition),
			Size:     normalizeLogoSize(template.LogoSize),
		},
	}

	inv.TaxLabel = resolveTaxLabel(template, inv.TaxRate)
	inv.Client = normalizeClient(client)
	inv.Business = normalizeBusiness(business, template)
	inv.Items = normalizeItems(invoice.Items)

	computeTotals(&inv)

	tl.Log(
		tl.Info1, palette.Cyan, "Normalized invoice '%s': skin '%s', %d items, total %s",
		inv.InvoiceNumber, inv.Skin, len(inv.Items), FormatAmount(inv.TotalAmount),
	)

	return inv, e
}

/*
normalizeClient builds the "Bill To" party. Whitespace-only fields are
treated as absent so they never render as blank lines.
*/
func normalizeClient(client PartyRecord) Party {
	return Party{
		Name:        strings.TrimSpace(client.Name),
		CompanyName: strings.TrimSpace(client.CompanyName),
		Email:       strings.TrimSpace(client.Email),
		Phone:       strings.TrimSpace(client.Phone),
		Address:     FormatAddress(client),
	}
}

/*
normalizeBusiness resolves the issuer block. The template is the
letterhead: when it specifies a company field, that value wins over the
business row. The business row is the fallback; final fallbacks keep the
stage total.
*/
func normalizeBusiness(business PartyRecord, template TemplateRecord) Party {
	name := firstNonEmpty(template.CompanyName, business.CompanyName, business.Name, fallbackBusinessName)
	email := firstNonEmpty(template.Email, business.Email, "")
	phone := firstNonEmpty(template.Phone, business.Phone, "")

	address := strings.TrimSpace(template.Address)
	if address == "" {
		address = FormatAddress(business)
	}

	return Party{
		Name:    name,
		Email:   email,
		Phone:   phone,
		Address: address,
	}
}

/*
normalizeItems resolves line items in stored order, recomputing every
amount. Zero-quantity and zero-rate items stay in: filtering empty rows is
an upstream editing concern, the renderer shows what it is given.
*/
func normalizeItems(items []LineItemRecord) []LineItem {
	resolved := make([]LineItem, 0, len(items))

	for _, raw := range items {
		quantity := decimal.NewFromFloat(raw.Quantity)
		rate := decimal.NewFromFloat(raw.Rate)

		resolved = append(resolved, LineItem{
			ID:          strings.TrimSpace(raw.ID),
			Description: strings.TrimSpace(raw.Description),
			Quantity:    quantity,
			Rate:        rate,
			Amount:      lineAmount(quantity, rate),
		})
	}

	return resolved
}

/*
FormatAddress joins the non-empty address parts of a party record with
newlines: line1, line2, "city, state postal", and the country unless it is
the default. Empty components are skipped entirely.
*/
func FormatAddress(party PartyRecord) string {
	parts := make([]string, 0, 4)

	if line1 := strings.TrimSpace(party.AddressLine1); line1 != "" {
		parts = append(parts, line1)
	}
	if line2 := strings.TrimSpace(party.AddressLine2); line2 != "" {
		parts = append(parts, line2)
	}

	if cityLine := formatCityLine(party); cityLine != "" {
		parts = append(parts, cityLine)
	}

	country := strings.TrimSpace(party.Country)
	if country != "" && !strings.EqualFold(country, defaultCountry) {
		parts = append(parts, country)
	}

	return strings.Join(parts, "\n")
}

/*
formatCityLine renders "City, State Postal" from whichever of the three
parts are present, e.g. "Portland, OR 97201", "Portland", "OR 97201".
*/
func formatCityLine(party PartyRecord) string {
	city := strings.TrimSpace(party.City)
	state := strings.TrimSpace(party.State)
	postal := strings.TrimSpace(party.PostalCode)

	statePostal := strings.TrimSpace(state + " " + postal)

	switch {
	case city != "" && statePostal != "":
		return city + ", " + statePostal
	case city != "":
		return city
	default:
		return statePostal
	}
}

/*
resolveTaxLabel picks the tax row label: the template's own label if set,
otherwise "Tax (8.5%)" built from the rate.
*/
func resolveTaxLabel(template TemplateRecord, taxRate decimal.Decimal) string {
	label := strings.TrimSpace(template.TaxLabel)
	if label != "" {
		return label
	}
	return "Tax (" + FormatTaxRate(taxRate) + ")"
}

// firstNonEmpty returns the first candidate that is non-empty after
// trimming, or "" when all are blank.
func firstNonEmpty(candidates ...string) string {
	for _, candidate := range candidates {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
