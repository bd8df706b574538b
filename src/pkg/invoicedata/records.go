// Package invoicedata merges the raw records an upstream caller fetched
// (invoice row, client row, business row, template row) into one
// canonical, fully-resolved Invoice structure that every skin renders
// from. The renderer never looks at raw records.
package invoicedata

import "github.com/shopspring/decimal"

/*
InvoiceRecord is the raw invoice row as the upstream caller hands it over.

Dates are ISO "YYYY-MM-DD" strings with no time component.
*/
type InvoiceRecord struct {
	InvoiceNumber string           `json:"invoice_number"`
	IssueDate     string           `json:"issue_date"`
	DueDate       string           `json:"due_date"`
	Subject       string           `json:"subject,omitempty"`
	Notes         string           `json:"notes,omitempty"`
	Terms         string           `json:"terms,omitempty"`
	Items         []LineItemRecord `json:"items"`
}

/*
LineItemRecord is one raw line item. Amount is intentionally absent:
it is always recomputed as quantity × rate, never trusted from storage.
*/
type LineItemRecord struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
}

/*
PartyRecord is the shared shape of the client row and the business row.
*/
type PartyRecord struct {
	Name         string `json:"name"`
	CompanyName  string `json:"company_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"address_line1,omitempty"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
}

/*
TemplateRecord is the raw template row: the "letterhead". Company fields,
when present, override the business row field-by-field.
*/
type TemplateRecord struct {
	TemplateType string  `json:"template_type"`
	ColorScheme  string  `json:"color_scheme"`
	ShowTax      bool    `json:"show_tax"`
	TaxRate      float64 `json:"tax_rate"`
	TaxLabel     string  `json:"tax_label,omitempty"`

	CompanyName string `json:"company_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`

	LogoURL      string `json:"logo_url,omitempty"`
	LogoPosition string `json:"logo_position,omitempty"`
	LogoSize     string `json:"logo_size,omitempty"`
}

/*
Invoice is the canonical normalized structure every skin consumes.
It is constructed fresh per render call and never mutated afterwards.
*/
type Invoice struct {
	InvoiceNumber string

	IssueDate        string // ISO, as received
	DueDate          string
	IssueDateDisplay string // long form, e.g. "January 5, 2025"
	DueDateDisplay   string

	Subject string
	Notes   string
	Terms   string

	Items []LineItem

	Subtotal     decimal.Decimal
	TaxRate      decimal.Decimal // fraction, e.g. 0.085
	TaxAmount    decimal.Decimal
	TotalAmount  decimal.Decimal
	DisplayTotal decimal.Decimal // TotalAmount when tax is shown, else Subtotal
	ShowTax      bool
	TaxLabel     string // e.g. "Tax (8.5%)"

	Client   Party
	Business Party

	Skin         Skin
	PrimaryColor string
	Logo         Logo
}

/*
Party is a resolved client or business block. Address is the final
multi-line display string; empty components were skipped during
normalization, never rendered as blank lines.
*/
type Party struct {
	Name        string
	CompanyName string
	Email       string
	Phone       string
	Address     string
}

/*
LineItem is a resolved line item. Amount is always Quantity × Rate
rounded to the cent at normalization time.
*/
type LineItem struct {
	ID          string
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

/*
Logo describes the optional header logo. URL empty means the header
renders its no-logo variant.
*/
type Logo struct {
	URL      string
	Position LogoPosition
	Size     LogoSize
}
