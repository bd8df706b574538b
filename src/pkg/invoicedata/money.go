package invoicedata

import (
	"github.com/shopspring/decimal"
)

/*
lineAmount computes quantity × rate rounded to the cent. Line item amounts
are always recomputed here, never read from storage, so they can never go
stale after a quantity or rate edit.
*/
func lineAmount(quantity decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate).Round(2)
}

/*
computeTotals fills Subtotal, TaxAmount, TotalAmount and DisplayTotal from
the already-resolved line items.

TaxAmount is computed whenever a tax rate is configured, regardless of
ShowTax: hiding tax is a display decision (DisplayTotal falls back to the
subtotal) and must not mutate the stored tax math.
*/
func computeTotals(inv *Invoice) {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.Amount)
	}
	subtotal = subtotal.Round(2)

	taxAmount := decimal.Zero
	if inv.TaxRate.IsPositive() {
		taxAmount = subtotal.Mul(inv.TaxRate).Round(2)
	}

	inv.Subtotal = subtotal
	inv.TaxAmount = taxAmount
	inv.TotalAmount = subtotal.Add(taxAmount).Round(2)

	if inv.ShowTax {
		inv.DisplayTotal = inv.TotalAmount
	} else {
		inv.DisplayTotal = inv.Subtotal
	}
}

/*
FormatAmount renders a money value with exactly two decimal places,
e.g. "$1627.50".
*/
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

/*
FormatTaxRate renders a fractional tax rate as a percentage with trailing
zeros trimmed, e.g. 0.085 -> "8.5%".
*/
func FormatTaxRate(taxRate decimal.Decimal) string {
	percent := taxRate.Mul(decimal.NewFromInt(100))
	return percent.String() + "%"
}
