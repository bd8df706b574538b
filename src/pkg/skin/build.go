package skin

import (
	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"invoice-studio/src/pkg/invoicedata"
)

/*
Build turns a normalized invoice into the abstract document tree for its
resolved skin. It is a pure function: same invoice in, same tree out,
no shared state, safe to call from any number of goroutines.

The switch is exhaustive over the Skin enum; alias strings were already
resolved during normalization.
*/
func Build(inv invoicedata.Invoice) Document {
	tl.Log(
		tl.Info1, palette.Blue, "Building '%s' skin tree for invoice '%s'",
		inv.Skin, inv.InvoiceNumber,
	)

	var root Node
	switch inv.Skin {
	case invoicedata.SkinClassic:
		root = classic(inv)
	case invoicedata.SkinModern:
		root = modern(inv)
	case invoicedata.SkinMinimal:
		root = minimal(inv)
	case invoicedata.SkinBold:
		root = bold(inv)
	default:
		// Unreachable for values produced by ResolveTemplateType; kept so
		// a hand-constructed Invoice still renders something correct.
		root = classic(inv)
	}

	return Document{Root: root}
}
