// Package emit turns an abstract skin tree into markup for one of the two
// targets: the interactive on-screen preview (CSS-custom-property
// theming) and the static self-contained document handed to PDF
// conversion (every value inlined literally). Both targets walk the same
// tree with the same serializer, so their structure and content cannot
// drift apart; only color resolution and pagination hints differ.
package emit

import (
	"fmt"
	"strconv"
	"strings"

	"invoice-studio/src/pkg/skin"
)

/*
colorResolver maps an abstract color onto the CSS value a target embeds.
*/
type colorResolver func(c skin.Color) string

/*
serializeStyle renders a skin.Style as a CSS declaration string.

Properties are emitted in a fixed order so identical trees always yield
byte-identical markup. Zero-valued fields emit nothing.
*/
func serializeStyle(style skin.Style, resolve colorResolver, forPrint bool) string {
	var css strings.Builder

	writeInt := func(property string, px int) {
		if px != 0 {
			css.WriteString(property + ":" + strconv.Itoa(px) + "px;")
		}
	}
	writeString := func(property string, value string) {
		if value != "" {
			css.WriteString(property + ":" + value + ";")
		}
	}
	writeColor := func(property string, color skin.Color) {
		if color.IsSet() {
			css.WriteString(property + ":" + resolve(color) + ";")
		}
	}
	writeEdge := func(property string, edge skin.Edge) {
		if edge.Width > 0 {
			css.WriteString(fmt.Sprintf("%s:%dpx solid %s;", property, edge.Width, resolve(edge.Color)))
		}
	}

	writeInt("font-size", style.FontSize)
	if style.FontWeight != 0 {
		css.WriteString("font-weight:" + strconv.Itoa(style.FontWeight) + ";")
	}
	writeString("font-style", style.FontStyle)
	writeString("line-height", style.LineHeight)
	writeString("letter-spacing", style.LetterSpacing)
	writeString("text-transform", style.TextTransform)
	writeString("text-align", style.TextAlign)
	writeString("white-space", style.WhiteSpace)
	writeColor("color", style.Color)

	writeColor("background-color", style.Background)
	writeString("padding", style.Padding)
	writeString("margin", style.Margin)
	writeEdge("border-top", style.BorderTop)
	writeEdge("border-right", style.BorderRight)
	writeEdge("border-bottom", style.BorderBottom)
	writeEdge("border-left", style.BorderLeft)
	writeInt("border-radius", style.BorderRadius)
	writeString("width", style.Width)
	writeInt("height", style.Height)

	if style.Flex {
		css.WriteString("display:flex;")
		writeString("justify-content", style.JustifyContent)
		writeString("align-items", style.AlignItems)
		writeInt("gap", style.Gap)
	}

	// The screen target has no pages; break control only matters for the
	// paginated artifact.
	if forPrint && style.KeepTogether {
		css.WriteString("page-break-inside:avoid;break-inside:avoid;")
	}

	return css.String()
}
