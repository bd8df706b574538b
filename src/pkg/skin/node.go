// Package skin defines the four invoice layouts as declarative node
// trees. A skin is a pure function from a normalized invoice to a tree of
// abstract, target-agnostic nodes; the emit package owns turning that
// tree into markup for a given target. Layout logic therefore exists
// exactly once per skin, which is what keeps the on-screen preview and
// the print document from ever drifting apart.
package skin

/*
ColorRole names a slot in the derived color scheme. Roles are resolved by
the emission backend: the screen target maps them to CSS custom
properties, the document target inlines the literal hex.
*/
type ColorRole int

const (
	RoleNone ColorRole = iota // literal hex carried in Color.Hex
	RolePrimary
	RoleSecondary
	RoleAccent
	RoleText
	RoleTextSecondary
	RoleBackground
	RoleBorder
)

/*
Color is either a scheme role or a literal hex value. The zero value means
"unset" and emits nothing.
*/
type Color struct {
	Role ColorRole
	Hex  string
}

var (
	Primary       = Color{Role: RolePrimary}
	Secondary     = Color{Role: RoleSecondary}
	Accent        = Color{Role: RoleAccent}
	Text          = Color{Role: RoleText}
	TextSecondary = Color{Role: RoleTextSecondary}
	Background    = Color{Role: RoleBackground}
	Border        = Color{Role: RoleBorder}
)

// Hex wraps a literal color value, for the fixed neutral grays skins use
// outside the derived scheme.
func Hex(hex string) Color {
	return Color{Role: RoleNone, Hex: hex}
}

// IsSet reports whether the color carries anything to emit.
func (c Color) IsSet() bool {
	return c.Role != RoleNone || c.Hex != ""
}

/*
Edge is one solid border edge. Zero width means no border.
*/
type Edge struct {
	Width int // px
	Color Color
}

/*
Style is the abstract styling vocabulary the four skins share. Every field
is optional; zero values emit nothing. The emit package serializes fields
in a fixed order so identical trees always produce identical markup.
*/
type Style struct {
	// Typography
	FontSize      int    // px
	FontWeight    int    // 400..900
	FontStyle     string // "italic"
	LineHeight    string // e.g. "1.5"
	LetterSpacing string // e.g. "0.1em"
	TextTransform string // e.g. "uppercase"
	TextAlign     string // "left" | "center" | "right"
	WhiteSpace    string // e.g. "pre-line" for multi-line addresses
	Color         Color

	// Box
	Background   Color
	Padding      string // CSS shorthand, e.g. "24px 32px"
	Margin       string
	BorderTop    Edge
	BorderRight  Edge
	BorderBottom Edge
	BorderLeft   Edge
	BorderRadius int    // px
	Width        string // e.g. "50%", "160px"
	Height       int    // px; used by images

	// Layout
	Flex           bool
	JustifyContent string
	AlignItems     string
	Gap            int // px

	// Pagination hint; the document target emits break-avoidance for it.
	KeepTogether bool
}

/*
NodeKind discriminates the abstract node variants.
*/
type NodeKind int

const (
	KindBox NodeKind = iota
	KindText
	KindImage
	KindTable
	KindRow  // table row
	KindCell // table cell
)

/*
Node is one abstract document node. Text is raw user text; escaping is an
emission concern and happens exactly once, in the backend.
*/
type Node struct {
	Kind  NodeKind
	Class string // stable semantic class, shared by both targets
	Style Style

	Text string // KindText
	Src  string // KindImage
	Alt  string // KindImage

	HeaderRow bool // KindRow: thead row

	Children []Node
}

// Box builds a container node.
func Box(class string, style Style, children ...Node) Node {
	return Node{Kind: KindBox, Class: class, Style: style, Children: children}
}

// TextNode builds a text leaf.
func TextNode(class string, style Style, text string) Node {
	return Node{Kind: KindText, Class: class, Style: style, Text: text}
}

// Image builds an image leaf.
func Image(class string, style Style, src string, alt string) Node {
	return Node{Kind: KindImage, Class: class, Style: style, Src: src, Alt: alt}
}

// Table builds a table node from rows.
func Table(class string, style Style, rows ...Node) Node {
	return Node{Kind: KindTable, Class: class, Style: style, Children: rows}
}

// HeadRow builds a header table row.
func HeadRow(style Style, cells ...Node) Node {
	return Node{Kind: KindRow, Style: style, HeaderRow: true, Children: cells}
}

// BodyRow builds a body table row.
func BodyRow(style Style, cells ...Node) Node {
	return Node{Kind: KindRow, Style: style, Children: cells}
}

// Cell builds a table cell containing text.
func Cell(style Style, text string) Node {
	return Node{Kind: KindCell, Style: style, Text: text}
}

/*
Document is a rendered skin tree ready for an emission backend.
*/
type Document struct {
	Root Node
}
