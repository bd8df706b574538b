package invoicedata

import (
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"
)

/*
Skin selects one of the four invoice layouts. It is a closed enum: adding
a skin means every switch over it stops compiling until handled.
*/
type Skin int

const (
	SkinClassic Skin = iota
	SkinModern
	SkinMinimal
	SkinBold
)

func (s Skin) String() string {
	switch s {
	case SkinClassic:
		return "classic"
	case SkinModern:
		return "modern"
	case SkinMinimal:
		return "minimal"
	case SkinBold:
		return "bold"
	default:
		return "classic"
	}
}

// templateTypeAliases maps every accepted template_type string, including
// the legacy names older template rows still carry, onto a Skin.
var templateTypeAliases = map[string]Skin{
	"classic": SkinClassic,
	"modern":  SkinModern,
	"minimal": SkinMinimal,
	"bold":    SkinBold,

	"traditional-corporate":  SkinClassic,
	"modern-creative":        SkinModern,
	"minimal-scandinavian":   SkinMinimal,
	"executive-professional": SkinBold,
}

/*
ResolveTemplateType maps a raw template_type value (new-style or legacy
alias) onto a Skin.

An unknown value falls back to the classic skin with a warning; a render
request must never die over a stale template_type string.
*/
func ResolveTemplateType(rawTemplateType string) Skin {
	normalized := strings.ToLower(strings.TrimSpace(rawTemplateType))

	skin, known := templateTypeAliases[normalized]
	if !known {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Template type '%s' is %s, falling back to '%s'",
			rawTemplateType, "not a known skin or alias", SkinClassic,
		)
		return SkinClassic
	}

	return skin
}

/*
LogoPosition places the header logo. Unrecognized values normalize to left.
*/
type LogoPosition string

const (
	LogoLeft   LogoPosition = "left"
	LogoCenter LogoPosition = "center"
	LogoRight  LogoPosition = "right"
)

func normalizeLogoPosition(raw string) LogoPosition {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LogoCenter):
		return LogoCenter
	case string(LogoRight):
		return LogoRight
	default:
		return LogoLeft
	}
}

/*
LogoSize selects the rendered logo height. Unrecognized values normalize
to medium. The actual pixel mapping lives with the skins.
*/
type LogoSize string

const (
	LogoSmall      LogoSize = "small"
	LogoMedium     LogoSize = "medium"
	LogoLarge      LogoSize = "large"
	LogoExtraLarge LogoSize = "extra-large"
)

func normalizeLogoSize(raw string) LogoSize {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(LogoSmall):
		return LogoSmall
	case string(LogoLarge):
		return LogoLarge
	case string(LogoExtraLarge):
		return LogoExtraLarge
	default:
		return LogoMedium
	}
}
