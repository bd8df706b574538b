// Package colorscheme derives the small palette every invoice skin draws
// from: one user-picked primary color plus fixed neutral tones for body
// text, backgrounds and borders.
package colorscheme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tl "github.com/tuumbleweed/tintlog/logger"
	"github.com/tuumbleweed/tintlog/palette"

	"invoice-studio/src/pkg/util"
)

// DefaultPrimary is substituted when the template carries a malformed
// color value, so a bad record still renders a legible invoice.
const DefaultPrimary = "#1e40af"

// Derivation factors. Secondary is a darkened primary used for depth
// (table headers, footers); accent is a lightened primary used for
// subtle fills.
const (
	secondaryDarkenFactor = 0.8
	accentLightenFactor   = 0.2
)

// Fixed design constants. These are deliberately not derived from the
// primary so body text stays legible on any theme.
const (
	fixedText          = "#111827"
	fixedTextSecondary = "#6b7280"
	fixedBackground    = "#ffffff"
	fixedBorder        = "#e5e7eb"
)

/*
Scheme is the resolved palette handed to the emission backends.

Primary, Secondary and Accent are derived per invoice template; the rest
are fixed design constants.
*/
type Scheme struct {
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Accent        string `json:"accent"`
	Text          string `json:"text"`
	TextSecondary string `json:"text_secondary"`
	Background    string `json:"background"`
	Border        string `json:"border"`
}

var hexColorRegexp = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

/*
Derive builds a Scheme from a 6-digit hex primary color.

A malformed value (wrong length, non-hex characters, empty) is replaced
with DefaultPrimary and logged as a warning; Derive never fails, because
an invoice render must not die over a bad theme color.
*/
func Derive(primaryHex string) Scheme {
	normalized := normalizeHex(primaryHex)

	r, g, b := splitChannels(normalized)

	return Scheme{
		Primary:       normalized,
		Secondary:     formatChannels(darken(r, secondaryDarkenFactor), darken(g, secondaryDarkenFactor), darken(b, secondaryDarkenFactor)),
		Accent:        formatChannels(lighten(r, accentLightenFactor), lighten(g, accentLightenFactor), lighten(b, accentLightenFactor)),
		Text:          fixedText,
		TextSecondary: fixedTextSecondary,
		Background:    fixedBackground,
		Border:        fixedBorder,
	}
}

/*
normalizeHex validates the input and returns a lowercase "#rrggbb" string,
substituting DefaultPrimary for anything malformed.
*/
func normalizeHex(primaryHex string) string {
	trimmed := strings.TrimSpace(primaryHex)

	if !hexColorRegexp.MatchString(trimmed) {
		tl.Log(
			tl.Warning, palette.PurpleBright, "Template color '%s' is %s, substituting default primary '%s'",
			primaryHex, "not a 6-digit hex color", DefaultPrimary,
		)
		return DefaultPrimary
	}

	if !strings.HasPrefix(trimmed, "#") {
		trimmed = "#" + trimmed
	}

	return strings.ToLower(trimmed)
}

/*
splitChannels parses a normalized "#rrggbb" string into integer channels.
*/
func splitChannels(normalizedHex string) (r int, g int, b int) {
	// Input is pre-validated, so these parses cannot fail.
	r64, _ := strconv.ParseInt(normalizedHex[1:3], 16, 32)
	g64, _ := strconv.ParseInt(normalizedHex[3:5], 16, 32)
	b64, _ := strconv.ParseInt(normalizedHex[5:7], 16, 32)
	return int(r64), int(g64), int(b64)
}

// darken scales one channel toward 0 and truncates to an integer.
func darken(channel int, factor float64) int {
	return util.Clamp(int(float64(channel)*factor), 0, 255)
}

// lighten mixes one channel toward 255 and truncates to an integer.
func lighten(channel int, factor float64) int {
	return util.Clamp(channel+int(float64(255-channel)*factor), 0, 255)
}

func formatChannels(r int, g int, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
