package invoicedata

import (
	"strconv"
	"strings"
	"time"
)

/*
FormatDisplayDate turns an ISO "YYYY-MM-DD" string into its long display
form, e.g. "2025-01-05" -> "January 5, 2025".

The string is split on "-" and rebuilt as a local calendar date at noon.
It must never go through a UTC-based ISO parse: on hosts with negative UTC
offsets that would shift the displayed day backwards.

Anything that does not look like an ISO date comes back trimmed but
otherwise untouched; date validity is an upstream concern and this stage
stays total.
*/
func FormatDisplayDate(isoDate string) string {
	trimmed := strings.TrimSpace(isoDate)
	if trimmed == "" {
		return ""
	}

	parts := strings.Split(trimmed, "-")
	if len(parts) != 3 {
		return trimmed
	}

	year, yearErr := strconv.Atoi(parts[0])
	month, monthErr := strconv.Atoi(parts[1])
	day, dayErr := strconv.Atoi(parts[2])
	if yearErr != nil || monthErr != nil || dayErr != nil {
		return trimmed
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return trimmed
	}

	// Noon avoids DST-boundary edge cases on the handful of days a year
	// where local midnight does not exist.
	localDate := time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.Local)
	return localDate.Format("January 2, 2006")
}
