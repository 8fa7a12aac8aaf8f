package ticket

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// reportTimeLayouts are the timestamp shapes seen across the report feeds.
// The string-formatted columns come out of the report designer and are not
// consistent between installations.
var reportTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseReportTime parses an upstream timestamp, reporting false when the
// value is absent or matches no known layout. Zone-less layouts are read as
// UTC.
func ParseReportTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range reportTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// normalizeText lowercases and strips combining accent marks, so that
// "Crítica" and "critica" canonicalize identically.
func normalizeText(s string) string {
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// NormalizePriority canonicalizes a priority string for comparisons.
func NormalizePriority(priority string) string {
	return normalizeText(priority)
}

// NormalizeStatus canonicalizes a status string for comparisons.
func NormalizeStatus(status string) string {
	return normalizeText(status)
}

// PriorityLabel maps a raw priority to its display bucket.
func PriorityLabel(priority string) string {
	switch NormalizePriority(priority) {
	case "critica":
		return "Critica"
	case "alta":
		return "Alta"
	case "media":
		return "Media"
	case "baixa":
		return "Baixa"
	}
	if priority == "" {
		return "Sem prioridade"
	}
	return priority
}
