// Package langmeta resolves locale codes to English display names for
// the report pages.
//
// Resolution order: caller-supplied overrides (from the config file),
// the built-in registry of CSL locale codes, then a CLDR lookup via
// golang.org/x/text for anything the registry does not know.
package langmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Registry contains display names for the locale codes shipped by the
// CSL locales repository. Unlisted codes fall back to CLDR data.
var Registry = map[string]string{
	"af-ZA": "Afrikaans",
	"ar":    "Arabic",
	"bg-BG": "Bulgarian",
	"ca-AD": "Catalan",
	"cs-CZ": "Czech",
	"cy-GB": "Welsh",
	"da-DK": "Danish",
	"de-AT": "German (Austria)",
	"de-CH": "German (Switzerland)",
	"de-DE": "German (Germany)",
	"el-GR": "Greek",
	"en-GB": "English (UK)",
	"en-US": "English (US)",
	"es-CL": "Spanish (Chile)",
	"es-ES": "Spanish (Spain)",
	"es-MX": "Spanish (Mexico)",
	"et-EE": "Estonian",
	"eu":    "Basque",
	"fa-IR": "Persian",
	"fi-FI": "Finnish",
	"fr-CA": "French (Canada)",
	"fr-FR": "French (France)",
	"he-IL": "Hebrew",
	"hi-IN": "Hindi",
	"hr-HR": "Croatian",
	"hu-HU": "Hungarian",
	"id-ID": "Indonesian",
	"is-IS": "Icelandic",
	"it-IT": "Italian",
	"ja-JP": "Japanese",
	"km-KH": "Khmer",
	"ko-KR": "Korean",
	"la":    "Latin",
	"lt-LT": "Lithuanian",
	"lv-LV": "Latvian",
	"mn-MN": "Mongolian",
	"nb-NO": "Norwegian (Bokmål)",
	"nl-NL": "Dutch",
	"nn-NO": "Norwegian (Nynorsk)",
	"pl-PL": "Polish",
	"pt-BR": "Portuguese (Brazil)",
	"pt-PT": "Portuguese (Portugal)",
	"ro-RO": "Romanian",
	"ru-RU": "Russian",
	"sk-SK": "Slovak",
	"sl-SI": "Slovenian",
	"sr-RS": "Serbian",
	"sv-SE": "Swedish",
	"th-TH": "Thai",
	"tr-TR": "Turkish",
	"uk-UA": "Ukrainian",
	"vi-VN": "Vietnamese",
	"zh-CN": "Chinese (PRC)",
	"zh-TW": "Chinese (Taiwan)",
}

// Table resolves display names with per-run overrides layered on top
// of the registry, so new locales never require a code change.
type Table struct {
	overrides map[string]string
}

// NewTable builds a resolver. overrides may be nil.
func NewTable(overrides map[string]string) *Table {
	return &Table{overrides: overrides}
}

// Name returns the display name for a locale code. Unknown codes are
// returned unchanged.
func (t *Table) Name(code string) string {
	if t != nil && t.overrides != nil {
		if name, ok := t.overrides[code]; ok {
			return name
		}
	}
	if name, ok := Registry[canonicalize(code)]; ok {
		return name
	}
	if tag, err := language.Parse(code); err == nil {
		if name := display.English.Tags().Name(tag); name != "" {
			return name
		}
	}
	return code
}

func canonicalize(code string) string {
	normalized := strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	parts := strings.Split(normalized, "-")
	parts[0] = strings.ToLower(parts[0])
	if len(parts) >= 2 {
		parts[1] = strings.ToUpper(parts[1])
	}
	return strings.Join(parts, "-")
}
