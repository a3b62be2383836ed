package domain

import (
	"net/url"
	"strings"
)

// Display hints. None of these rewrite stored data.

// Icons is the catalogue offered by the editor.
var Icons = []string{
	"Link", "Github", "Linkedin", "Mail", "Twitter",
	"Facebook", "Instagram", "Youtube", "Globe", "File",
	"FileText", "Image", "Video", "Music", "Phone",
}

// Palette maps accent colors to their display names.
var Palette = []struct {
	Color string
	Name  string
}{
	{"#3B82F6", "Blue"},
	{"#8B5CF6", "Purple"},
	{"#F59E0B", "Amber"},
	{"#10B981", "Emerald"},
	{"#EF4444", "Red"},
	{"#EC4899", "Pink"},
}

// IconOrDefault returns name when it is in the catalogue, DefaultIcon otherwise.
func IconOrDefault(name string) string {
	for _, icon := range Icons {
		if icon == name {
			return name
		}
	}
	return DefaultIcon
}

// MatchIcon finds a catalogue icon by case-insensitive name, ignoring
// separators and a file extension ("github.svg" -> "Github").
func MatchIcon(name string) (string, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if i := strings.LastIndexByte(n, '.'); i > 0 {
		n = n[:i]
	}
	n = strings.NewReplacer("-", "", "_", "", " ", "").Replace(n)
	for _, icon := range Icons {
		if strings.ToLower(icon) == n {
			return icon, true
		}
	}
	return "", false
}

// PaletteName returns the display name of an accent color.
func PaletteName(color string) (string, bool) {
	for _, c := range Palette {
		if strings.EqualFold(c.Color, color) {
			return c.Name, true
		}
	}
	return "", false
}

// IsValidURL reports whether raw parses as an absolute URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// EnsureHTTPS prefixes https:// unless raw already starts with "http".
func EnsureHTTPS(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return "https://" + raw
}

// ExtractDomain returns the hostname of raw without a leading "www.",
// or raw itself when it cannot be parsed.
func ExtractDomain(raw string) string {
	u, err := url.Parse(EnsureHTTPS(raw))
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

// Truncate shortens text to maxLen runes followed by "...". A negative
// maxLen counts as zero.
func Truncate(text string, maxLen int) string {
	maxLen = max(maxLen, 0)
	r := []rune(text)
	if len(r) <= maxLen {
		return text
	}
	return string(r[:maxLen]) + "..."
}
