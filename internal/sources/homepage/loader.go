package homepage

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrNoEntries is returned when a file holds nothing importable
var ErrNoEntries = errors.New("no importable entries found")

var templateVarRe = regexp.MustCompile(`\{\{[^}]+\}\}`)

// Loader reads a Homepage bookmarks.yaml or services.yaml file
type Loader struct {
	filePath string
}

// NewLoader creates a new Homepage loader
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Load reads the file and flattens it into entries
func (l *Loader) Load() ([]Entry, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read homepage file: %w", err)
	}
	return Parse(data)
}

// Parse flattens a bookmarks.yaml or services.yaml document, in file order.
// The layout is detected from the shape of the items.
func Parse(data []byte) ([]Entry, error) {
	// Strip Homepage template variables ({{HOMEPAGE_VAR_...}})
	data = stripTemplateVariables(data)

	var bookmarks BookmarksConfig
	bookmarksErr := yaml.Unmarshal(data, &bookmarks)
	if bookmarksErr == nil {
		if entries := flattenBookmarks(bookmarks); len(entries) > 0 {
			return entries, nil
		}
	}

	var services ServicesConfig
	if err := yaml.Unmarshal(data, &services); err != nil {
		if bookmarksErr != nil {
			return nil, fmt.Errorf("failed to parse homepage yaml: %w", bookmarksErr)
		}
		return nil, ErrNoEntries
	}
	entries := flattenServices(services)
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

func flattenServices(config ServicesConfig) []Entry {
	var entries []Entry
	for _, groupMap := range config {
		for _, group := range sortedKeys(groupMap) {
			for _, serviceMap := range groupMap[group] {
				for _, name := range sortedKeys(serviceMap) {
					props := serviceMap[name]
					entries = append(entries, Entry{
						Group: group,
						Name:  name,
						Href:  props.Href,
						Icon:  props.Icon,
					})
				}
			}
		}
	}
	return entries
}

// stripTemplateVariables removes Homepage template variables from YAML
// Example: {{HOMEPAGE_VAR_ADGUARD_USER}} -> ""
func stripTemplateVariables(data []byte) []byte {
	return templateVarRe.ReplaceAll(data, []byte(`""`))
}

// sortedKeys keeps multi-key maps in a stable order; Homepage normally
// writes one key per map, so file order is preserved.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
