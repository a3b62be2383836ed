package homepage

import (
	"fmt"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// Mapper converts Homepage entries to links. Links come back without ids;
// the editor assigns them when they are appended.
type Mapper struct{}

// NewMapper creates a new mapper instance
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapLinks converts entries to links, skipping entries without href and
// repeated hrefs.
func (m *Mapper) MapLinks(entries []Entry) ([]domain.Link, error) {
	links := make([]domain.Link, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for _, e := range entries {
		if e.Href == "" || seen[e.Href] {
			continue
		}
		seen[e.Href] = true

		title := e.Name
		if title == "" {
			title = e.Abbr
		}

		links = append(links, domain.Link{
			Title: title,
			URL:   e.Href,
			Icon:  mapIcon(e),
		})
	}

	if len(links) == 0 {
		return nil, fmt.Errorf("no valid links found in config")
	}

	return links, nil
}

// mapIcon picks the catalogue icon named by the entry's icon file, then by
// its name, falling back to the default icon.
func mapIcon(e Entry) string {
	if icon, ok := domain.MatchIcon(e.Icon); ok {
		return icon
	}
	if icon, ok := domain.MatchIcon(e.Name); ok {
		return icon
	}
	return domain.DefaultIcon
}
