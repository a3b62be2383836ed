package homepage

// Homepage keeps every item under a dynamic key, so both files decode as
// lists of single-key maps: - Group: [ - Name: props ].

// ServicesConfig is the root structure of services.yaml
type ServicesConfig []map[string][]map[string]ServiceProps

// ServiceProps holds the service fields LinkHub imports
type ServiceProps struct {
	Href        string `yaml:"href"`
	Icon        string `yaml:"icon,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// BookmarksConfig is the root structure of bookmarks.yaml
type BookmarksConfig []map[string][]map[string][]BookmarkEntry

// BookmarkEntry is a bookmark's property list item; Homepage writes a
// single one per bookmark.
type BookmarkEntry struct {
	Icon string `yaml:"icon"`
	Abbr string `yaml:"abbr"`
	Href string `yaml:"href"`
}

// Entry is one importable item, flattened from either file layout
type Entry struct {
	Group string
	Name  string
	Href  string
	Icon  string
	Abbr  string
}
