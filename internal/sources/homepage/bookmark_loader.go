package homepage

func flattenBookmarks(config BookmarksConfig) []Entry {
	var entries []Entry
	for _, category := range config {
		for _, group := range sortedKeys(category) {
			for _, bookmarkMap := range category[group] {
				for _, name := range sortedKeys(bookmarkMap) {
					// Each bookmark has a list with a single entry
					list := bookmarkMap[name]
					if len(list) == 0 {
						continue
					}
					entry := list[0]
					entries = append(entries, Entry{
						Group: group,
						Name:  name,
						Href:  entry.Href,
						Icon:  entry.Icon,
						Abbr:  entry.Abbr,
					})
				}
			}
		}
	}
	return entries
}
