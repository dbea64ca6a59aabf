package menu

// Item is a menu link as rendered for a given route.
type Item struct {
	MenuLink
	Active bool
}

// Render flags the link whose href equals currentPath as active.
// The comparison is exact: no trailing slash or case normalisation.
func Render(links []MenuLink, currentPath string) []Item {
	items := make([]Item, 0, len(links))
	for _, l := range links {
		items = append(items, Item{
			MenuLink: l,
			Active:   l.Href == currentPath,
		})
	}

	return items
}
