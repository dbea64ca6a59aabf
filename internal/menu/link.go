// Package menu holds the site navigation table.
package menu

// Icon names a glyph of the embedded icon set.
type Icon string

const (
	IconNone            Icon = ""
	IconScale           Icon = "scale"
	IconArrowUturnUp    Icon = "arrow-uturn-up"
	IconArrowsRightLeft Icon = "arrows-right-left"
	IconCircleStack     Icon = "circle-stack"
	IconBugAnt          Icon = "bug-ant"
)

// MenuLink is a navigation entry of the site header.
type MenuLink struct {
	Label string
	Href  string
	Icon  Icon

	disabled bool
}

// table is never exposed directly: Links returns copies so the
// display order and the entries stay fixed for the process lifetime.
var table = [...]MenuLink{
	{Label: "Pools", Href: "/pools", Icon: IconScale},
	{Label: "Hooks", Href: "/hooks", Icon: IconArrowUturnUp},
	{Label: "Router", Href: "/router", Icon: IconArrowsRightLeft, disabled: true},
	{Label: "Subgraph", Href: "/subgraph", Icon: IconCircleStack, disabled: true},
	{Label: "Debug Contracts", Href: "/debug", Icon: IconBugAnt},
}

// Links returns the enabled menu links in display order.
func Links() []MenuLink {
	links := make([]MenuLink, 0, len(table))
	for _, l := range table {
		if l.disabled {
			continue
		}

		links = append(links, l)
	}

	return links
}
