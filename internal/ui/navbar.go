package ui

// NavbarItem is a navigation link of the site header.
type NavbarItem struct {
	ID     string
	Label  string
	URL    string
	Icon   string
	Active bool
}

type NavbarLogo struct {
	URL   string
	Src   string
	Alt   string
	Title string
}

// NavbarElements holds the ids of the header elements the browser
// reports interactions against.
type NavbarElements struct {
	Root      string
	Container string
	Toggle    string
	Logo      string
	Drawer    string
	Menu      string
	Widgets   string
}

// WidgetTemplateData is a delegated control rendered by the header
// through its own template.
type WidgetTemplateData struct {
	Type     string
	Template string
	Data     any
}

type NavbarTemplateData struct {
	InstanceID  string
	DrawerOpen  bool
	DrawerItems []NavbarItem
	MenuItems   []NavbarItem
	Logo        NavbarLogo
	Elements    NavbarElements
	Widgets     []WidgetTemplateData
}
