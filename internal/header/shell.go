// Package header implements the site header component: logo, menu
// links, delegated widget slots and the mobile drawer.
package header

import (
	"strings"
	"sync"

	"github.com/bornholm/scaffold/internal/dom"
	"github.com/bornholm/scaffold/internal/menu"
	"github.com/bornholm/scaffold/internal/ui"
	"github.com/pkg/errors"
)

var ErrAlreadyMounted = errors.New("header already mounted")

const (
	ElementRoot      = "header"
	ElementContainer = "header-drawer"
	ElementToggle    = "header-drawer-toggle"
	ElementDrawer    = "header-drawer-menu"
	ElementLogo      = "header-logo"
	ElementMenu      = "header-menu"
	ElementWidgets   = "header-widgets"
)

// outsideInteractions are the document events closing the drawer when
// they target an element outside of its container.
var outsideInteractions = []dom.EventKind{
	dom.EventPointerDown,
	dom.EventTouchStart,
	dom.EventClick,
}

var elements = ui.NavbarElements{
	Root:      ElementRoot,
	Container: ElementContainer,
	Toggle:    ElementToggle,
	Logo:      ElementLogo,
	Drawer:    ElementDrawer,
	Menu:      ElementMenu,
	Widgets:   ElementWidgets,
}

type Shell struct {
	mutex sync.Mutex
	opts  *Options
	state DrawerState

	doc       *dom.Document
	container *dom.Node
	toggle    *dom.Node
	drawer    *dom.Node
	root      *dom.Node

	unsubscribe []func()
}

func New(funcs ...OptionFunc) *Shell {
	return &Shell{
		opts:  NewOptions(funcs...),
		state: Closed,
	}
}

func (s *Shell) State() DrawerState {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.state
}

func (s *Shell) Mounted() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.doc != nil
}

// Mount builds the header element tree inside the document body and
// installs its event listeners. They stay installed until Unmount.
func (s *Shell) Mount(doc *dom.Document) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.doc != nil {
		return errors.WithStack(ErrAlreadyMounted)
	}

	root, err := s.build(doc)
	if err != nil {
		return errors.WithStack(err)
	}

	doc.Body().Append(root)

	s.doc = doc
	s.root = root
	s.container = doc.Lookup(ElementContainer)
	s.toggle = doc.Lookup(ElementToggle)

	if s.state == Open {
		if err := s.openDrawer(); err != nil {
			root.Remove()

			s.doc = nil
			s.root = nil
			s.container = nil
			s.toggle = nil
			s.drawer = nil

			return errors.WithStack(err)
		}
	}

	s.unsubscribe = []func(){
		doc.AddEventListener(s.handleOutsideInteraction, outsideInteractions...),
		doc.AddEventListener(s.handleClick, dom.EventClick),
	}

	return nil
}

// Unmount removes the listeners and the header elements from the
// document. Unmounting an unmounted header does nothing.
func (s *Shell) Unmount() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.doc == nil {
		return
	}

	for _, unsubscribe := range s.unsubscribe {
		unsubscribe()
	}

	s.root.Remove()

	s.unsubscribe = nil
	s.doc = nil
	s.root = nil
	s.container = nil
	s.toggle = nil
	s.drawer = nil
}

func (s *Shell) Toggle() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state == Open {
		s.closeDrawer()
		return nil
	}

	return errors.WithStack(s.openDrawer())
}

func (s *Shell) CloseDrawer() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.closeDrawer()
}

// View returns the template data of the header for the given route.
func (s *Shell) View(currentPath string) ui.NavbarTemplateData {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	items := menu.Render(menu.Links(), currentPath)

	data := ui.NavbarTemplateData{
		DrawerOpen: s.state == Open,
		MenuItems:  navbarItems(ElementMenu, items),
		Logo:       s.opts.Logo,
		Elements:   elements,
	}

	if data.DrawerOpen {
		data.DrawerItems = navbarItems(ElementDrawer, items)
	}

	return data
}

func (s *Shell) handleOutsideInteraction(evt dom.Event) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.state != Open || s.container == nil {
		return
	}

	if s.container.Contains(evt.Target) {
		return
	}

	s.closeDrawer()
}

func (s *Shell) handleClick(evt dom.Event) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	switch {
	case s.toggle != nil && s.toggle.Contains(evt.Target):
		if s.state == Open {
			s.closeDrawer()
			return
		}

		// The drawer ids are reserved by build, creation cannot collide.
		_ = s.openDrawer()

	case s.drawer != nil && s.drawer.Contains(evt.Target):
		s.closeDrawer()
	}
}

// openDrawer expects the shell lock to be held.
func (s *Shell) openDrawer() error {
	s.state = Open

	if s.doc == nil || s.drawer != nil {
		return nil
	}

	drawer, err := s.doc.CreateElement(ElementDrawer)
	if err != nil {
		return errors.WithStack(err)
	}

	for _, l := range menu.Links() {
		link, err := s.doc.CreateElement(linkID(ElementDrawer, l.Href))
		if err != nil {
			return errors.WithStack(err)
		}

		drawer.Append(link)
	}

	s.container.Append(drawer)
	s.drawer = drawer

	return nil
}

// closeDrawer expects the shell lock to be held.
func (s *Shell) closeDrawer() {
	s.state = Closed

	if s.drawer == nil {
		return
	}

	s.drawer.Remove()
	s.drawer = nil
}

func (s *Shell) build(doc *dom.Document) (*dom.Node, error) {
	ids := []string{ElementRoot, ElementContainer, ElementToggle, ElementLogo, ElementMenu, ElementWidgets}

	nodes := make(map[string]*dom.Node, len(ids))
	for _, id := range ids {
		n, err := doc.CreateElement(id)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		nodes[id] = n
	}

	for _, l := range menu.Links() {
		link, err := doc.CreateElement(linkID(ElementMenu, l.Href))
		if err != nil {
			return nil, errors.WithStack(err)
		}

		nodes[ElementMenu].Append(link)
	}

	nodes[ElementContainer].Append(nodes[ElementToggle])

	root := nodes[ElementRoot]
	root.Append(nodes[ElementContainer])
	root.Append(nodes[ElementLogo])
	root.Append(nodes[ElementMenu])
	root.Append(nodes[ElementWidgets])

	return root, nil
}

func navbarItems(prefix string, items []menu.Item) []ui.NavbarItem {
	navbarItems := make([]ui.NavbarItem, 0, len(items))
	for _, i := range items {
		navbarItems = append(navbarItems, ui.NavbarItem{
			ID:     linkID(prefix, i.Href),
			Label:  i.Label,
			URL:    i.Href,
			Icon:   string(i.Icon),
			Active: i.Active,
		})
	}

	return navbarItems
}

func linkID(prefix string, href string) string {
	slug := strings.Trim(href, "/")
	slug = strings.ReplaceAll(slug, "/", "-")

	return prefix + "-" + slug
}
