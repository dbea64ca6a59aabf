package dom

import (
	"slices"
	"sync"

	"github.com/pkg/errors"
)

const BodyID = "body"

var (
	ErrUnknownEventKind = errors.New("unknown event kind")
	ErrDuplicateID      = errors.New("duplicate element id")
)

type EventKind string

const (
	EventClick       EventKind = "click"
	EventPointerDown EventKind = "pointerdown"
	EventTouchStart  EventKind = "touchstart"
)

func ParseEventKind(raw string) (EventKind, error) {
	switch kind := EventKind(raw); kind {
	case EventClick, EventPointerDown, EventTouchStart:
		return kind, nil
	default:
		return "", errors.Wrapf(ErrUnknownEventKind, "'%s'", raw)
	}
}

// Event is an interaction targeting a node of the document. A nil
// Target stands for an element the document does not know about.
type Event struct {
	Kind   EventKind
	Target *Node
}

type Listener func(evt Event)

type registration struct {
	kind     EventKind
	listener Listener
}

// Document is a tree of nodes rooted at its body, with document level
// event listeners.
type Document struct {
	mutex     sync.RWMutex
	body      *Node
	ids       map[string]*Node
	listeners map[uint64]registration
	nextID    uint64
}

func NewDocument() *Document {
	doc := &Document{
		ids:       map[string]*Node{},
		listeners: map[uint64]registration{},
	}

	doc.body = &Node{ID: BodyID, doc: doc}
	doc.ids[BodyID] = doc.body

	return doc
}

func (d *Document) Body() *Node {
	return d.body
}

// CreateElement returns a detached node. It becomes reachable through
// Lookup once appended to the document tree.
func (d *Document) CreateElement(id string) (*Node, error) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	if _, exists := d.ids[id]; exists {
		return nil, errors.Wrapf(ErrDuplicateID, "'%s'", id)
	}

	return &Node{ID: id, doc: d}, nil
}

// Lookup returns the attached node with the given id, or nil.
func (d *Document) Lookup(id string) *Node {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return d.ids[id]
}

// AddEventListener registers listener for the given event kinds and
// returns a function removing it. The returned function can be called
// more than once.
func (d *Document) AddEventListener(listener Listener, kinds ...EventKind) (remove func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	ids := make([]uint64, 0, len(kinds))
	for _, k := range kinds {
		d.nextID++
		d.listeners[d.nextID] = registration{kind: k, listener: listener}
		ids = append(ids, d.nextID)
	}

	var once sync.Once

	return func() {
		once.Do(func() {
			d.mutex.Lock()
			defer d.mutex.Unlock()

			for _, id := range ids {
				delete(d.listeners, id)
			}
		})
	}
}

func (d *Document) ListenerCount() int {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return len(d.listeners)
}

// Dispatch calls the listeners registered for the event kind, in
// registration order. Listeners run without the document lock held and
// may add or remove listeners; a listener removed by an earlier one is
// not called.
func (d *Document) Dispatch(evt Event) {
	d.mutex.RLock()
	ids := make([]uint64, 0, len(d.listeners))
	for id, r := range d.listeners {
		if r.kind == evt.Kind {
			ids = append(ids, id)
		}
	}
	d.mutex.RUnlock()

	slices.Sort(ids)

	for _, id := range ids {
		d.mutex.RLock()
		r, exists := d.listeners[id]
		d.mutex.RUnlock()

		if !exists {
			continue
		}

		r.listener(evt)
	}
}

func (d *Document) index(n *Node) {
	d.ids[n.ID] = n
	for _, c := range n.children {
		d.index(c)
	}
}

func (d *Document) unindex(n *Node) {
	if d.ids[n.ID] == n {
		delete(d.ids, n.ID)
	}

	for _, c := range n.children {
		d.unindex(c)
	}
}
