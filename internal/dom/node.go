// Package dom models the element tree a component is mounted into, so
// that component event handling can be expressed and tested server side.
package dom

// Node is an element of a Document.
type Node struct {
	ID string

	doc      *Document
	parent   *Node
	children []*Node
}

func (n *Node) Children() []*Node {
	n.doc.mutex.RLock()
	defer n.doc.mutex.RUnlock()

	children := make([]*Node, len(n.children))
	copy(children, n.children)

	return children
}

// Append attaches child (and its subtree) as the last child of n,
// detaching it from its previous parent first.
func (n *Node) Append(child *Node) {
	n.doc.mutex.Lock()
	defer n.doc.mutex.Unlock()

	child.detach()

	child.parent = n
	n.children = append(n.children, child)

	if n.attached() {
		n.doc.index(child)
	}
}

// Remove detaches n and its subtree from the document.
func (n *Node) Remove() {
	n.doc.mutex.Lock()
	defer n.doc.mutex.Unlock()

	n.detach()
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if other == nil {
		return false
	}

	n.doc.mutex.RLock()
	defer n.doc.mutex.RUnlock()

	for current := other; current != nil; current = current.parent {
		if current == n {
			return true
		}
	}

	return false
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}

	siblings := n.parent.children
	for idx, s := range siblings {
		if s == n {
			n.parent.children = append(siblings[:idx:idx], siblings[idx+1:]...)
			break
		}
	}

	n.parent = nil
	n.doc.unindex(n)
}

func (n *Node) attached() bool {
	for current := n; current != nil; current = current.parent {
		if current == n.doc.body {
			return true
		}
	}

	return false
}
