package annotate

// ElementManager owns the ordered element collection for the active
// capture session. Index 0 is the bottom of the z-order; the last element
// draws on top and wins hit-tests. The manager is the single source of
// truth for what currently exists; history restores replace the whole
// collection through RestoreState.
//
// The manager does not talk to the geometry cache or the history manager
// itself. Session sequences those effects; callers driving the manager
// directly must mirror removals into the cache and snapshot commits into
// history themselves.
type ElementManager struct {
	cfg      Config
	elements []*DrawingElement
	nextID   int64
	selected int
}

// NewElementManager creates an empty manager using cfg for element style
// defaults.
func NewElementManager(cfg Config) *ElementManager {
	return &ElementManager{cfg: cfg, nextID: 1, selected: -1}
}

// NewElement creates an element for the given tool with this manager's
// style defaults. The element is not added to the collection yet.
func (m *ElementManager) NewElement(tool DrawingTool) *DrawingElement {
	return NewElement(tool, m.cfg)
}

// Add appends el to the top of the z-order and returns its id. Elements
// without an id are assigned the next monotonic one; ids are never reused
// within a session, so a deleted element's cache entries can never alias a
// later element's.
func (m *ElementManager) Add(el *DrawingElement) int64 {
	if el.ID == 0 {
		el.ID = m.nextID
	}
	if el.ID >= m.nextID {
		m.nextID = el.ID + 1
	}
	m.elements = append(m.elements, el)
	return el.ID
}

// Len returns the number of elements.
func (m *ElementManager) Len() int {
	return len(m.elements)
}

// At returns the element at z-order index i, or nil if out of range.
func (m *ElementManager) At(i int) *DrawingElement {
	if i < 0 || i >= len(m.elements) {
		return nil
	}
	return m.elements[i]
}

// Elements returns the backing collection in z-order. The slice is shared;
// callers must treat it as read-only and must not retain it across
// mutations.
func (m *ElementManager) Elements() []*DrawingElement {
	return m.elements
}

// ByID returns the element with the given id and its z-order index, or
// (nil, -1).
func (m *ElementManager) ByID(id int64) (*DrawingElement, int) {
	for i, el := range m.elements {
		if el.ID == id {
			return el, i
		}
	}
	return nil, -1
}

// ElementAt returns the z-order index of the topmost element whose shape
// contains (x, y), or -1. Iteration is top to bottom so visually stacked
// elements win in paint order.
func (m *ElementManager) ElementAt(x, y int32) int {
	for i := len(m.elements) - 1; i >= 0; i-- {
		if m.elements[i].ContainsPoint(x, y) {
			return i
		}
	}
	return -1
}

// RemoveAt removes and returns the element at index i, or nil if out of
// range. The caller must evict the returned element's id from the geometry
// cache.
func (m *ElementManager) RemoveAt(i int) *DrawingElement {
	if i < 0 || i >= len(m.elements) {
		return nil
	}
	el := m.elements[i]
	m.elements = append(m.elements[:i], m.elements[i+1:]...)
	switch {
	case m.selected == i:
		m.selected = -1
	case m.selected > i:
		m.selected--
	}
	return el
}

// RemoveByID removes the element with the given id. It returns the removed
// element, or nil if no element has that id.
func (m *ElementManager) RemoveByID(id int64) *DrawingElement {
	if _, i := m.ByID(id); i >= 0 {
		return m.RemoveAt(i)
	}
	return nil
}

// Clear removes all elements and returns their ids for batch cache
// eviction.
func (m *ElementManager) Clear() []int64 {
	ids := make([]int64, len(m.elements))
	for i, el := range m.elements {
		ids[i] = el.ID
	}
	m.elements = nil
	m.selected = -1
	return ids
}

// Select marks the element at index i as the selection, clearing any
// previous one. Out-of-range indices clear the selection entirely.
func (m *ElementManager) Select(i int) {
	if m.selected >= 0 && m.selected < len(m.elements) {
		m.elements[m.selected].Selected = false
	}
	if i < 0 || i >= len(m.elements) {
		m.selected = -1
		return
	}
	m.selected = i
	m.elements[i].Selected = true
}

// ClearSelection deselects any selected element.
func (m *ElementManager) ClearSelection() {
	m.Select(-1)
}

// SelectedIndex returns the z-order index of the selected element, or -1.
func (m *ElementManager) SelectedIndex() int {
	return m.selected
}

// SelectedElement returns the selected element, or nil.
func (m *ElementManager) SelectedElement() *DrawingElement {
	return m.At(m.selected)
}

// Snapshot returns a deep copy of the collection, suitable for storing in
// the history manager.
func (m *ElementManager) Snapshot() []*DrawingElement {
	dup := make([]*DrawingElement, len(m.elements))
	for i, el := range m.elements {
		dup[i] = el.Clone()
	}
	return dup
}

// RestoreState replaces the whole collection, deep-copying the input so a
// stored history snapshot is never aliased by live mutation. Element ids
// are preserved verbatim and the id counter is advanced past the largest
// restored id. Selection is not restored; callers re-apply it from the
// accompanying history entry via Select.
func (m *ElementManager) RestoreState(elements []*DrawingElement) {
	m.elements = make([]*DrawingElement, len(elements))
	for i, el := range elements {
		c := el.Clone()
		m.elements[i] = c
		if c.ID >= m.nextID {
			m.nextID = c.ID + 1
		}
	}
	m.selected = -1
}
