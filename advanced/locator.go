package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

type LocatorState int

const (
	AwaitingQuery LocatorState = iota
	Descending
	Located
)

func (s LocatorState) String() string {
	switch s {
	case AwaitingQuery:
		return "AwaitingQuery"
	case Descending:
		return "Descending"
	case Located:
		return "Located"
	}
	return fmt.Sprintf("LocatorState(%d)", int(s))
}

// The progress of a single point location query. A Descent is a plain value:
// advancing it returns a new one, so callers can keep every intermediate step.
type Descent struct {
	State LocatorState
	Query Point
	// The triangle the query is known to be in
	Current TriangleID
	// Level at which Current was created. Each step strictly lowers it.
	Level int
	// Every triangle visited, starting from the root
	Path []TriangleID
}

// Start locating p at the root of the hierarchy.
func (h *Hierarchy) Begin(p Point) (Descent, error) {
	o := h.outerTriangle
	if !PointInTriangle(p, o[0], o[1], o[2]) {
		return Descent{}, errors.Wrapf(ErrOutOfBounds, "query %v", p)
	}
	root, ok := h.dag.Root()
	if !ok {
		return Descent{}, ErrNotBuilt
	}
	return Descent{
		State:   Descending,
		Query:   p,
		Current: root,
		Level:   h.createdAt[root],
		Path:    []TriangleID{root},
	}, nil
}

// Descend one level.
//
// Among the current triangle's children, the lowest id one that strictly
// contains the query wins. A query on a shared edge or vertex is strictly
// inside none of them, so failing that, the lowest id child whose closed
// triangle contains it wins. With no such child, the current triangle is the
// answer. A descent that is not Descending is returned as is.
func (h *Hierarchy) Advance(d Descent) Descent {
	if d.State != Descending {
		return d
	}
	children := h.dag.Children(d.Current)
	next, found := h.pick(d.Query, children, PointInTriangle)
	if !found {
		next, found = h.pick(d.Query, children, PointInClosedTriangle)
	}
	if !found {
		if len(children) > 0 {
			h.log("%s: %v is in %s but none of its children", h.Name(), d.Query, h.DbgName(d.Current))
		}
		d.State = Located
		return d
	}

	path := make([]TriangleID, len(d.Path), len(d.Path)+1)
	copy(path, d.Path)
	d.Path = append(path, next)
	d.Current = next
	d.Level = h.createdAt[next]
	h.log("%s: %v descends to %s at level %d", h.Name(), d.Query, h.DbgName(next), d.Level)
	return d
}

func (h *Hierarchy) pick(p Point, candidates []TriangleID, contains func(p, a, b, c Point) bool) (TriangleID, bool) {
	for _, t := range candidates {
		corners := h.graph.TrianglePoints(t)
		if contains(p, corners[0], corners[1], corners[2]) {
			return t, true
		}
	}
	return 0, false
}

// Run a whole descent, returning the level 0 triangle containing p.
func (h *Hierarchy) Locate(p Point) (TriangleID, error) {
	d, err := h.Begin(p)
	if err != nil {
		return 0, err
	}
	for d.State == Descending {
		d = h.Advance(d)
	}
	return d.Current, nil
}

// Is p inside the polygon? Points on the polygon's boundary may go either way.
func (h *Hierarchy) Contains(p Point) (bool, error) {
	t, err := h.Locate(p)
	if err != nil {
		return false, err
	}
	return h.IsInner(t), nil
}

// A stateful wrapper around a Descent, for driving a query one step at a time.
type Locator struct {
	hierarchy *Hierarchy
	descent   Descent
}

func NewLocator(h *Hierarchy) *Locator {
	return &Locator{hierarchy: h}
}

// Start a new query. On error, the locator is left exactly as it was.
func (l *Locator) Query(p Point) error {
	d, err := l.hierarchy.Begin(p)
	if err != nil {
		return err
	}
	l.descent = d
	return nil
}

// Descend one level. Returns false if there was nothing to do.
func (l *Locator) Step() bool {
	if l.descent.State != Descending {
		return false
	}
	l.descent = l.hierarchy.Advance(l.descent)
	return true
}

// Finish the current query.
func (l *Locator) Run() (TriangleID, error) {
	if l.descent.State == AwaitingQuery {
		return 0, errors.New("no query in progress")
	}
	for l.Step() {
	}
	return l.descent.Current, nil
}

// The located triangle, once the descent has finished.
func (l *Locator) Result() (TriangleID, bool) {
	return l.descent.Current, l.descent.State == Located
}

func (l *Locator) State() LocatorState {
	return l.descent.State
}

func (l *Locator) Descent() Descent {
	return l.descent
}

func (l *Locator) Reset() {
	l.descent = Descent{}
}
