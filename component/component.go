// Package component is the composition and event-dispatch core of the
// toolkit. A Component owns child components, renders to a drawable element,
// handles keyboard and mouse events, participates in focus tracking, and
// advances time-based animations. Concrete widgets embed Base and override
// the hooks they care about.
package component

import (
	"github.com/IsakTheHacker/FTXUI/animation"
	"github.com/IsakTheHacker/FTXUI/render"
)

// Component is the contract every node in a composition tree honors.
type Component interface {
	// Render produces the drawable output for the current state. It may
	// record the screen rectangle it is laid out into (for hit-testing)
	// but must not mutate logical state.
	Render() render.Element
	// OnEvent consumes or ignores an input event. It returns true iff the
	// event was consumed, which stops propagation.
	OnEvent(event Event) bool
	// OnAnimation advances time-based state by the frame's elapsed time.
	OnAnimation(params *animation.Params)

	// Focusable reports whether the component can become the active leaf.
	Focusable() bool
	// Focused reports whether the component is on the active path from the
	// root to the active leaf.
	Focused() bool
	// Active reports whether the component is its parent's active child.
	Active() bool
	// TakeFocus makes this component the active leaf. It is a no-op on
	// components that are not focusable.
	TakeFocus()

	Parent() Component
	Children() []Component
	// Add appends children, detaching each from any previous parent first.
	Add(children ...Component)
	// Detach removes the component from its parent.
	Detach()
	DetachAllChildren()
	// ActiveChild returns the child on the focus path, defaulting to the
	// first child.
	ActiveChild() Component
	SetActiveChild(child Component)

	base() *Base
}

// Base provides the default behavior for all components. Embed it in widget
// structs and pass the outermost value through Make so Base methods can
// identify the widget within its parent.
type Base struct {
	self     Component
	parent   Component
	children []Component
	active   Component
}

// Make wires a concrete widget to its embedded Base. Every widget
// constructor returns Make(w).
func Make[T Component](c T) T {
	c.base().self = c
	return c
}

func (b *Base) base() *Base { return b }

// outer returns the concrete component embedding this Base.
func (b *Base) outer() Component {
	if b.self != nil {
		return b.self
	}
	return b
}

// Render composes the children's output vertically. A leaf with no children
// yields an empty drawable.
func (b *Base) Render() render.Element {
	switch len(b.children) {
	case 0:
		return render.Empty()
	case 1:
		return b.children[0].Render()
	}
	els := make([]render.Element, len(b.children))
	for i, child := range b.children {
		els[i] = child.Render()
	}
	return render.VBox(els...)
}

// OnEvent routes the event to children and stops at the first consumer.
// Mouse events try children in reverse insertion order, so with overlapping
// siblings the last added is on top and wins. Keyboard events try the active
// child first, then the remaining children in insertion order.
func (b *Base) OnEvent(event Event) bool {
	if event.IsMouse() {
		return b.mouseEventChildren(event)
	}
	return b.keyEventChildren(event)
}

func (b *Base) mouseEventChildren(event Event) bool {
	for i := len(b.children) - 1; i >= 0; i-- {
		if b.children[i].OnEvent(event) {
			return true
		}
	}
	return false
}

func (b *Base) keyEventChildren(event Event) bool {
	active := b.outer().ActiveChild()
	if active != nil && active.OnEvent(event) {
		return true
	}
	for _, child := range b.children {
		if child != active && child.OnEvent(event) {
			return true
		}
	}
	return false
}

// OnAnimation forwards the tick to every child.
func (b *Base) OnAnimation(params *animation.Params) {
	for _, child := range b.children {
		child.OnAnimation(params)
	}
}

func (b *Base) Focusable() bool { return false }

// Focused walks the parent chain; the component is focused iff every
// ancestor's active child leads back to it. A component with no parent is a
// root and is always focused.
func (b *Base) Focused() bool {
	current := b.outer()
	for {
		parent := current.Parent()
		if parent == nil {
			return true
		}
		if parent.ActiveChild() != current {
			return false
		}
		current = parent
	}
}

func (b *Base) Active() bool {
	parent := b.outer().Parent()
	return parent == nil || parent.ActiveChild() == b.outer()
}

// TakeFocus walks up the parent chain updating each ancestor's active-child
// pointer. Requesting focus on a non-focusable component is a silent no-op.
func (b *Base) TakeFocus() {
	if !b.outer().Focusable() {
		return
	}
	child := b.outer()
	for {
		parent := child.Parent()
		if parent == nil {
			return
		}
		parent.SetActiveChild(child)
		child = parent
	}
}

func (b *Base) Parent() Component { return b.parent }

func (b *Base) Children() []Component { return b.children }

func (b *Base) Add(children ...Component) {
	for _, child := range children {
		if child.Parent() != nil {
			child.Detach()
		}
		child.base().parent = b.outer()
		b.children = append(b.children, child)
	}
}

func (b *Base) Detach() {
	parent := b.parent
	if parent == nil {
		return
	}
	pb := parent.base()
	for i, child := range pb.children {
		if child == b.outer() {
			pb.children = append(pb.children[:i], pb.children[i+1:]...)
			break
		}
	}
	if pb.active == b.outer() {
		pb.active = nil
	}
	b.parent = nil
}

func (b *Base) DetachAllChildren() {
	for _, child := range b.children {
		child.base().parent = nil
	}
	b.children = nil
	b.active = nil
}

func (b *Base) ActiveChild() Component {
	if b.active != nil {
		return b.active
	}
	if len(b.children) > 0 {
		return b.children[0]
	}
	return nil
}

func (b *Base) SetActiveChild(child Component) {
	for _, c := range b.children {
		if c == child {
			b.active = child
			return
		}
	}
}
