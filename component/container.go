package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/render"
)

// containerBase tracks which child is on the focus path through an integer
// selector, optionally bound to caller-owned storage.
type containerBase struct {
	Base
	ownSelector int
	selector    *int
}

func (c *containerBase) init(selector *int) {
	if selector == nil {
		selector = &c.ownSelector
	}
	c.selector = selector
}

func (c *containerBase) sel() int {
	n := len(c.Children())
	if n == 0 {
		return 0
	}
	s := *c.selector
	if s < 0 {
		s = 0
	}
	if s >= n {
		s = n - 1
	}
	return s
}

func (c *containerBase) ActiveChild() Component {
	children := c.Children()
	if len(children) == 0 {
		return nil
	}
	return children[c.sel()]
}

func (c *containerBase) SetActiveChild(child Component) {
	for i, ch := range c.Children() {
		if ch == child {
			*c.selector = i
			return
		}
	}
}

// Focusable reports whether any child can take focus.
func (c *containerBase) Focusable() bool {
	for _, child := range c.Children() {
		if child.Focusable() {
			return true
		}
	}
	return false
}

// moveSelector shifts the selector by delta, clamped to the child range, and
// reports whether it moved.
func (c *containerBase) moveSelector(delta int) bool {
	n := len(c.Children())
	if n == 0 {
		return false
	}
	s := c.sel() + delta
	if s < 0 {
		s = 0
	}
	if s >= n {
		s = n - 1
	}
	if s == c.sel() {
		return false
	}
	*c.selector = s
	return true
}

// cycleSelector shifts the selector by delta, wrapping around.
func (c *containerBase) cycleSelector(delta int) bool {
	n := len(c.Children())
	if n <= 1 {
		return false
	}
	*c.selector = (c.sel() + n + delta) % n
	return true
}

type vertical struct {
	containerBase
}

// Vertical stacks children top to bottom. Up/Down move the focused child,
// Tab and Shift-Tab cycle through it with wrap-around.
func Vertical(children ...Component) Component {
	return VerticalWithSelector(nil, children...)
}

// VerticalWithSelector is Vertical with the focused-child index stored in
// caller-owned storage.
func VerticalWithSelector(selector *int, children ...Component) Component {
	v := Make(&vertical{})
	v.init(selector)
	v.Add(children...)
	return v
}

func (v *vertical) Render() render.Element {
	children := v.Children()
	els := make([]render.Element, len(children))
	for i, child := range children {
		els[i] = child.Render()
	}
	return render.VBox(els...)
}

func (v *vertical) OnEvent(event Event) bool {
	if v.Base.OnEvent(event) {
		return true
	}
	if event.IsMouse() || !v.Focused() {
		return false
	}
	switch event.Key().Key() {
	case tcell.KeyUp:
		return v.moveSelector(-1)
	case tcell.KeyDown:
		return v.moveSelector(1)
	case tcell.KeyTab:
		return v.cycleSelector(1)
	case tcell.KeyBacktab:
		return v.cycleSelector(-1)
	}
	return false
}

type horizontal struct {
	containerBase
}

// Horizontal lays children out side by side. Left/Right move the focused
// child, Tab and Shift-Tab cycle through it with wrap-around.
func Horizontal(children ...Component) Component {
	return HorizontalWithSelector(nil, children...)
}

// HorizontalWithSelector is Horizontal with the focused-child index stored
// in caller-owned storage.
func HorizontalWithSelector(selector *int, children ...Component) Component {
	h := Make(&horizontal{})
	h.init(selector)
	h.Add(children...)
	return h
}

func (h *horizontal) Render() render.Element {
	children := h.Children()
	els := make([]render.Element, len(children))
	for i, child := range children {
		els[i] = child.Render()
	}
	return render.HBox(els...)
}

func (h *horizontal) OnEvent(event Event) bool {
	if h.Base.OnEvent(event) {
		return true
	}
	if event.IsMouse() || !h.Focused() {
		return false
	}
	switch event.Key().Key() {
	case tcell.KeyLeft:
		return h.moveSelector(-1)
	case tcell.KeyRight:
		return h.moveSelector(1)
	case tcell.KeyTab:
		return h.cycleSelector(1)
	case tcell.KeyBacktab:
		return h.cycleSelector(-1)
	}
	return false
}

type tab struct {
	containerBase
}

// Tab renders and dispatches to the selected child only. The selector is
// caller-owned; switching it swaps the visible subtree.
func Tab(selector *int, children ...Component) Component {
	t := Make(&tab{})
	t.init(selector)
	t.Add(children...)
	return t
}

func (t *tab) Render() render.Element {
	active := t.ActiveChild()
	if active == nil {
		return render.Empty()
	}
	return active.Render()
}

func (t *tab) OnEvent(event Event) bool {
	active := t.ActiveChild()
	if active == nil {
		return false
	}
	return active.OnEvent(event)
}

type renderer struct {
	Base
	fn func() render.Element
}

// Renderer adapts a plain render function into a non-focusable leaf
// component, for static content inside a tree of interactive widgets.
func Renderer(fn func() render.Element) Component {
	return Make(&renderer{fn: fn})
}

func (r *renderer) Render() render.Element {
	return r.fn()
}
