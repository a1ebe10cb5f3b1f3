// Package render is the drawable-output language widgets target. An Element
// describes what to draw; Layout assigns screen rectangles producing a Node
// tree; DrawTree walks the tree painting onto a tcell screen. Components
// rebuild their Element every frame, so rendering stays a pure function of
// widget state.
package render

import (
	"github.com/gdamore/tcell/v2"
)

type Screen = tcell.Screen
type Color = tcell.Color

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type Style struct {
	FG        Color
	BG        Color
	Bold      bool
	Italic    bool
	Underline bool
	Reverse   bool
}

var DefaultStyle = Style{FG: tcell.ColorDefault, BG: tcell.ColorDefault}

func (s Style) Apply() tcell.Style {
	st := tcell.StyleDefault
	if s.FG != tcell.ColorDefault {
		st = st.Foreground(s.FG)
	}
	if s.BG != tcell.ColorDefault {
		st = st.Background(s.BG)
	}
	if s.Bold {
		st = st.Bold(true)
	}
	if s.Italic {
		st = st.Italic(true)
	}
	if s.Underline {
		st = st.Underline(true)
	}
	if s.Reverse {
		st = st.Reverse(true)
	}
	return st
}

// Merge returns a new Style by applying the child style's non-default
// attributes over the receiver (parent) style.
func (s Style) Merge(child Style) Style {
	if child.FG == tcell.ColorDefault {
		child.FG = s.FG
	}
	if child.BG == tcell.ColorDefault {
		child.BG = s.BG
	}
	child.Bold = child.Bold || s.Bold
	child.Italic = child.Italic || s.Italic
	child.Underline = child.Underline || s.Underline
	child.Reverse = child.Reverse || s.Reverse
	return child
}

// Element is the interface implemented by all drawable units.
type Element interface {
	MinSize() (w, h int)
	// Layout computes the layout node for this element given the position
	// and size. Nodes are rendered by DrawTree.
	Layout(x, y, w, h int) *Node
	// Draw paints the element onto the screen within the given rectangle.
	Draw(s Screen, rect Rect, style Style)
}

// Node is one laid-out element with its assigned screen rectangle.
type Node struct {
	Element  Element
	Rect     Rect
	Children []*Node
}

// DrawTree paints a layout tree. Style decorators merge into the inherited
// style on the way down, so a style applied to a box reaches every leaf.
func DrawTree(s Screen, n *Node, style Style) {
	if n == nil {
		return
	}
	if d, ok := n.Element.(*styled); ok {
		style = style.Merge(d.style)
	}
	n.Element.Draw(s, n.Rect, style)
	for _, child := range n.Children {
		DrawTree(s, child, style)
	}
}
