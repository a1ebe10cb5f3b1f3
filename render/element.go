package render

import (
	"github.com/mattn/go-runewidth"
)

type text struct {
	content string
}

// Text creates a single-line text element.
func Text(content string) Element {
	return &text{content: content}
}

func (t *text) MinSize() (int, int) {
	return runewidth.StringWidth(t.content), 1
}

func (t *text) Layout(x, y, w, h int) *Node {
	return &Node{
		Element: t,
		Rect:    Rect{X: x, Y: y, W: w, H: h},
	}
}

func (t *text) Draw(s Screen, rect Rect, style Style) {
	if rect.Empty() {
		return
	}
	st := style.Apply()
	col := 0
	for _, r := range t.content {
		rw := runewidth.RuneWidth(r)
		if col+rw > rect.W {
			break
		}
		s.SetContent(rect.X+col, rect.Y, r, nil, st)
		col += rw
	}
}

type empty struct{}

// Empty creates an element that occupies no space and draws nothing.
func Empty() Element { return empty{} }

func (e empty) MinSize() (int, int) { return 0, 0 }
func (e empty) Layout(x, y, w, h int) *Node {
	return &Node{Element: e, Rect: Rect{X: x, Y: y, W: w, H: h}}
}
func (e empty) Draw(Screen, Rect, Style) {}

type vbox struct {
	children []Element
}

// VBox arranges children vertically, each at its minimum height.
func VBox(children ...Element) Element {
	return &vbox{children: children}
}

func (v *vbox) MinSize() (int, int) {
	maxW, totalH := 0, 0
	for _, child := range v.children {
		cw, ch := child.MinSize()
		if cw > maxW {
			maxW = cw
		}
		totalH += ch
	}
	return maxW, totalH
}

func (v *vbox) Layout(x, y, w, h int) *Node {
	n := &Node{
		Element: v,
		Rect:    Rect{X: x, Y: y, W: w, H: h},
	}
	used := 0
	for _, child := range v.children {
		_, ch := child.MinSize()
		if used+ch > h {
			ch = h - used
		}
		if ch > 0 {
			n.Children = append(n.Children, child.Layout(x, y+used, w, ch))
		}
		used += ch
	}
	return n
}

func (v *vbox) Draw(s Screen, rect Rect, style Style) {
	// children are drawn by DrawTree
}

type hbox struct {
	children []Element
}

// HBox arranges children horizontally, each at its minimum width.
func HBox(children ...Element) Element {
	return &hbox{children: children}
}

func (hb *hbox) MinSize() (int, int) {
	totalW, maxH := 0, 0
	for _, child := range hb.children {
		cw, ch := child.MinSize()
		totalW += cw
		if ch > maxH {
			maxH = ch
		}
	}
	return totalW, maxH
}

func (hb *hbox) Layout(x, y, w, h int) *Node {
	n := &Node{
		Element: hb,
		Rect:    Rect{X: x, Y: y, W: w, H: h},
	}
	used := 0
	for _, child := range hb.children {
		cw, _ := child.MinSize()
		if used+cw > w {
			cw = w - used
		}
		if cw > 0 {
			n.Children = append(n.Children, child.Layout(x+used, y, cw, h))
		}
		used += cw
	}
	return n
}

func (hb *hbox) Draw(s Screen, rect Rect, style Style) {
	// children are drawn by DrawTree
}
