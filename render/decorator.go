package render

// Decorator is a composable transform over elements. Compose(a, b) applies a
// first, then b, so Compose(Border, Inverted) draws a border and inverts the
// whole bordered block.
type Decorator func(Element) Element

// Compose combines decorators left to right into a single decorator.
func Compose(ds ...Decorator) Decorator {
	return func(e Element) Element {
		for _, d := range ds {
			e = d(e)
		}
		return e
	}
}

// Nothing is the identity decorator.
func Nothing(e Element) Element { return e }

type styled struct {
	child Element
	style Style
}

// Styled returns a decorator that merges the given style over the inherited
// style for the wrapped subtree.
func Styled(style Style) Decorator {
	return func(e Element) Element {
		return &styled{child: e, style: style}
	}
}

// Inverted swaps foreground and background for the wrapped subtree.
func Inverted(e Element) Element {
	return Styled(Style{Reverse: true})(e)
}

// Bold renders the wrapped subtree in bold.
func Bold(e Element) Element {
	return Styled(Style{Bold: true})(e)
}

func (d *styled) MinSize() (int, int) { return d.child.MinSize() }

func (d *styled) Layout(x, y, w, h int) *Node {
	return &Node{
		Element:  d,
		Rect:     Rect{X: x, Y: y, W: w, H: h},
		Children: []*Node{d.child.Layout(x, y, w, h)},
	}
}

func (d *styled) Draw(s Screen, rect Rect, style Style) {
	// style merging happens in DrawTree, the child paints itself
}

type border struct {
	child Element
}

// Border draws a single-line border around its child.
func Border(e Element) Element {
	return &border{child: e}
}

func (b *border) MinSize() (int, int) {
	cw, ch := b.child.MinSize()
	return cw + 2, ch + 2
}

func (b *border) Layout(x, y, w, h int) *Node {
	innerW, innerH := max(w-2, 0), max(h-2, 0)
	return &Node{
		Element:  b,
		Rect:     Rect{X: x, Y: y, W: w, H: h},
		Children: []*Node{b.child.Layout(x+1, y+1, innerW, innerH)},
	}
}

const (
	hLine          = '─'
	vLine          = '│'
	cornerTopLeft  = '┌'
	cornerTopRight = '┐'
	cornerBotLeft  = '└'
	cornerBotRight = '┘'
)

func (b *border) Draw(s Screen, rect Rect, style Style) {
	// Too small to draw a border
	if rect.W < 2 || rect.H < 2 {
		return
	}
	st := style.Apply()
	for i := range rect.W {
		s.SetContent(rect.X+i, rect.Y, hLine, nil, st)
		s.SetContent(rect.X+i, rect.Y+rect.H-1, hLine, nil, st)
	}
	for i := range rect.H {
		s.SetContent(rect.X, rect.Y+i, vLine, nil, st)
		s.SetContent(rect.X+rect.W-1, rect.Y+i, vLine, nil, st)
	}
	s.SetContent(rect.X, rect.Y, cornerTopLeft, nil, st)
	s.SetContent(rect.X+rect.W-1, rect.Y, cornerTopRight, nil, st)
	s.SetContent(rect.X, rect.Y+rect.H-1, cornerBotLeft, nil, st)
	s.SetContent(rect.X+rect.W-1, rect.Y+rect.H-1, cornerBotRight, nil, st)
}

type padding struct {
	child  Element
	amount int
}

// Padding adds n blank cells around its child on every side.
func Padding(n int) Decorator {
	return func(e Element) Element {
		return &padding{child: e, amount: n}
	}
}

func (p *padding) MinSize() (int, int) {
	cw, ch := p.child.MinSize()
	return cw + 2*p.amount, ch + 2*p.amount
}

func (p *padding) Layout(x, y, w, h int) *Node {
	innerW, innerH := max(w-2*p.amount, 0), max(h-2*p.amount, 0)
	return &Node{
		Element:  p,
		Rect:     Rect{X: x, Y: y, W: w, H: h},
		Children: []*Node{p.child.Layout(x+p.amount, y+p.amount, innerW, innerH)},
	}
}

func (p *padding) Draw(s Screen, rect Rect, style Style) {
	if rect.Empty() {
		return
	}
	st := style.Apply()
	for dy := range rect.H {
		for dx := range rect.W {
			s.SetContent(rect.X+dx, rect.Y+dy, ' ', nil, st)
		}
	}
}

type reflected struct {
	child Element
	box   *Rect
}

// Reflect records the rectangle the wrapped element is laid out into. Widgets
// use the recorded box for mouse hit-testing on later events.
func Reflect(box *Rect) Decorator {
	return func(e Element) Element {
		return &reflected{child: e, box: box}
	}
}

func (r *reflected) MinSize() (int, int) { return r.child.MinSize() }

func (r *reflected) Layout(x, y, w, h int) *Node {
	*r.box = Rect{X: x, Y: y, W: w, H: h}
	return &Node{
		Element:  r,
		Rect:     Rect{X: x, Y: y, W: w, H: h},
		Children: []*Node{r.child.Layout(x, y, w, h)},
	}
}

func (r *reflected) Draw(Screen, Rect, Style) {}
