package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func cellAt(s tcell.SimulationScreen, x, y int) (rune, tcell.Style) {
	r, _, style, _ := s.GetContent(x, y)
	return r, style
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"inside", 3, 4, true},
		{"top-left corner", 2, 3, true},
		{"bottom-right corner", 5, 4, true},
		{"right edge outside", 6, 3, false},
		{"bottom edge outside", 2, 5, false},
		{"left of rect", 1, 3, false},
		{"above rect", 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}
}

func TestRectEmpty(t *testing.T) {
	require.True(t, Rect{W: 0, H: 5}.Empty())
	require.True(t, Rect{W: 5, H: 0}.Empty())
	require.False(t, Rect{W: 1, H: 1}.Empty())
}

func TestStyleMerge(t *testing.T) {
	parent := Style{FG: tcell.ColorRed, Bold: true}
	child := Style{BG: tcell.ColorBlue}

	merged := parent.Merge(child)
	require.Equal(t, tcell.ColorRed, merged.FG)
	require.Equal(t, tcell.ColorBlue, merged.BG)
	require.True(t, merged.Bold)

	// the child's explicit attributes win
	override := parent.Merge(Style{FG: tcell.ColorGreen})
	require.Equal(t, tcell.ColorGreen, override.FG)
}

func TestDefaultStyleIsTerminalDefault(t *testing.T) {
	require.Equal(t, tcell.StyleDefault, DefaultStyle.Apply())
	// merging over the default changes nothing
	require.Equal(t, Style{FG: tcell.ColorRed}, DefaultStyle.Merge(Style{FG: tcell.ColorRed}))
}

func TestTextMinSize(t *testing.T) {
	w, h := Text("hello").MinSize()
	require.Equal(t, 5, w)
	require.Equal(t, 1, h)

	// wide runes count double
	w, _ = Text("日本").MinSize()
	require.Equal(t, 4, w)
}

func TestTextDraw(t *testing.T) {
	s := newTestScreen(t, 10, 3)
	el := Text("hi")
	DrawTree(s, el.Layout(1, 1, 5, 1), Style{})
	s.Show()

	r, _ := cellAt(s, 1, 1)
	require.Equal(t, 'h', r)
	r, _ = cellAt(s, 2, 1)
	require.Equal(t, 'i', r)
}

func TestVBoxLayout(t *testing.T) {
	el := VBox(Text("one"), Text("three"))
	w, h := el.MinSize()
	require.Equal(t, 5, w)
	require.Equal(t, 2, h)

	n := el.Layout(0, 0, 10, 5)
	require.Len(t, n.Children, 2)
	require.Equal(t, Rect{X: 0, Y: 0, W: 10, H: 1}, n.Children[0].Rect)
	require.Equal(t, Rect{X: 0, Y: 1, W: 10, H: 1}, n.Children[1].Rect)
}

func TestHBoxLayout(t *testing.T) {
	el := HBox(Text("ab"), Text("c"))
	w, h := el.MinSize()
	require.Equal(t, 3, w)
	require.Equal(t, 1, h)

	n := el.Layout(0, 0, 10, 1)
	require.Len(t, n.Children, 2)
	require.Equal(t, Rect{X: 0, Y: 0, W: 2, H: 1}, n.Children[0].Rect)
	require.Equal(t, Rect{X: 2, Y: 0, W: 1, H: 1}, n.Children[1].Rect)
}

func TestVBoxClipsOverflow(t *testing.T) {
	el := VBox(Text("a"), Text("b"), Text("c"))
	n := el.Layout(0, 0, 5, 2)
	require.Len(t, n.Children, 2)
}

func TestBorder(t *testing.T) {
	el := Border(Text("hi"))
	w, h := el.MinSize()
	require.Equal(t, 4, w)
	require.Equal(t, 3, h)

	n := el.Layout(0, 0, 4, 3)
	require.Len(t, n.Children, 1)
	require.Equal(t, Rect{X: 1, Y: 1, W: 2, H: 1}, n.Children[0].Rect)

	s := newTestScreen(t, 6, 4)
	DrawTree(s, n, Style{})
	s.Show()

	r, _ := cellAt(s, 0, 0)
	require.Equal(t, '┌', r)
	r, _ = cellAt(s, 3, 0)
	require.Equal(t, '┐', r)
	r, _ = cellAt(s, 0, 2)
	require.Equal(t, '└', r)
	r, _ = cellAt(s, 3, 2)
	require.Equal(t, '┘', r)
	r, _ = cellAt(s, 1, 1)
	require.Equal(t, 'h', r)
}

func TestPadding(t *testing.T) {
	el := Padding(1)(Text("x"))
	w, h := el.MinSize()
	require.Equal(t, 3, w)
	require.Equal(t, 3, h)

	n := el.Layout(0, 0, 3, 3)
	require.Equal(t, Rect{X: 1, Y: 1, W: 1, H: 1}, n.Children[0].Rect)
}

func TestReflectRecordsBox(t *testing.T) {
	var box Rect
	el := Reflect(&box)(Text("hello"))
	el.Layout(2, 3, 5, 1)
	require.Equal(t, Rect{X: 2, Y: 3, W: 5, H: 1}, box)

	// a later layout overwrites the recording
	el.Layout(0, 0, 7, 1)
	require.Equal(t, Rect{X: 0, Y: 0, W: 7, H: 1}, box)
}

func TestStyledMergesDown(t *testing.T) {
	s := newTestScreen(t, 10, 2)
	el := Styled(Style{Reverse: true})(VBox(Text("a")))
	DrawTree(s, el.Layout(0, 0, 5, 1), Style{})
	s.Show()

	_, style := cellAt(s, 0, 0)
	_, _, attrs := style.Decompose()
	require.NotZero(t, attrs&tcell.AttrReverse)
}

func TestCompose(t *testing.T) {
	var box Rect
	el := Compose(Border, Reflect(&box))(Text("hi"))

	// the reflect wraps the border, so the recorded box includes it
	w, h := el.MinSize()
	require.Equal(t, 4, w)
	require.Equal(t, 3, h)
	el.Layout(0, 0, 4, 3)
	require.Equal(t, Rect{X: 0, Y: 0, W: 4, H: 3}, box)
}

func TestNothing(t *testing.T) {
	el := Text("x")
	require.Equal(t, el, Nothing(el))
}
