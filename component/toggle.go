package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/render"
)

// Toggle is the horizontal counterpart of Menu: entries laid out side by
// side with one selected, navigated with Left/Right.
type Toggle struct {
	Base
	entries  []string
	selected *int
	option   MenuOption
	box      render.Rect
	boxes    []render.Rect
	pressed  bool
}

// NewToggle creates a toggle over entries, bound to selected. A nil pointer
// binds to internal storage.
func NewToggle(entries []string, selected *int) *Toggle {
	return NewToggleWith(entries, selected, DefaultMenuOption())
}

// NewToggleWith creates a toggle with an explicit configuration.
func NewToggleWith(entries []string, selected *int, option MenuOption) *Toggle {
	if selected == nil {
		selected = new(int)
	}
	option.normalize()
	return Make(&Toggle{entries: entries, selected: selected, option: option})
}

// Selected returns the index of the selected entry, clamped to the entry
// range.
func (t *Toggle) Selected() int { return clampIndex(*t.selected, len(t.entries)) }

func (t *Toggle) Focusable() bool { return len(t.entries) > 0 }

func (t *Toggle) Render() render.Element {
	if len(t.boxes) != len(t.entries) {
		t.boxes = make([]render.Rect, len(t.entries))
	}
	focused := t.Focused()
	selected := t.Selected()
	cells := make([]render.Element, 0, 2*len(t.entries))
	for i, entry := range t.entries {
		if i > 0 {
			cells = append(cells, render.Text("│"))
		}
		style := t.option.Style.pick(i == selected, focused && i == selected)
		cells = append(cells, render.Compose(style, render.Reflect(&t.boxes[i]))(render.Text(entry)))
	}
	return render.Reflect(&t.box)(render.HBox(cells...))
}

func (t *Toggle) selectEntry(index int) {
	index = clampIndex(index, len(t.entries))
	if index == t.Selected() {
		return
	}
	*t.selected = index
	t.option.OnChange()
}

func (t *Toggle) OnEvent(event Event) bool {
	if event.IsMouse() {
		return t.onMouseEvent(event)
	}
	if !t.Focused() || len(t.entries) == 0 {
		return false
	}
	switch event.Key().Key() {
	case tcell.KeyLeft:
		t.selectEntry(t.Selected() - 1)
		return true
	case tcell.KeyRight:
		t.selectEntry(t.Selected() + 1)
		return true
	case tcell.KeyEnter:
		t.option.OnEnter()
		return true
	}
	return false
}

func (t *Toggle) onMouseEvent(event Event) bool {
	mouse := event.Mouse()
	if mouse.Buttons()&tcell.ButtonPrimary == 0 {
		t.pressed = false
	}
	x, y := event.MousePosition()
	if !t.box.Contains(x, y) {
		return false
	}
	if !event.CaptureMouse(t.outer()) {
		return false
	}
	t.TakeFocus()
	if mouse.Buttons()&tcell.ButtonPrimary != 0 {
		if !t.pressed {
			t.pressed = true
			for i := range t.boxes {
				if t.boxes[i].Contains(x, y) {
					t.selectEntry(i)
					break
				}
			}
		}
		return true
	}
	return false
}
