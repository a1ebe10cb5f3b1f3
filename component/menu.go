package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/render"
)

// MenuOption configures a Menu or a Toggle. Nil callbacks fall back to
// no-ops.
type MenuOption struct {
	Style StyleSet
	// OnChange is called when the selected entry changes.
	OnChange func()
	// OnEnter is called when the user presses Enter.
	OnEnter func()
}

// DefaultMenuOption returns the standard menu configuration.
func DefaultMenuOption() MenuOption {
	return MenuOption{
		Style:    DefaultStyleSet(),
		OnChange: func() {},
		OnEnter:  func() {},
	}
}

func (o *MenuOption) normalize() {
	if o.OnChange == nil {
		o.OnChange = func() {}
	}
	if o.OnEnter == nil {
		o.OnEnter = func() {}
	}
}

// Menu is a vertical list of entries with one selected. The selected index
// lives in caller-owned storage. Up/Down move the selection; clicking an
// entry selects it.
type Menu struct {
	Base
	entries  []string
	selected *int
	option   MenuOption
	box      render.Rect
	boxes    []render.Rect
	pressed  bool
}

// NewMenu creates a menu over entries, bound to selected. A nil pointer
// binds to internal storage.
func NewMenu(entries []string, selected *int) *Menu {
	return NewMenuWith(entries, selected, DefaultMenuOption())
}

// NewMenuWith creates a menu with an explicit configuration.
func NewMenuWith(entries []string, selected *int, option MenuOption) *Menu {
	if selected == nil {
		selected = new(int)
	}
	option.normalize()
	return Make(&Menu{entries: entries, selected: selected, option: option})
}

// Selected returns the index of the selected entry, clamped to the entry
// range.
func (m *Menu) Selected() int { return clampIndex(*m.selected, len(m.entries)) }

func (m *Menu) Focusable() bool { return len(m.entries) > 0 }

func (m *Menu) Render() render.Element {
	if len(m.boxes) != len(m.entries) {
		m.boxes = make([]render.Rect, len(m.entries))
	}
	focused := m.Focused()
	selected := m.Selected()
	rows := make([]render.Element, len(m.entries))
	for i, entry := range m.entries {
		style := m.option.Style.pick(i == selected, focused && i == selected)
		rows[i] = render.Compose(style, render.Reflect(&m.boxes[i]))(render.Text(entry))
	}
	return render.Reflect(&m.box)(render.VBox(rows...))
}

func (m *Menu) selectEntry(index int) {
	index = clampIndex(index, len(m.entries))
	if index == m.Selected() {
		return
	}
	*m.selected = index
	m.option.OnChange()
}

func (m *Menu) OnEvent(event Event) bool {
	if event.IsMouse() {
		return m.onMouseEvent(event)
	}
	if !m.Focused() || len(m.entries) == 0 {
		return false
	}
	switch event.Key().Key() {
	case tcell.KeyUp:
		m.selectEntry(m.Selected() - 1)
		return true
	case tcell.KeyDown:
		m.selectEntry(m.Selected() + 1)
		return true
	case tcell.KeyHome:
		m.selectEntry(0)
		return true
	case tcell.KeyEnd:
		m.selectEntry(len(m.entries) - 1)
		return true
	case tcell.KeyEnter:
		m.option.OnEnter()
		return true
	}
	return false
}

func (m *Menu) onMouseEvent(event Event) bool {
	mouse := event.Mouse()
	if mouse.Buttons()&tcell.ButtonPrimary == 0 {
		m.pressed = false
	}
	x, y := event.MousePosition()
	if !m.box.Contains(x, y) {
		return false
	}
	if !event.CaptureMouse(m.outer()) {
		return false
	}
	m.TakeFocus()
	if mouse.Buttons()&tcell.ButtonPrimary != 0 {
		if !m.pressed {
			m.pressed = true
			for i := range m.boxes {
				if m.boxes[i].Contains(x, y) {
					m.selectEntry(i)
					break
				}
			}
		}
		return true
	}
	return false
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
