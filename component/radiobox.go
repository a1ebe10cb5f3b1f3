package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/render"
)

// RadioboxOption configures a Radiobox. Empty prefixes fall back to the
// defaults and a nil OnChange to a no-op.
type RadioboxOption struct {
	CheckedPrefix   string
	UncheckedPrefix string
	Style           StyleSet
	// OnChange is called when the selected entry changes.
	OnChange func()
}

// DefaultRadioboxOption returns the standard radiobox configuration.
func DefaultRadioboxOption() RadioboxOption {
	return RadioboxOption{
		CheckedPrefix:   "◉ ",
		UncheckedPrefix: "○ ",
		Style:           DefaultStyleSet(),
		OnChange:        func() {},
	}
}

// Radiobox is an exclusive-selection list: one entry checked at a time, bound
// to caller-owned storage. Up/Down move a cursor over the entries; Enter,
// Space or a click checks the entry under it.
type Radiobox struct {
	Base
	entries  []string
	selected *int
	cursor   int
	option   RadioboxOption
	box      render.Rect
	boxes    []render.Rect
	pressed  bool
}

// NewRadiobox creates a radiobox over entries, bound to selected. A nil
// pointer binds to internal storage.
func NewRadiobox(entries []string, selected *int) *Radiobox {
	return NewRadioboxWith(entries, selected, DefaultRadioboxOption())
}

// NewRadioboxWith creates a radiobox with an explicit configuration.
func NewRadioboxWith(entries []string, selected *int, option RadioboxOption) *Radiobox {
	if selected == nil {
		selected = new(int)
	}
	defaults := DefaultRadioboxOption()
	if option.CheckedPrefix == "" {
		option.CheckedPrefix = defaults.CheckedPrefix
	}
	if option.UncheckedPrefix == "" {
		option.UncheckedPrefix = defaults.UncheckedPrefix
	}
	if option.OnChange == nil {
		option.OnChange = defaults.OnChange
	}
	return Make(&Radiobox{entries: entries, selected: selected, option: option})
}

// Selected returns the index of the checked entry, clamped to the entry
// range.
func (r *Radiobox) Selected() int { return clampIndex(*r.selected, len(r.entries)) }

// Cursor returns the index of the entry under the cursor.
func (r *Radiobox) Cursor() int { return clampIndex(r.cursor, len(r.entries)) }

func (r *Radiobox) Focusable() bool { return len(r.entries) > 0 }

func (r *Radiobox) Render() render.Element {
	if len(r.boxes) != len(r.entries) {
		r.boxes = make([]render.Rect, len(r.entries))
	}
	focused := r.Focused()
	selected := r.Selected()
	cursor := r.Cursor()
	rows := make([]render.Element, len(r.entries))
	for i, entry := range r.entries {
		prefix := r.option.UncheckedPrefix
		if i == selected {
			prefix = r.option.CheckedPrefix
		}
		style := r.option.Style.pick(i == selected, focused && i == cursor)
		rows[i] = render.Compose(style, render.Reflect(&r.boxes[i]))(render.Text(prefix + entry))
	}
	return render.Reflect(&r.box)(render.VBox(rows...))
}

// check makes index the selected entry, firing OnChange only on a change.
func (r *Radiobox) check(index int) {
	index = clampIndex(index, len(r.entries))
	r.cursor = index
	if index == r.Selected() {
		return
	}
	*r.selected = index
	r.option.OnChange()
}

func (r *Radiobox) OnEvent(event Event) bool {
	if event.IsMouse() {
		return r.onMouseEvent(event)
	}
	if !r.Focused() || len(r.entries) == 0 {
		return false
	}
	key := event.Key()
	switch key.Key() {
	case tcell.KeyUp:
		r.cursor = clampIndex(r.Cursor()-1, len(r.entries))
		return true
	case tcell.KeyDown:
		r.cursor = clampIndex(r.Cursor()+1, len(r.entries))
		return true
	case tcell.KeyHome:
		r.cursor = 0
		return true
	case tcell.KeyEnd:
		r.cursor = len(r.entries) - 1
		return true
	case tcell.KeyEnter:
		r.check(r.Cursor())
		return true
	case tcell.KeyRune:
		if key.Rune() == ' ' {
			r.check(r.Cursor())
			return true
		}
	}
	return false
}

func (r *Radiobox) onMouseEvent(event Event) bool {
	mouse := event.Mouse()
	if mouse.Buttons()&tcell.ButtonPrimary == 0 {
		r.pressed = false
	}
	x, y := event.MousePosition()
	if !r.box.Contains(x, y) {
		return false
	}
	if !event.CaptureMouse(r.outer()) {
		return false
	}
	r.TakeFocus()
	if mouse.Buttons()&tcell.ButtonPrimary != 0 {
		if !r.pressed {
			r.pressed = true
			for i := range r.boxes {
				if r.boxes[i].Contains(x, y) {
					r.check(i)
					break
				}
			}
		}
		return true
	}
	return false
}
