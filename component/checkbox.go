package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/render"
)

// CheckboxOption configures a Checkbox. Empty prefixes fall back to the
// defaults and a nil OnChange to a no-op.
type CheckboxOption struct {
	CheckedPrefix   string
	UncheckedPrefix string
	Style           StyleSet
	// OnChange is called when the checked state changes.
	OnChange func()
}

// DefaultCheckboxOption returns the standard checkbox configuration.
func DefaultCheckboxOption() CheckboxOption {
	return CheckboxOption{
		CheckedPrefix:   "▣ ",
		UncheckedPrefix: "☐ ",
		Style:           DefaultStyleSet(),
		OnChange:        func() {},
	}
}

// Checkbox is a labelled boolean toggle. The checked state lives in
// caller-owned storage so the application reads it directly.
type Checkbox struct {
	Base
	label   string
	checked *bool
	option  CheckboxOption
	box     render.Rect
	pressed bool
}

// NewCheckbox creates a checkbox bound to checked. A nil pointer binds to
// internal storage.
func NewCheckbox(label string, checked *bool) *Checkbox {
	return NewCheckboxWith(label, checked, DefaultCheckboxOption())
}

// NewCheckboxWith creates a checkbox with an explicit configuration.
func NewCheckboxWith(label string, checked *bool, option CheckboxOption) *Checkbox {
	if checked == nil {
		checked = new(bool)
	}
	defaults := DefaultCheckboxOption()
	if option.CheckedPrefix == "" {
		option.CheckedPrefix = defaults.CheckedPrefix
	}
	if option.UncheckedPrefix == "" {
		option.UncheckedPrefix = defaults.UncheckedPrefix
	}
	if option.OnChange == nil {
		option.OnChange = defaults.OnChange
	}
	return Make(&Checkbox{label: label, checked: checked, option: option})
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return *c.checked }

func (c *Checkbox) Focusable() bool { return true }

func (c *Checkbox) Render() render.Element {
	prefix := c.option.UncheckedPrefix
	if *c.checked {
		prefix = c.option.CheckedPrefix
	}
	style := c.option.Style.pick(*c.checked, c.Focused())
	return render.Compose(style, render.Reflect(&c.box))(render.Text(prefix + c.label))
}

func (c *Checkbox) toggle() {
	*c.checked = !*c.checked
	c.option.OnChange()
}

func (c *Checkbox) OnEvent(event Event) bool {
	if event.IsMouse() {
		mouse := event.Mouse()
		if mouse.Buttons()&tcell.ButtonPrimary == 0 {
			c.pressed = false
		}
		if !c.box.Contains(event.MousePosition()) {
			return false
		}
		if !event.CaptureMouse(c.outer()) {
			return false
		}
		c.TakeFocus()
		if mouse.Buttons()&tcell.ButtonPrimary != 0 {
			if !c.pressed {
				c.pressed = true
				c.toggle()
			}
			return true
		}
		return false
	}
	if !c.Focused() {
		return false
	}
	key := event.Key()
	if key.Key() == tcell.KeyEnter || (key.Key() == tcell.KeyRune && key.Rune() == ' ') {
		c.toggle()
		return true
	}
	return false
}
