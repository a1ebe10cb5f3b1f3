package component

import (
	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/render"
)

// ButtonOption configures a Button.
type ButtonOption struct {
	// Border draws a box around the label.
	Border bool
}

// DefaultButtonOption returns the standard button configuration.
func DefaultButtonOption() ButtonOption {
	return ButtonOption{Border: true}
}

// Button is a clickable label. It is drawn inverted while focused and fires
// its callback on a left mouse press inside its rectangle or on Enter while
// focused.
type Button struct {
	Base
	label   string
	onClick func()
	option  ButtonOption
	box     render.Rect
	pressed bool
}

// NewButton creates a button with the default configuration.
func NewButton(label string, onClick func()) *Button {
	return NewButtonWith(label, onClick, DefaultButtonOption())
}

// NewButtonWith creates a button with an explicit configuration.
func NewButtonWith(label string, onClick func(), option ButtonOption) *Button {
	if onClick == nil {
		onClick = func() {}
	}
	return Make(&Button{label: label, onClick: onClick, option: option})
}

// Label returns the button's label.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the button's label.
func (b *Button) SetLabel(label string) { b.label = label }

func (b *Button) Focusable() bool { return true }

func (b *Button) Render() render.Element {
	style := render.Nothing
	if b.Focused() {
		style = render.Inverted
	}
	myBorder := render.Nothing
	if b.option.Border {
		myBorder = render.Border
	}
	return render.Compose(myBorder, style, render.Reflect(&b.box))(render.Text(b.label))
}

func (b *Button) OnEvent(event Event) bool {
	if event.IsMouse() {
		return b.onMouseEvent(event, b.onClick)
	}
	if event.Key().Key() == tcell.KeyEnter && b.Focused() {
		b.onClick()
		return true
	}
	return false
}

// onMouseEvent implements the shared button gesture: any mouse event inside
// the recorded box claims the capture token (or declines the event) and
// takes focus; the callback fires once per press.
func (b *Button) onMouseEvent(event Event, click func()) bool {
	mouse := event.Mouse()
	if mouse.Buttons()&tcell.ButtonPrimary == 0 {
		b.pressed = false
	}
	if !b.box.Contains(event.MousePosition()) {
		return false
	}
	if !event.CaptureMouse(b.outer()) {
		return false
	}
	b.TakeFocus()
	if mouse.Buttons()&tcell.ButtonPrimary != 0 {
		if !b.pressed {
			b.pressed = true
			click()
		}
		return true
	}
	return false
}
