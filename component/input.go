package component

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/clip"
	"github.com/IsakTheHacker/FTXUI/render"
)

// InputOption configures an Input. Every field is optional: nil callbacks
// default to no-ops and a nil CursorPosition binds the cursor to internal
// storage.
type InputOption struct {
	// OnChange is called when the content changes.
	OnChange func()
	// OnEnter is called with the current text when the user presses Enter.
	OnEnter func(string)
	// Password obscures the content using '*'.
	Password bool
	// CursorPosition, when set, is caller-owned storage for the cursor.
	CursorPosition *int
	// Placeholder is shown while the input is empty.
	Placeholder string
}

// Input is a single-line editable text field. While focused the cell under
// the cursor is drawn inverted. Ctrl-V pastes from the clipboard and Ctrl-K
// kills to the end of the line, placing the killed text on the clipboard.
type Input struct {
	Base
	text      []rune
	ownCursor int
	option    InputOption
	box       render.Rect
	pressed   bool
}

// NewInput creates an input with the default configuration.
func NewInput() *Input {
	return NewInputWith(InputOption{})
}

// NewInputWith creates an input with an explicit configuration.
func NewInputWith(option InputOption) *Input {
	if option.OnChange == nil {
		option.OnChange = func() {}
	}
	if option.OnEnter == nil {
		option.OnEnter = func(string) {}
	}
	return Make(&Input{option: option})
}

// Text returns the current content.
func (in *Input) Text() string { return string(in.text) }

// SetText replaces the content and moves the cursor to the end.
func (in *Input) SetText(s string) {
	in.text = []rune(s)
	in.setCursor(len(in.text))
	in.option.OnChange()
}

func (in *Input) cursor() int {
	c := in.ownCursor
	if in.option.CursorPosition != nil {
		c = *in.option.CursorPosition
	}
	if c < 0 {
		return 0
	}
	if c > len(in.text) {
		return len(in.text)
	}
	return c
}

func (in *Input) setCursor(c int) {
	if c < 0 {
		c = 0
	}
	if c > len(in.text) {
		c = len(in.text)
	}
	if in.option.CursorPosition != nil {
		*in.option.CursorPosition = c
	} else {
		in.ownCursor = c
	}
}

func (in *Input) Focusable() bool { return true }

func (in *Input) display() []rune {
	if !in.option.Password {
		return in.text
	}
	return []rune(strings.Repeat("*", len(in.text)))
}

func (in *Input) Render() render.Element {
	reflect := render.Reflect(&in.box)
	if len(in.text) == 0 && !in.Focused() {
		return reflect(render.Text(in.option.Placeholder))
	}
	display := in.display()
	if !in.Focused() {
		return reflect(render.Text(string(display)))
	}
	// Focused: draw the cell under the cursor inverted.
	cursor := in.cursor()
	before := string(display[:cursor])
	at := " "
	after := ""
	if cursor < len(display) {
		at = string(display[cursor])
		after = string(display[cursor+1:])
	}
	return reflect(render.HBox(
		render.Text(before),
		render.Inverted(render.Text(at)),
		render.Text(after),
	))
}

func (in *Input) insert(runes []rune) {
	if len(runes) == 0 {
		return
	}
	cursor := in.cursor()
	text := make([]rune, 0, len(in.text)+len(runes))
	text = append(text, in.text[:cursor]...)
	text = append(text, runes...)
	text = append(text, in.text[cursor:]...)
	in.text = text
	in.setCursor(cursor + len(runes))
	in.option.OnChange()
}

func (in *Input) OnEvent(event Event) bool {
	if event.IsMouse() {
		return in.onMouseEvent(event)
	}
	if !in.Focused() {
		return false
	}
	cursor := in.cursor()
	switch event.Key().Key() {
	case tcell.KeyLeft:
		in.setCursor(cursor - 1)
	case tcell.KeyRight:
		in.setCursor(cursor + 1)
	case tcell.KeyHome:
		in.setCursor(0)
	case tcell.KeyEnd:
		in.setCursor(len(in.text))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if cursor == 0 {
			return true
		}
		in.text = append(in.text[:cursor-1], in.text[cursor:]...)
		in.setCursor(cursor - 1)
		in.option.OnChange()
	case tcell.KeyDelete:
		if cursor == len(in.text) {
			return true
		}
		in.text = append(in.text[:cursor], in.text[cursor+1:]...)
		in.option.OnChange()
	case tcell.KeyEnter:
		in.option.OnEnter(string(in.text))
	case tcell.KeyCtrlV:
		pasted := strings.ReplaceAll(clip.Read(), "\n", " ")
		in.insert([]rune(pasted))
	case tcell.KeyCtrlK:
		if cursor < len(in.text) {
			clip.Write(string(in.text[cursor:]))
			in.text = in.text[:cursor]
			in.option.OnChange()
		}
	case tcell.KeyRune:
		in.insert([]rune{event.Key().Rune()})
	default:
		return false
	}
	return true
}

func (in *Input) onMouseEvent(event Event) bool {
	mouse := event.Mouse()
	if mouse.Buttons()&tcell.ButtonPrimary == 0 {
		in.pressed = false
	}
	x, y := event.MousePosition()
	if !in.box.Contains(x, y) {
		return false
	}
	if !event.CaptureMouse(in.outer()) {
		return false
	}
	in.TakeFocus()
	if mouse.Buttons()&tcell.ButtonPrimary != 0 {
		if !in.pressed {
			in.pressed = true
			in.setCursor(x - in.box.X)
		}
		return true
	}
	return false
}
