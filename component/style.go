package component

import (
	"github.com/IsakTheHacker/FTXUI/render"
)

// StyleSet enumerates the decorators for the four visual states of a
// selection widget. Nil fields fall back to the defaults: plain, inverted
// when focused, bold when selected, inverted bold when both.
type StyleSet struct {
	Normal          render.Decorator
	Focused         render.Decorator
	Selected        render.Decorator
	SelectedFocused render.Decorator
}

// DefaultStyleSet returns the standard four-state styles.
func DefaultStyleSet() StyleSet {
	return StyleSet{
		Normal:          render.Nothing,
		Focused:         render.Inverted,
		Selected:        render.Bold,
		SelectedFocused: render.Compose(render.Inverted, render.Bold),
	}
}

// pick evaluates the selection and focus state at render time so styling is
// always consistent with the current focus.
func (s StyleSet) pick(selected, focused bool) render.Decorator {
	defaults := DefaultStyleSet()
	switch {
	case selected && focused:
		if s.SelectedFocused != nil {
			return s.SelectedFocused
		}
		return defaults.SelectedFocused
	case selected:
		if s.Selected != nil {
			return s.Selected
		}
		return defaults.Selected
	case focused:
		if s.Focused != nil {
			return s.Focused
		}
		return defaults.Focused
	default:
		if s.Normal != nil {
			return s.Normal
		}
		return defaults.Normal
	}
}
