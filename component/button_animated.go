package component

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/animation"
	"github.com/IsakTheHacker/FTXUI/render"
)

// AnimatedButtonOption configures an AnimatedButton. Zero-valued colors fall
// back to the defaults, a zero duration to 200ms and a nil easing to
// QuadraticOut.
type AnimatedButtonOption struct {
	Foreground        tcell.Color
	Background        tcell.Color
	ForegroundFocused tcell.Color
	BackgroundFocused tcell.Color
	Duration          time.Duration
	Easing            animation.Easing
}

// DefaultAnimatedButtonOption returns the standard animated-button
// configuration.
func DefaultAnimatedButtonOption() AnimatedButtonOption {
	return AnimatedButtonOption{
		Foreground:        tcell.ColorSilver,
		Background:        tcell.ColorBlack,
		ForegroundFocused: tcell.ColorWhite,
		BackgroundFocused: tcell.ColorGray,
		Duration:          200 * time.Millisecond,
		Easing:            animation.QuadraticOut,
	}
}

// AnimatedButton is a button whose colors fade between the unfocused and
// focused pair. A scalar progress value is animated toward 1 while focused
// and 0 while not; rendering interpolates the color pairs by the current
// progress. Clicking flashes the button by resetting progress to 0.5 and
// re-targeting 1.
type AnimatedButton struct {
	Base
	label    string
	onClick  func()
	option   AnimatedButtonOption
	box      render.Rect
	pressed  bool
	progress float64
	animator *animation.Animator
}

// NewAnimatedButton creates an animated button with the default
// configuration.
func NewAnimatedButton(label string, onClick func()) *AnimatedButton {
	return NewAnimatedButtonWith(label, onClick, DefaultAnimatedButtonOption())
}

// NewAnimatedButtonWith creates an animated button with an explicit
// configuration.
func NewAnimatedButtonWith(label string, onClick func(), option AnimatedButtonOption) *AnimatedButton {
	if onClick == nil {
		onClick = func() {}
	}
	defaults := DefaultAnimatedButtonOption()
	if option.Foreground == tcell.ColorDefault {
		option.Foreground = defaults.Foreground
	}
	if option.Background == tcell.ColorDefault {
		option.Background = defaults.Background
	}
	if option.ForegroundFocused == tcell.ColorDefault {
		option.ForegroundFocused = defaults.ForegroundFocused
	}
	if option.BackgroundFocused == tcell.ColorDefault {
		option.BackgroundFocused = defaults.BackgroundFocused
	}
	if option.Duration == 0 {
		option.Duration = defaults.Duration
	}
	if option.Easing == nil {
		option.Easing = defaults.Easing
	}
	b := Make(&AnimatedButton{label: label, onClick: onClick, option: option})
	b.animator = animation.NewAnimator(&b.progress, 0, 0, option.Easing)
	return b
}

// Progress returns the current animation progress in [0, 1].
func (b *AnimatedButton) Progress() float64 { return b.progress }

func (b *AnimatedButton) Focusable() bool { return true }

func (b *AnimatedButton) Render() render.Element {
	target := 0.0
	if b.Focused() {
		target = 1.0
	}
	// Re-targeting is idempotent: setting the current target again must not
	// disturb the in-flight trajectory.
	if target != b.animator.To() {
		b.setAnimationTarget(target)
	}
	style := render.Styled(render.Style{
		FG: interpolateColor(b.option.Foreground, b.option.ForegroundFocused, b.progress),
		BG: interpolateColor(b.option.Background, b.option.BackgroundFocused, b.progress),
	})
	return render.Compose(render.Padding(1), style, render.Reflect(&b.box))(render.Text(b.label))
}

func (b *AnimatedButton) setAnimationTarget(target float64) {
	b.animator = animation.NewAnimator(&b.progress, target, b.option.Duration, b.option.Easing)
}

func (b *AnimatedButton) OnAnimation(params *animation.Params) {
	b.animator.OnAnimation(params)
}

func (b *AnimatedButton) click() {
	b.onClick()
	b.progress = 0.5
	b.setAnimationTarget(1.0)
}

func (b *AnimatedButton) OnEvent(event Event) bool {
	if event.IsMouse() {
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
				b.click()
			}
			return true
		}
		return false
	}
	if event.Key().Key() == tcell.KeyEnter && b.Focused() {
		b.click()
		return true
	}
	return false
}
