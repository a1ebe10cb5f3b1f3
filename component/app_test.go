package component

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/IsakTheHacker/FTXUI/animation"
	"github.com/IsakTheHacker/FTXUI/render"
)

func newTestApp(t *testing.T, root Component) (*App, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 10)
	t.Cleanup(s.Fini)
	return &App{
		Root:          root,
		Screen:        s,
		QuitKey:       tcell.KeyEscape,
		FrameInterval: time.Second / 60,
		done:          make(chan struct{}),
	}, s
}

func TestAppDrawsRoot(t *testing.T) {
	app, s := newTestApp(t, Renderer(func() render.Element {
		return render.Text("hello")
	}))
	app.Draw()

	r, _, _, _ := s.GetContent(0, 0)
	require.Equal(t, 'h', r)
}

func TestAppClickReleasesCapture(t *testing.T) {
	clicks := 0
	button := NewButton("OK", func() { clicks++ })
	app, _ := newTestApp(t, Vertical(button))
	app.Draw()

	require.True(t, app.HandleEvent(mousePress(1, 1)))
	require.Equal(t, 1, clicks)
	require.Same(t, Component(button), app.capture.Owner())

	// all buttons up ends the gesture
	app.HandleEvent(mouseRelease(1, 1))
	require.Nil(t, app.capture.Owner())
}

func TestAppCaptureOwnerSeesDragFirst(t *testing.T) {
	a := newHitArea(render.Rect{X: 0, Y: 0, W: 5, H: 1})
	b := newHitArea(render.Rect{X: 5, Y: 0, W: 5, H: 1})
	app, _ := newTestApp(t, Vertical(a, b))

	require.True(t, app.HandleEvent(mousePress(2, 0)))
	require.Equal(t, 1, a.clicks)

	// dragging over b while a holds the gesture never reaches b
	app.HandleEvent(mousePress(7, 0))
	require.Equal(t, 0, b.clicks)
	require.Equal(t, 1, a.clicks)

	app.HandleEvent(mouseRelease(7, 0))
	require.Nil(t, app.capture.Owner())

	require.True(t, app.HandleEvent(mousePress(7, 0)))
	require.Equal(t, 1, b.clicks)
}

func TestAppKeyEvent(t *testing.T) {
	clicks := 0
	button := NewButton("OK", func() { clicks++ })
	app, _ := newTestApp(t, Vertical(button))
	button.TakeFocus()

	require.True(t, app.HandleEvent(keyEnter()))
	require.Equal(t, 1, clicks)
}

func TestAppAnimationFrame(t *testing.T) {
	button := NewAnimatedButtonWith("OK", nil, AnimatedButtonOption{
		Duration: 100 * time.Millisecond,
		Easing:   animation.Linear,
	})
	app, _ := newTestApp(t, button)

	// drawing targets the focused state, frames advance toward it
	app.Draw()
	app.AnimationFrame(50 * time.Millisecond)
	require.InDelta(t, 0.5, button.Progress(), 1e-9)
	app.AnimationFrame(50 * time.Millisecond)
	require.Equal(t, 1.0, button.Progress())
}

func TestAppStop(t *testing.T) {
	// No t.Cleanup(s.Fini) here: Run defers Screen.Fini itself, and
	// simscreen.Fini is not idempotent.
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 10)
	app := &App{
		Root:          Vertical(),
		Screen:        s,
		QuitKey:       tcell.KeyEscape,
		FrameInterval: time.Second / 60,
		done:          make(chan struct{}),
	}
	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	time.Sleep(50 * time.Millisecond)
	app.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
