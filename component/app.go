package component

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/IsakTheHacker/FTXUI/animation"
	"github.com/IsakTheHacker/FTXUI/render"
)

// App drives a component tree: it owns the screen, translates tcell events
// into component events, runs the animation clock and redraws after every
// event.
type App struct {
	Root   Component
	Screen render.Screen
	// QuitKey exits the run loop, default is Escape.
	QuitKey tcell.Key
	// FrameInterval is the animation frame period, default is 1/60 s.
	FrameInterval time.Duration

	capture MouseCapture
	done    chan struct{}
}

// NewApp creates an app over root using the default terminal screen.
func NewApp(root Component) (*App, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &App{
		Root:          root,
		Screen:        s,
		QuitKey:       tcell.KeyEscape,
		FrameInterval: time.Second / 60,
		done:          make(chan struct{}),
	}, nil
}

// Draw lays out and renders the component tree onto the screen.
func (a *App) Draw() {
	a.Screen.Clear()
	w, h := a.Screen.Size()
	element := a.Root.Render()
	render.DrawTree(a.Screen, element.Layout(0, 0, w, h), render.DefaultStyle)
	a.Screen.Show()
}

// HandleEvent feeds one tcell event into the tree and reports whether a
// component consumed it. The mouse capture owner, if any, sees mouse events
// first; the capture is released when all buttons are up.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.Root.OnEvent(NewKeyEvent(ev, &a.capture))
	case *tcell.EventMouse:
		event := NewMouseEvent(ev, &a.capture)
		handled := false
		if owner := a.capture.Owner(); owner != nil {
			handled = owner.OnEvent(event)
		}
		if !handled {
			handled = a.Root.OnEvent(event)
		}
		if ev.Buttons() == tcell.ButtonNone {
			a.capture.Release()
		}
		return handled
	}
	return false
}

// AnimationFrame advances every animation in the tree by elapsed.
func (a *App) AnimationFrame(elapsed time.Duration) {
	params := animation.NewParams(elapsed)
	a.Root.OnAnimation(&params)
}

// Run initializes the screen and processes events until Stop is called or
// QuitKey is pressed.
func (a *App) Run() error {
	if err := a.Screen.Init(); err != nil {
		return err
	}
	defer a.Screen.Fini()
	a.Screen.EnableMouse()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go a.Screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(a.FrameInterval)
	defer ticker.Stop()
	last := time.Now()

	a.Draw()
	for {
		select {
		case <-a.done:
			return nil
		case now := <-ticker.C:
			a.AnimationFrame(now.Sub(last))
			last = now
			a.Draw()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				a.Screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == a.QuitKey {
					return nil
				}
				a.HandleEvent(ev)
			case *tcell.EventMouse:
				a.HandleEvent(ev)
			}
			a.Draw()
		}
	}
}

// Stop makes Run return.
func (a *App) Stop() {
	close(a.done)
}
