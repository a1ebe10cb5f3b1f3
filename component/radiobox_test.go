package component

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func TestRadioboxCursorMovesWithoutSelecting(t *testing.T) {
	selected := 0
	changes := 0
	radio := NewRadioboxWith([]string{"one", "two", "three"}, &selected, RadioboxOption{
		OnChange: func() { changes++ },
	})

	require.True(t, radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyDown), nil)))
	require.Equal(t, 1, radio.Cursor())
	require.Equal(t, 0, selected)
	require.Equal(t, 0, changes)

	require.True(t, radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyEnd), nil)))
	require.Equal(t, 2, radio.Cursor())
	require.Equal(t, 0, selected)
}

func TestRadioboxEnterChecksCursorEntry(t *testing.T) {
	selected := 0
	changes := 0
	radio := NewRadioboxWith([]string{"one", "two", "three"}, &selected, RadioboxOption{
		OnChange: func() { changes++ },
	})

	radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyDown), nil))
	require.True(t, radio.OnEvent(NewKeyEvent(keyEnter(), nil)))
	require.Equal(t, 1, selected)
	require.Equal(t, 1, changes)

	// re-checking the checked entry is not a change
	require.True(t, radio.OnEvent(NewKeyEvent(keyRune(' '), nil)))
	require.Equal(t, 1, selected)
	require.Equal(t, 1, changes)
}

func TestRadioboxCursorClamps(t *testing.T) {
	radio := NewRadiobox([]string{"one", "two"}, nil)

	radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyUp), nil))
	require.Equal(t, 0, radio.Cursor())

	radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyDown), nil))
	radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyDown), nil))
	require.Equal(t, 1, radio.Cursor())
}

func TestRadioboxMouseChecksEntry(t *testing.T) {
	selected := 0
	changes := 0
	radio := NewRadioboxWith([]string{"one", "two", "three"}, &selected, RadioboxOption{
		OnChange: func() { changes++ },
	})
	radio.Render().Layout(0, 0, 10, 3)

	var capture MouseCapture
	require.True(t, radio.OnEvent(NewMouseEvent(mousePress(2, 2), &capture)))
	require.Equal(t, 2, selected)
	require.Equal(t, 2, radio.Cursor())
	require.Equal(t, 1, changes)

	// still pressed, no second check
	radio.OnEvent(NewMouseEvent(mousePress(2, 1), &capture))
	require.Equal(t, 2, selected)
}

func TestRadioboxIgnoresKeysWhenUnfocused(t *testing.T) {
	selected := 0
	radio := NewRadiobox([]string{"one", "two"}, &selected)
	other := NewButton("OK", nil)
	Vertical(radio, other)
	other.TakeFocus()

	require.False(t, radio.OnEvent(NewKeyEvent(keyOf(tcell.KeyDown), nil)))
	require.Equal(t, 0, radio.Cursor())
}

func TestRadioboxSelectedClamped(t *testing.T) {
	selected := 9
	radio := NewRadiobox([]string{"one", "two"}, &selected)
	require.Equal(t, 1, radio.Selected())
}

func TestEmptyRadioboxNotFocusable(t *testing.T) {
	radio := NewRadiobox(nil, nil)
	require.False(t, radio.Focusable())
	require.False(t, radio.OnEvent(NewKeyEvent(keyEnter(), nil)))
}

func TestRadioboxPrefixes(t *testing.T) {
	selected := 1
	radio := NewRadiobox([]string{"a", "b"}, &selected)
	w, h := radio.Render().MinSize()
	// "◉ " + one-rune label per row
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
}
