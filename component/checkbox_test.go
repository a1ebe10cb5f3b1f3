package component

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckboxKeyToggle(t *testing.T) {
	checked := false
	changes := 0
	box := NewCheckboxWith("feature", &checked, CheckboxOption{
		OnChange: func() { changes++ },
	})

	require.True(t, box.OnEvent(NewKeyEvent(keyEnter(), nil)))
	require.True(t, checked)
	require.Equal(t, 1, changes)

	require.True(t, box.OnEvent(NewKeyEvent(keyRune(' '), nil)))
	require.False(t, checked)
	require.Equal(t, 2, changes)
}

func TestCheckboxIgnoresKeysWhenUnfocused(t *testing.T) {
	checked := false
	box := NewCheckbox("feature", &checked)
	other := NewButton("OK", nil)
	Vertical(box, other)
	other.TakeFocus()

	require.False(t, box.OnEvent(NewKeyEvent(keyEnter(), nil)))
	require.False(t, checked)
}

func TestCheckboxMouseToggle(t *testing.T) {
	checked := false
	box := NewCheckbox("feature", &checked)
	box.Render().Layout(0, 0, 20, 1)

	var capture MouseCapture
	require.True(t, box.OnEvent(NewMouseEvent(mousePress(3, 0), &capture)))
	require.True(t, checked)

	// still pressed, no second toggle
	box.OnEvent(NewMouseEvent(mousePress(3, 0), &capture))
	require.True(t, checked)

	box.OnEvent(NewMouseEvent(mouseRelease(3, 0), &capture))
	capture.Release()
	require.True(t, box.OnEvent(NewMouseEvent(mousePress(3, 0), &capture)))
	require.False(t, checked)
}

func TestCheckboxInternalStorage(t *testing.T) {
	box := NewCheckbox("feature", nil)
	require.False(t, box.Checked())
	box.OnEvent(NewKeyEvent(keyEnter(), nil))
	require.True(t, box.Checked())
}

func TestCheckboxZeroOptionFallsBackToDefaults(t *testing.T) {
	defaults := DefaultCheckboxOption()
	box := NewCheckboxWith("x", nil, CheckboxOption{})
	require.Equal(t, defaults.CheckedPrefix, box.option.CheckedPrefix)
	require.Equal(t, defaults.UncheckedPrefix, box.option.UncheckedPrefix)
	require.NotNil(t, box.option.OnChange)
	require.NotPanics(t, func() { box.toggle() })
}

func TestCheckboxPrefixes(t *testing.T) {
	checked := true
	box := NewCheckbox("x", &checked)
	w, _ := box.Render().MinSize()
	// "▣ " + "x"
	require.Equal(t, 3, w)
}
