package components

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArrow = fyne.NewStaticResource("arrow.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="8" height="8"/>`))

func TestArrowButton_TapInvokesHandler(t *testing.T) {
	test.NewTempApp(t)

	taps := 0
	button := NewArrowButton(func() { taps++ })
	test.Tap(button)
	test.Tap(button)

	assert.Equal(t, 2, taps)
}

func TestArrowButton_TapWithoutHandler(t *testing.T) {
	test.NewTempApp(t)

	button := NewArrowButton(nil)
	assert.NotPanics(t, func() { test.Tap(button) })
}

func TestArrowButton_SetArrowAndClear(t *testing.T) {
	test.NewTempApp(t)

	button := NewArrowButton(nil)
	assert.False(t, button.Showing())
	assert.Nil(t, button.Resource())

	button.SetArrow(testArrow)
	assert.True(t, button.Showing())
	assert.Equal(t, testArrow, button.Resource())

	button.Clear()
	assert.False(t, button.Showing())
	assert.Nil(t, button.Resource())
}

func TestArrowButton_RendererTracksImage(t *testing.T) {
	test.NewTempApp(t)

	button := NewArrowButton(nil)
	w := test.NewTempWindow(t, button)
	w.Resize(fyne.NewSize(200, 300))

	renderer := test.TempWidgetRenderer(t, button)
	objects := renderer.Objects()
	require.Len(t, objects, 2)
	img, ok := objects[1].(*canvas.Image)
	require.True(t, ok)
	assert.False(t, img.Visible())

	button.SetArrow(testArrow)
	assert.True(t, img.Visible())
	assert.Equal(t, testArrow, img.Resource)

	button.Clear()
	assert.False(t, img.Visible())
	assert.Nil(t, img.Resource)
}
