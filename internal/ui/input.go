// internal/ui/input.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-polygon-editor/internal/editor"
)

var (
	cursorPosition       = ebiten.CursorPosition
	isMouseButtonPressed = ebiten.IsMouseButtonPressed
	isKeyPressed         = ebiten.IsKeyPressed
	wheel                = ebiten.Wheel
)

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	cursor func() (int, int),
	mouse func(ebiten.MouseButton) bool,
	key func(ebiten.Key) bool,
	scroll func() (float64, float64),
) func() {
	oldCursor := cursorPosition
	oldMouse := isMouseButtonPressed
	oldKey := isKeyPressed
	oldWheel := wheel
	cursorPosition = cursor
	isMouseButtonPressed = mouse
	isKeyPressed = key
	wheel = scroll
	return func() {
		cursorPosition = oldCursor
		isMouseButtonPressed = oldMouse
		isKeyPressed = oldKey
		wheel = oldWheel
	}
}

// Кнопки мыши и их аналоги в редакторе.
var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	editor editor.Button
}{
	{ebiten.MouseButtonLeft, editor.ButtonPrimary},
	{ebiten.MouseButtonRight, editor.ButtonSecondary},
	{ebiten.MouseButtonMiddle, editor.ButtonMiddle},
}

// edges tracks pressed state between frames so a held button or key fires
// once.
type edges struct {
	mouse map[ebiten.MouseButton]bool
	keys  map[ebiten.Key]bool
}

func newEdges() edges {
	return edges{
		mouse: make(map[ebiten.MouseButton]bool),
		keys:  make(map[ebiten.Key]bool),
	}
}

// mouseEdge returns (justPressed, justReleased) for b.
func (e edges) mouseEdge(b ebiten.MouseButton) (bool, bool) {
	now := isMouseButtonPressed(b)
	was := e.mouse[b]
	e.mouse[b] = now
	return now && !was, !now && was
}

func (e edges) keyPressed(k ebiten.Key) bool {
	now := isKeyPressed(k)
	was := e.keys[k]
	e.keys[k] = now
	return now && !was
}
