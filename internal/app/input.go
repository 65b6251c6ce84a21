package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes mouse and keyboard input for the frame
func (app *App) handleInput() {
	w := app.Wheel.wheel

	point := app.Wheel.host.Unproject(rl.GetMousePosition())
	w.Highlight(point)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		w.Select(point)
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		if w.IsActive() {
			w.Hide()
		} else {
			w.Show()
		}
	case rl.IsKeyPressed(rl.KeyR):
		w.Reset()
		app.addDemoSegments()
		w.Show()
		app.Wheel.lastSelected = ""
	case rl.IsKeyPressed(rl.KeyW):
		app.View.showWireframe = !app.View.showWireframe
	case rl.IsKeyPressed(rl.KeyH):
		app.View.showHelp = !app.View.showHelp
	}
}
