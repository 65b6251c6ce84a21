package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawUI renders the status line and key bindings overlay
func (app *App) drawUI() {
	status := "Selected: -"
	if app.Wheel.lastSelected != "" {
		status = fmt.Sprintf("Selected: %s", app.Wheel.lastSelected)
	}
	if !app.Wheel.wheel.IsActive() {
		status += "  (wheel hidden)"
	}
	rl.DrawText(status, 20, 20, 20, rl.RayWhite)

	if highlighted := app.Wheel.wheel.Highlighted(); highlighted != nil {
		hover := fmt.Sprintf("Hover: %s (slot %d)", highlighted.Segment.Name, highlighted.Slot)
		rl.DrawText(hover, 20, 48, 20, rl.NewColor(255, 200, 60, 255))
	}

	if !app.View.showHelp {
		return
	}

	help := []string{
		"Left click - select",
		"Space - show/hide wheel",
		"R - reset demo segments",
		"W - toggle wireframe",
		"H - toggle this help",
	}
	y := int32(rl.GetScreenHeight()) - int32(len(help))*24 - 16
	for _, line := range help {
		rl.DrawText(line, 20, y, 18, rl.NewColor(150, 160, 180, 255))
		y += 24
	}
}
