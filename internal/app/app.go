package app

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gowheel/pkg/watcher"
	"github.com/philipparndt/gowheel/pkg/wheel"
)

type App struct {
	Wheel  WheelState
	View   ViewSettings
	Config ConfigState
}

// Run starts the interactive wheel demo. configPath may be empty, in
// which case the stock appearance is used and live reload is off.
func Run(configPath string) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := wheel.DefaultConfig()
	if configPath != "" {
		loaded, err := wheel.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	screenWidth := int32(900)
	screenHeight := int32(900)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(screenWidth, screenHeight, "gowheel")
	rl.SetTargetFPS(60)

	host := NewRenderHost()
	app := &App{
		Wheel: WheelState{
			host:  host,
			wheel: wheel.New(host, cfg, nil, logger),
		},
		View: ViewSettings{
			showHelp:      true,
			showWireframe: true,
		},
		Config: ConfigState{path: configPath},
	}

	app.addDemoSegments()
	app.Wheel.wheel.Show()

	// Watch the config file so appearance edits apply without a restart
	if configPath != "" {
		if err := app.setupConfigWatcher(logger); err != nil {
			logger.Warn("config live reload unavailable", "error", err)
		} else {
			defer app.Config.fileWatcher.Close()
		}
	}

	for !rl.WindowShouldClose() {
		if app.Config.needsReload.Swap(false) {
			app.reloadConfig(logger)
		}

		app.handleInput()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		app.updateViewport()
		app.Wheel.host.Draw(app.View.showWireframe)
		app.drawUI()

		rl.EndDrawing()
	}

	rl.CloseWindow()
}

// addDemoSegments populates the wheel with a sample action set
func (app *App) addDemoSegments() {
	w := app.Wheel.wheel
	w.AddSegments(
		wheel.NewSegment("menu", app.selectAction("menu")).
			At(wheel.PositionTop).
			WithIcon(color.RGBA{R: 120, G: 190, B: 255, A: 255}).
			WithLabel(),
		wheel.NewSegment("back", app.selectAction("back")).
			At(wheel.PositionBottom).
			WithIcon(color.RGBA{R: 255, G: 140, B: 120, A: 255}).
			WithLabel(),
		wheel.NewSegment("tools", app.selectAction("tools")).
			At(wheel.PositionLeft).
			WithIcon(color.RGBA{R: 160, G: 230, B: 140, A: 255}).
			WithLabel(),
		wheel.NewSegment("view", app.selectAction("view")).
			At(wheel.PositionRight).
			WithIcon(color.RGBA{R: 230, G: 200, B: 120, A: 255}).
			WithLabel(),
		wheel.NewSegment("extras", app.selectAction("extras")).
			WithIcon(color.RGBA{R: 200, G: 160, B: 230, A: 255}).
			WithLabel(),
	)
}

func (app *App) selectAction(name string) wheel.Action {
	return func() {
		app.Wheel.lastSelected = name
	}
}

// updateViewport fits the wheel into the current window size
func (app *App) updateViewport() {
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())

	size := float64(width)
	if float64(height) < size {
		size = float64(height)
	}
	far := app.Wheel.wheel.Config().FarRadius * app.Wheel.wheel.Config().HighlightScale
	ppu := 1.0
	if far > 0 && size > 0 {
		ppu = size / (2.2 * far)
	}

	app.Wheel.host.SetViewport(rl.Vector2{X: width / 2, Y: height / 2}, ppu)
}

func (app *App) setupConfigWatcher(logger *slog.Logger) error {
	fw, err := watcher.New(250*time.Millisecond, logger)
	if err != nil {
		return err
	}
	if err := fw.Watch(app.Config.path, func(string) {
		app.Config.needsReload.Store(true)
	}); err != nil {
		fw.Close()
		return err
	}
	app.Config.fileWatcher = fw
	return nil
}

// reloadConfig re-reads the config file and rebuilds the wheel with
// the new appearance. A broken file keeps the current appearance.
func (app *App) reloadConfig(logger *slog.Logger) {
	cfg, err := wheel.LoadConfig(app.Config.path)
	if err != nil {
		logger.Warn("config reload failed, keeping current appearance", "error", err)
		return
	}
	app.Wheel.wheel.Reconfigure(cfg)
	logger.Info("config reloaded", "path", app.Config.path)
}
