package app

import (
	"sync/atomic"

	"github.com/philipparndt/gowheel/pkg/watcher"
	"github.com/philipparndt/gowheel/pkg/wheel"
)

// WheelState holds the wheel and its render host
type WheelState struct {
	wheel        *wheel.Wheel
	host         *RenderHost
	lastSelected string
}

// ViewSettings holds display settings
type ViewSettings struct {
	showHelp      bool
	showWireframe bool
}

// ConfigState holds config file watching and reload state
type ConfigState struct {
	path        string               // config file path, empty when running on defaults
	fileWatcher *watcher.FileWatcher // watcher for live appearance reload
	needsReload atomic.Bool          // set by the watcher goroutine, drained by the frame loop
}
