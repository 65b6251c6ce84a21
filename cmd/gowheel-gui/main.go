package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gowheel/pkg/viewer"
	"github.com/philipparndt/gowheel/pkg/wheel"
)

type App struct {
	window fyne.Window
	viewer *viewer.WheelViewer
	wheel  *wheel.Wheel

	selectedLabel *widget.Label
	segmentList   *widget.Label
}

func main() {
	a := app.New()
	w := a.NewWindow("gowheel")

	appInstance := &App{
		window: w,
	}

	cfg := wheel.DefaultConfig()
	if len(os.Args) > 1 {
		loaded, err := wheel.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	appInstance.viewer = viewer.NewWheelViewer()
	appInstance.wheel = wheel.New(appInstance.viewer, cfg, nil, nil)
	appInstance.viewer.SetWheel(appInstance.wheel)
	appInstance.viewer.SetOnSelect(func(name string) {
		appInstance.selectedLabel.SetText(fmt.Sprintf("Selected: %s", name))
	})

	appInstance.addDemoSegments()
	appInstance.wheel.Show()
	appInstance.setupMainUI()

	w.Resize(fyne.NewSize(1000, 720))
	w.ShowAndRun()
}

func (a *App) addDemoSegments() {
	a.wheel.AddSegments(
		wheel.NewSegment("menu", nil).
			At(wheel.PositionTop).
			WithIcon(color.RGBA{R: 120, G: 190, B: 255, A: 255}).
			WithLabel(),
		wheel.NewSegment("back", nil).
			At(wheel.PositionBottom).
			WithIcon(color.RGBA{R: 255, G: 140, B: 120, A: 255}).
			WithLabel(),
		wheel.NewSegment("tools", nil).
			At(wheel.PositionLeft).
			WithLabel(),
		wheel.NewSegment("view", nil).
			At(wheel.PositionRight).
			WithLabel(),
	)
}

func (a *App) setupMainUI() {
	a.selectedLabel = widget.NewLabel("Selected: -")
	a.selectedLabel.TextStyle = fyne.TextStyle{Bold: true}

	a.segmentList = widget.NewLabel("")
	a.refreshSegmentList()

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("segment name")

	positionSelect := widget.NewSelect(
		[]string{"none", "top", "bottom", "left", "right"}, nil)
	positionSelect.SetSelected("none")

	addButton := widget.NewButton("Add Segment", func() {
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" {
			dialog.ShowError(fmt.Errorf("segment name must not be empty"), a.window)
			return
		}
		seg := wheel.NewSegment(name, nil).WithLabel()
		seg.Preferred = positionFromName(positionSelect.Selected)
		a.wheel.AddSegment(seg)
		nameEntry.SetText("")
		a.refreshSegmentList()
	})

	removeButton := widget.NewButton("Remove Segment", func() {
		name := strings.TrimSpace(nameEntry.Text)
		if name == "" {
			dialog.ShowError(fmt.Errorf("enter the name of the segment to remove"), a.window)
			return
		}
		a.wheel.RemoveSegment(name)
		nameEntry.SetText("")
		a.refreshSegmentList()
	})

	resetButton := widget.NewButton("Reset", func() {
		a.wheel.Reset()
		a.selectedLabel.SetText("Selected: -")
		a.refreshSegmentList()
		a.viewer.Refresh()
	})

	visibleCheck := widget.NewCheck("Wheel visible", func(checked bool) {
		if checked {
			a.wheel.Show()
		} else {
			a.wheel.Hide()
		}
	})
	visibleCheck.SetChecked(true)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Move the mouse over the wheel to highlight a wedge\n" +
			"• Click a wedge to select it\n" +
			"• Add or remove segments to relayout the wheel",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		widget.NewLabel("Control Wheel:"),
		widget.NewSeparator(),
		a.selectedLabel,
		widget.NewSeparator(),
		widget.NewLabel("Segments:"),
		a.segmentList,
		widget.NewSeparator(),
		nameEntry,
		positionSelect,
		addButton,
		removeButton,
		resetButton,
		widget.NewSeparator(),
		visibleCheck,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(280, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.viewer,   // center
	)

	a.window.SetContent(content)
}

func (a *App) refreshSegmentList() {
	wedges := a.wheel.Wedges()
	if len(wedges) == 0 {
		a.segmentList.SetText("(empty)")
		return
	}

	var b strings.Builder
	for _, wd := range wedges {
		fmt.Fprintf(&b, "%d: %s", wd.Slot, wd.Segment.Name)
		if wd.Segment.Preferred != wheel.PositionNone {
			fmt.Fprintf(&b, " (%s)", wd.Segment.Preferred)
		}
		b.WriteString("\n")
	}
	a.segmentList.SetText(strings.TrimRight(b.String(), "\n"))
}

func positionFromName(name string) wheel.Position {
	switch name {
	case "top":
		return wheel.PositionTop
	case "bottom":
		return wheel.PositionBottom
	case "left":
		return wheel.PositionLeft
	case "right":
		return wheel.PositionRight
	default:
		return wheel.PositionNone
	}
}
