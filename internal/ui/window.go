package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/pixeluted/krampui-updater/internal/config"
	"github.com/pixeluted/krampui-updater/internal/model"
)

// ProgressWindow is the updater window. It only ever reads the progress cell.
type ProgressWindow struct {
	app    fyne.App
	window fyne.Window
	state  *model.UpdateProgress

	bar     *widget.ProgressBar
	spinner *widget.ProgressBarInfinite

	limiter *rate.Limiter

	// do runs f on the fyne goroutine
	do func(f func())
}

// NewProgressWindow creates the fixed-size updater window
func NewProgressWindow(app fyne.App, state *model.UpdateProgress, settings config.Settings) *ProgressWindow {
	snap := state.Snapshot()

	window := app.NewWindow(snap.Title)
	window.Resize(fyne.NewSize(settings.WindowWidth, settings.WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()

	// ProgressBar renders the percentage label by default
	bar := widget.NewProgressBar()
	spinner := widget.NewProgressBarInfinite()
	spinner.Stop()
	spinner.Hide()

	barSize := fyne.NewSize(settings.BarWidth, settings.BarHeight)
	window.SetContent(container.NewCenter(
		container.NewGridWrap(barSize, container.NewStack(bar, spinner)),
	))

	limit := rate.Every(DefaultFrameInterval)
	if settings.FrameRate > 0 {
		limit = rate.Limit(settings.FrameRate)
	}

	pw := &ProgressWindow{
		app:     app,
		window:  window,
		state:   state,
		bar:     bar,
		spinner: spinner,
		limiter: rate.NewLimiter(limit, 1),
		do:      fyne.Do,
	}
	pw.apply(snap)
	return pw
}

// Window returns the underlying fyne window
func (pw *ProgressWindow) Window() fyne.Window {
	return pw.window
}

// Run redraws the window from the progress cell once per frame until ctx ends
func (pw *ProgressWindow) Run(ctx context.Context) {
	log.Debug("render loop started")
	defer log.Debug("render loop stopped")

	for {
		if err := pw.limiter.Wait(ctx); err != nil {
			return
		}
		snap := pw.state.Snapshot()
		pw.do(func() { pw.apply(snap) })
	}
}

// apply draws one frame. Must run on the fyne goroutine.
func (pw *ProgressWindow) apply(snap model.ProgressSnapshot) {
	if snap.Indeterminate {
		if !pw.spinner.Visible() {
			pw.bar.Hide()
			pw.spinner.Show()
			pw.spinner.Start()
		}
	} else {
		if pw.spinner.Visible() {
			pw.spinner.Stop()
			pw.spinner.Hide()
			pw.bar.Show()
		}

		value := float64(snap.Value)
		if !snap.Finite() {
			value = 0
		}
		if pw.bar.Value != value {
			pw.bar.SetValue(value)
		}
	}

	if pw.window.Title() != snap.Title {
		pw.window.SetTitle(snap.Title)
	}
}

// ShowFailure opens the failure dialog. The progress window stays open behind it.
func (pw *ProgressWindow) ShowFailure(message string) {
	pw.do(func() { pw.showFailure(message) })
}

func (pw *ProgressWindow) showFailure(message string) fyne.Window {
	dialogWindow := pw.app.NewWindow(FailureDialogTitle)

	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	label.Alignment = fyne.TextAlignCenter

	ok := widget.NewButton(FailureDialogButton, dialogWindow.Close)
	ok.Importance = widget.HighImportance

	dialogWindow.SetContent(container.NewPadded(
		container.NewBorder(nil, container.NewCenter(ok), nil, nil, label),
	))
	dialogWindow.Resize(fyne.NewSize(FailureDialogWidth, FailureDialogHeight))
	dialogWindow.SetFixedSize(true)
	dialogWindow.CenterOnScreen()
	dialogWindow.Show()
	dialogWindow.RequestFocus()

	return dialogWindow
}
