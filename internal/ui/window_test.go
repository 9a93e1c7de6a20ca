package ui

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeluted/krampui-updater/internal/config"
	"github.com/pixeluted/krampui-updater/internal/model"
)

func newTestWindow(t *testing.T) (*ProgressWindow, *model.UpdateProgress) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	state := model.NewUpdateProgress()
	pw := NewProgressWindow(app, state, config.Default("test"))
	return pw, state
}

func TestNewProgressWindow(t *testing.T) {
	pw, _ := newTestWindow(t)

	assert.Equal(t, model.TitleDownloading, pw.Window().Title())
	assert.True(t, pw.Window().FixedSize())
	assert.Equal(t, 0.0, pw.bar.Value)
	assert.True(t, pw.bar.Visible())
	assert.False(t, pw.spinner.Visible())
}

func TestApply_Value(t *testing.T) {
	pw, _ := newTestWindow(t)

	tests := []struct {
		value    float32
		expected float64
	}{
		{0.25, 0.25},
		{0.5, 0.5},
		{1, 1},
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), 0},
	}

	for _, tt := range tests {
		pw.apply(model.ProgressSnapshot{Value: tt.value, Title: model.TitleDownloading})
		assert.Equal(t, tt.expected, pw.bar.Value, "value %v", tt.value)
	}
}

func TestApply_TitleVisibleInOneFrame(t *testing.T) {
	pw, state := newTestWindow(t)

	state.SetValue(1)
	state.Complete()
	pw.apply(state.Snapshot())

	assert.Equal(t, model.TitleCompleted, pw.Window().Title())
	assert.Equal(t, 1.0, pw.bar.Value)
}

func TestApply_Indeterminate(t *testing.T) {
	pw, _ := newTestWindow(t)

	pw.apply(model.ProgressSnapshot{Indeterminate: true, Title: model.TitleDownloading})
	assert.False(t, pw.bar.Visible())
	assert.True(t, pw.spinner.Visible())

	pw.apply(model.ProgressSnapshot{Value: 1, Title: model.TitleCompleted})
	assert.True(t, pw.bar.Visible())
	assert.False(t, pw.spinner.Visible())
	assert.Equal(t, 1.0, pw.bar.Value)
}

func TestRun_FollowsState(t *testing.T) {
	pw, state := newTestWindow(t)

	var mu sync.Mutex
	pw.do = func(f func()) {
		mu.Lock()
		defer mu.Unlock()
		f()
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pw.Run(ctx)
		close(done)
	}()

	state.SetValue(0.42)
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return pw.bar.Value == float64(float32(0.42))
	}, 2*time.Second, 10*time.Millisecond)

	state.Complete()
	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return pw.Window().Title() == model.TitleCompleted
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("render loop did not stop after cancel")
	}
}

func TestRun_DoesNotMutateState(t *testing.T) {
	pw, state := newTestWindow(t)
	pw.do = func(f func()) { f() }

	state.SetValue(0.3)
	before := state.Snapshot()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	pw.Run(ctx)

	assert.Equal(t, before, state.Snapshot())
}

func TestShowFailure(t *testing.T) {
	pw, state := newTestWindow(t)

	w := pw.showFailure("Failed to write chunk!")
	require.NotNil(t, w)

	assert.Equal(t, FailureDialogTitle, w.Title())
	assert.Contains(t, labelTexts(w.Content()), "Failed to write chunk!")

	// the progress window stays up and keeps its title
	assert.Equal(t, model.TitleDownloading, pw.Window().Title())
	assert.Equal(t, model.TitleDownloading, state.Title())
}

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	assert.NotNil(t, th.Font(fyne.TextStyle{}))
	assert.Equal(t, float32(2), th.Size(theme.SizeNamePadding))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameScrollBar), th.Size(theme.SizeNameScrollBar))
}

// labelTexts collects the text of every label in the object tree
func labelTexts(obj fyne.CanvasObject) []string {
	var texts []string
	switch o := obj.(type) {
	case *widget.Label:
		texts = append(texts, o.Text)
	case *fyne.Container:
		for _, child := range o.Objects {
			texts = append(texts, labelTexts(child)...)
		}
	}
	return texts
}
