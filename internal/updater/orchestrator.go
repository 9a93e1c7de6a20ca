package updater

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/pixeluted/krampui-updater/internal/config"
	"github.com/pixeluted/krampui-updater/internal/download"
	"github.com/pixeluted/krampui-updater/internal/model"
	"github.com/pixeluted/krampui-updater/internal/platform"
)

// Orchestrator drives one update run from Idle to Success or Failure
type Orchestrator struct {
	settings   config.Settings
	state      *model.UpdateProgress
	downloader download.Downloader
	presenter  Presenter
	logger     *log.Entry

	phase      model.Phase
	phaseMutex sync.RWMutex
	onPhase    func(model.Phase)

	prepare func(path string) error
	launch  func(path string) error
	exit    func(code int)
}

// NewSessionLogger returns a logger tagged with a fresh session id
func NewSessionLogger() *log.Entry {
	return log.WithField("session", uuid.NewString())
}

// New creates an orchestrator that launches the release and exits the process on success
func New(settings config.Settings, state *model.UpdateProgress, downloader download.Downloader, presenter Presenter, logger *log.Entry) *Orchestrator {
	if logger == nil {
		logger = NewSessionLogger()
	}
	return &Orchestrator{
		settings:   settings,
		state:      state,
		downloader: downloader,
		presenter:  presenter,
		logger:     logger,
		phase:      model.PhaseIdle,
		prepare:    platform.MakeExecutable,
		launch:     platform.StartDetached,
		exit:       os.Exit,
	}
}

// SetPhaseCallback sets the function called on every phase change
func (o *Orchestrator) SetPhaseCallback(callback func(model.Phase)) {
	o.onPhase = callback
}

// SetLauncher replaces how the downloaded release is started
func (o *Orchestrator) SetLauncher(launch func(path string) error) {
	o.launch = launch
}

// SetExit replaces how the process terminates after the hand-off
func (o *Orchestrator) SetExit(exit func(code int)) {
	o.exit = exit
}

// Phase returns the current phase
func (o *Orchestrator) Phase() model.Phase {
	o.phaseMutex.RLock()
	defer o.phaseMutex.RUnlock()
	return o.phase
}

// Run performs the update and returns the phase it ended in. On success it does
// not return in production: the exit function terminates the process. Once the
// download has succeeded the hand-off ignores ctx.
func (o *Orchestrator) Run(ctx context.Context) model.Phase {
	o.setPhase(model.PhaseIdle)

	if err := sleepWithContext(ctx, o.settings.StartDelay); err != nil {
		o.logger.Infof("update cancelled before download: %v", err)
		return model.PhaseIdle
	}

	o.setPhase(model.PhaseDownloading)
	result := o.downloader.Run(ctx, o.state)

	if !result.Success {
		o.setPhase(model.PhaseFailure)
		if result.Failure != nil && result.Failure.Canceled() {
			o.logger.Info("download cancelled, not showing failure dialog")
			return model.PhaseFailure
		}

		message, ok := result.Message()
		if !ok {
			message = download.MsgRead
		}
		o.presenter.ShowFailure(message)
		return model.PhaseFailure
	}

	o.setPhase(model.PhaseSuccess)
	o.handOff()
	return model.PhaseSuccess
}

// handOff waits for the user to read the completion title, starts the new
// release and exits. Launch errors are logged only.
func (o *Orchestrator) handOff() {
	time.Sleep(o.settings.LaunchDelay)

	path := o.settings.Destination
	if err := o.prepare(path); err != nil {
		o.logger.Warnf("failed to mark %s executable: %v", path, err)
	}
	if err := o.launch(path); err != nil {
		o.logger.Warnf("failed to start new release: %v", err)
	} else {
		o.logger.Infof("started %s", path)
	}

	o.exit(0)
}

func (o *Orchestrator) setPhase(phase model.Phase) {
	o.phaseMutex.Lock()
	o.phase = phase
	o.phaseMutex.Unlock()

	o.logger.WithField("phase", phase).Info("update phase changed")
	if o.onPhase != nil {
		o.onPhase(phase)
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
