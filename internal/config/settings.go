package config

import (
	"errors"
	"fmt"
	"time"
)

// Release location and local destination
const (
	DefaultReleaseURL  = "https://github.com/Pixeluted/KrampUI/releases/latest/download/KrampUI.exe"
	DefaultDestination = "KrampUI.exe"
	DefaultUserAgent   = "KrampUI Updater/%s"
)

// Sequencing delays
const (
	DefaultStartDelay  = 1 * time.Second
	DefaultLaunchDelay = 3 * time.Second
)

// Window geometry
const (
	DefaultWindowWidth  float32 = 400
	DefaultWindowHeight float32 = 50
	DefaultBarWidth     float32 = 385
	DefaultBarHeight    float32 = 30
)

// Rendering and I/O
const (
	DefaultFrameRate  = 60
	DefaultBufferSize = 32 * 1024
)

// Settings holds the compiled-in configuration of the updater. There is no
// runtime source for any of these values; tests build their own.
type Settings struct {
	ReleaseURL  string
	Destination string
	UserAgent   string

	StartDelay  time.Duration
	LaunchDelay time.Duration

	WindowWidth  float32
	WindowHeight float32
	BarWidth     float32
	BarHeight    float32

	FrameRate  int
	BufferSize int
}

// Default returns the settings the shipped binary runs with
func Default(version string) Settings {
	return Settings{
		ReleaseURL:   DefaultReleaseURL,
		Destination:  DefaultDestination,
		UserAgent:    fmt.Sprintf(DefaultUserAgent, version),
		StartDelay:   DefaultStartDelay,
		LaunchDelay:  DefaultLaunchDelay,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		BarWidth:     DefaultBarWidth,
		BarHeight:    DefaultBarHeight,
		FrameRate:    DefaultFrameRate,
		BufferSize:   DefaultBufferSize,
	}
}

// Validate checks that the settings can drive an update
func (s Settings) Validate() error {
	if s.ReleaseURL == "" {
		return errors.New("release URL is empty")
	}
	if s.Destination == "" {
		return errors.New("destination path is empty")
	}
	if s.StartDelay < 0 || s.LaunchDelay < 0 {
		return fmt.Errorf("negative delay: start=%v launch=%v", s.StartDelay, s.LaunchDelay)
	}
	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %vx%v", s.WindowWidth, s.WindowHeight)
	}
	if s.BarWidth <= 0 || s.BarHeight <= 0 {
		return fmt.Errorf("invalid progress bar size %vx%v", s.BarWidth, s.BarHeight)
	}
	if s.FrameRate <= 0 {
		return fmt.Errorf("invalid frame rate: %d", s.FrameRate)
	}
	if s.BufferSize <= 0 {
		return fmt.Errorf("invalid buffer size: %d", s.BufferSize)
	}
	return nil
}
