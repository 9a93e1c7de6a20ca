package main

import (
	"context"

	"fyne.io/fyne/v2/app"
	log "github.com/sirupsen/logrus"

	"github.com/pixeluted/krampui-updater/internal/config"
	"github.com/pixeluted/krampui-updater/internal/download"
	"github.com/pixeluted/krampui-updater/internal/model"
	"github.com/pixeluted/krampui-updater/internal/ui"
	"github.com/pixeluted/krampui-updater/internal/updater"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.pixeluted.krampui-updater"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger := updater.NewSessionLogger()
	logger.Infof("KrampUI Updater v%s starting...", version)

	settings := config.Default(version)
	if err := settings.Validate(); err != nil {
		logger.Fatalf("invalid settings: %v", err)
	}

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	state := model.NewUpdateProgress()
	progressWindow := ui.NewProgressWindow(myApp, state, settings)

	// Closing the window stops rendering and aborts a running download
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	progressWindow.Window().SetMaster()
	progressWindow.Window().SetOnClosed(cancel)

	downloadSvc := download.NewService(settings, logger)
	orchestrator := updater.New(settings, state, downloadSvc, progressWindow, logger)

	go progressWindow.Run(ctx)
	go orchestrator.Run(ctx)

	progressWindow.Window().ShowAndRun()
}
