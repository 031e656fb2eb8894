package app

import (
	"carbontrace/internal/config"
	"carbontrace/internal/gui"
	"carbontrace/internal/logger"
	"carbontrace/internal/pipeline"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "CarbonTrace"
	AppID      = "com.carbontrace.digitizer"
	AppVersion = "1.0.0"

	MinWindowWidth  = 800
	MinWindowHeight = 600
)

type Application struct {
	fyneApp     fyne.App
	window      fyne.Window
	guiManager  *gui.Manager
	coordinator *pipeline.Coordinator
	logger      logger.Logger
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	width := float32(cfg.Window.Width)
	height := float32(cfg.Window.Height)
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}

	window.Resize(fyne.NewSize(width, height))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  width,
		"window_height": height,
	})

	coordinator := pipeline.NewCoordinator(log)

	guiManager := gui.NewManager(window)
	guiManager.SetColorDefaults(
		cfg.Trace.Red, cfg.Trace.Green, cfg.Trace.Blue,
		cfg.Trace.TolerancePercent,
	)

	application := &Application{
		fyneApp:     fyneApp,
		window:      window,
		guiManager:  guiManager,
		coordinator: coordinator,
		logger:      log,
	}

	application.setupHandlers()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.coordinator, a.guiManager, a.logger)

	a.guiManager.SetLoadHandler(handlers.HandleLoad)
	a.guiManager.SetExportHandler(handlers.HandleExport)
	a.guiManager.SetClickHandler(handlers.HandleClick)
	a.guiManager.SetAnchorCaptureHandler(handlers.HandleAnchorCapture)
	a.guiManager.SetAnchorValueHandler(handlers.HandleAnchorValue)
	a.guiManager.SetScaleHandler(handlers.HandleScaleChange)
	a.guiManager.SetTraceModeHandler(handlers.HandleTraceMode)
	a.guiManager.SetAutoTraceHandler(handlers.HandleAutoTrace)
	a.guiManager.SetUndoHandler(handlers.HandleUndo)
	a.guiManager.SetClearHandler(handlers.HandleClear)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}
