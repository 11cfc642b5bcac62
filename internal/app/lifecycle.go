package app

import (
	"fyne.io/fyne/v2"

	"arrow-randomizer/internal/controllers"
	"arrow-randomizer/internal/logger"
	"arrow-randomizer/internal/shutdown"
)

// Lifecycle ties presenter teardown to every way the view can go away:
// window close, the driver stopping the app, and process signals.
type Lifecycle struct {
	fyneApp fyne.App
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(fyneApp fyne.App, window fyne.Window, presenter *controllers.ArrowPresenter, log logger.Logger) *Lifecycle {
	manager := shutdown.NewManager(log)
	manager.Register("presenter", presenter)

	l := &Lifecycle{
		fyneApp: fyneApp,
		manager: manager,
		logger:  log,
	}

	window.SetOnClosed(func() {
		l.logger.Info("Lifecycle", "window closed", nil)
		l.Shutdown()
	})

	fyneApp.Lifecycle().SetOnStopped(func() {
		l.logger.Info("Lifecycle", "application stopped", nil)
		l.Shutdown()
	})

	return l
}

// Listen tears down on SIGINT/SIGTERM and quits the event loop
func (l *Lifecycle) Listen() {
	l.manager.Listen(func() {
		fyne.Do(l.fyneApp.Quit)
	})
}

// Shutdown tears everything down once
func (l *Lifecycle) Shutdown() {
	l.manager.Shutdown()
}

// Done is closed once shutdown has started
func (l *Lifecycle) Done() <-chan struct{} {
	return l.manager.Done()
}
