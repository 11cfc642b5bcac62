package app

import (
	"fmt"

	"fyne.io/fyne/v2"

	"arrow-randomizer/internal/config"
	"arrow-randomizer/internal/controllers"
	"arrow-randomizer/internal/logger"
	"arrow-randomizer/internal/views"
)

const (
	AppName    = "Arrow Randomizer"
	AppID      = "com.arrowrandomizer.app"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	view      *views.MainView
	presenter *controllers.ArrowPresenter
	lifecycle *Lifecycle
	logger    logger.Logger
}

// NewApplication builds the window, view and presenter on top of fyneApp.
// Extra presenter options are applied after the configured ones.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger, opts ...controllers.Option) (*Application, error) {
	if fyneApp == nil {
		return nil, fmt.Errorf("fyne application is required")
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if log == nil {
		log = logger.NewNop()
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetMaster()

	view := views.NewMainView(window, log)

	presenterOpts := append([]controllers.Option{
		controllers.WithDuration(cfg.Duration()),
		controllers.WithDispatch(fyne.Do),
		controllers.WithLogger(log),
	}, opts...)
	presenter := controllers.NewArrowPresenter(view, presenterOpts...)

	view.SetActivateHandler(presenter.Activate)

	lifecycle := NewLifecycle(fyneApp, window, presenter, log)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":     AppVersion,
		"duration_ms": cfg.Display.DurationMS,
		"window":      fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
	})

	return &Application{
		fyneApp:   fyneApp,
		window:    window,
		view:      view,
		presenter: presenter,
		lifecycle: lifecycle,
		logger:    log,
	}, nil
}

// Run shows the window and blocks in the Fyne event loop until it exits
func (a *Application) Run() {
	a.lifecycle.Listen()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Presenter() *controllers.ArrowPresenter {
	return a.presenter
}

func (a *Application) Lifecycle() *Lifecycle {
	return a.lifecycle
}
