package views

import (
	"fyne.io/fyne/v2"

	"arrow-randomizer/internal/assets"
	"arrow-randomizer/internal/logger"
	"arrow-randomizer/internal/models"
	"arrow-randomizer/internal/views/components"
)

const componentName = "MainView"

// MainView is the single screen: a full-window arrow button plus the menu
type MainView struct {
	window fyne.Window
	button *components.ArrowButton
	logger logger.Logger

	// Event handlers - connected by the application
	activateHandler func()
	settingsHandler func()
}

// NewMainView creates the main view and installs it as the window content
func NewMainView(window fyne.Window, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NewNop()
	}

	view := &MainView{
		window: window,
		logger: log,
	}

	view.button = components.NewArrowButton(view.onTapped)
	view.buildMenu()
	window.SetContent(view.button)

	return view
}

func (mv *MainView) buildMenu() {
	settings := fyne.NewMenuItem("Settings", mv.onSettings)
	mv.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Options", settings),
	))
}

func (mv *MainView) onTapped() {
	if mv.activateHandler == nil {
		mv.logger.Debug(componentName, "tap with no activation handler", nil)
		return
	}
	mv.activateHandler()
}

// onSettings is intentionally inert
func (mv *MainView) onSettings() {
	mv.logger.Debug(componentName, "settings selected", nil)
	if mv.settingsHandler != nil {
		mv.settingsHandler()
	}
}

// SetActivateHandler sets the handler for button activations
func (mv *MainView) SetActivateHandler(handler func()) {
	mv.activateHandler = handler
}

// SetSettingsHandler sets an observer for the settings menu entry
func (mv *MainView) SetSettingsHandler(handler func()) {
	mv.settingsHandler = handler
}

// ShowArrow displays the arrow image for direction
func (mv *MainView) ShowArrow(direction models.Direction) {
	if !direction.Valid() {
		mv.logger.Warning(componentName, "no asset for direction", map[string]interface{}{
			"direction": direction.String(),
		})
		mv.button.Clear()
		return
	}
	mv.button.SetArrow(assets.Arrow(direction))
}

// ClearArrow removes the arrow image
func (mv *MainView) ClearArrow() {
	mv.button.Clear()
}

// Button exposes the activation surface
func (mv *MainView) Button() *components.ArrowButton {
	return mv.button
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}
