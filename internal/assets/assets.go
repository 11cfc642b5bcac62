// Package assets bundles the arrow images shown by the main view.
package assets

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2"

	"arrow-randomizer/internal/models"
)

//go:embed arrows/*.svg
var arrowFiles embed.FS

var (
	LeftArrow  = mustLoad("arrows/left.svg", "arrow_left.svg")
	RightArrow = mustLoad("arrows/right.svg", "arrow_right.svg")
)

// Arrow returns the image resource for a direction, or nil for an
// unknown direction.
func Arrow(direction models.Direction) fyne.Resource {
	switch direction {
	case models.Left:
		return LeftArrow
	case models.Right:
		return RightArrow
	default:
		return nil
	}
}

func mustLoad(path, name string) fyne.Resource {
	data, err := arrowFiles.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("embedded asset %s missing: %v", path, err))
	}
	return fyne.NewStaticResource(name, data)
}
