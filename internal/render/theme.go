// Package render draws a single board position into an off-screen
// Ebitengine image, with no game loop, input handling, or animation.
package render

import "image/color"

// Theme defines the color scheme for a board snapshot.
type Theme struct {
	LightSquare color.RGBA
	DarkSquare  color.RGBA
	CheckColor  color.RGBA
	Background  color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare: color.RGBA{240, 217, 181, 255},
		DarkSquare:  color.RGBA{181, 136, 99, 255},
		CheckColor:  color.RGBA{255, 100, 100, 180},
		Background:  color.RGBA{40, 44, 52, 255},
	}
}
