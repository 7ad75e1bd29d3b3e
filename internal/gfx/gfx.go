// Package gfx is the drawing surface the game renders onto. The interfaces
// keep game logic independent of the window backend.
package gfx

import "image/color"

// Sprite is an opaque drawable with a fixed pixel size.
type Sprite interface {
	Size() (w, h int)
}

// Canvas is a frame being composed.
type Canvas interface {
	Size() (w, h int)
	DrawSprite(s Sprite, x, y float64)
}

// TextRenderer turns a string into a drawable sprite.
type TextRenderer interface {
	Render(text string, clr color.Color) Sprite
}
