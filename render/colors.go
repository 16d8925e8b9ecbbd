package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/woger/entity"
)

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(120, 90, 50)   // Soil
	RgbBound      = tcell.NewRGBColor(90, 90, 90)    // Walls and top
	RgbBranch     = tcell.NewRGBColor(150, 100, 60)  // Bark
	RgbLeaf       = tcell.NewRGBColor(50, 200, 50)   // Bough
	RgbCherry     = tcell.NewRGBColor(220, 30, 60)   // Cherry red
	RgbOwange     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPlayer     = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver   = tcell.NewRGBColor(255, 80, 80)   // Red
)

// glyph returns the rune and color an entity kind is drawn with
func glyph(k entity.Kind) (rune, tcell.Color) {
	switch k {
	case entity.KindGround:
		return '=', RgbGround
	case entity.KindWall, entity.KindTop:
		return '+', RgbBound
	case entity.KindBranch:
		return '|', RgbBranch
	case entity.KindLeaf:
		return '#', RgbLeaf
	case entity.KindFruit:
		return 'o', RgbCherry
	case entity.KindHazard:
		return 'O', RgbOwange
	case entity.KindPlayer:
		return '@', RgbPlayer
	}
	return '?', RgbStatusBar
}
