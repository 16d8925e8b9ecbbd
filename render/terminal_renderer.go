package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/jakecoffman/cp"

	"github.com/lixenwraith/woger/entity"
	"github.com/lixenwraith/woger/world"
)

// HUD is the status line content
type HUD struct {
	Score      int
	Multiplier int
	Leaves     int
	Glide      int
	Over       bool
}

// TerminalRenderer projects world coordinates onto terminal cells.
// The bottom row is the status bar; the rest maps the field with y growing upward.
type TerminalRenderer struct {
	screen tcell.Screen
	field  world.Field
}

// NewTerminalRenderer creates a renderer for a field on screen
func NewTerminalRenderer(screen tcell.Screen, field world.Field) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, field: field}
}

// RenderFrame draws items back to front in registry order, then the status bar
func (r *TerminalRenderer) RenderFrame(items []entity.Entity, hud HUD) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', base)

	for _, e := range items {
		ch, color := glyph(e.Kind())
		style := base.Foreground(color)
		switch v := e.(type) {
		case *entity.Segment:
			a, b := v.Ends()
			r.drawLine(a, b, ch, style)
		case *entity.Branch:
			a, b := v.Segment()
			r.drawLine(a, b, branchRune(v.Angle()), style)
		default:
			if x, y, ok := r.Project(e.Position()); ok {
				r.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}

	r.drawStatusBar(hud, base)
	r.screen.Show()
}

// Project maps a world point to a cell, reporting false when it falls outside the field view
func (r *TerminalRenderer) Project(p cp.Vector) (int, int, bool) {
	w, h := r.screen.Size()
	x, y, ok := r.cell(p)
	if !ok || x < 0 || x >= w || y < 0 || y >= h-1 {
		return 0, 0, false
	}
	return x, y, true
}

// cell projects without bounds rejection
func (r *TerminalRenderer) cell(p cp.Vector) (int, int, bool) {
	w, h := r.screen.Size()
	rows := h - 1
	if w <= 0 || rows <= 0 || r.field.Width <= 0 || r.field.Height <= 0 {
		return 0, 0, false
	}
	fx := (p.X + r.field.Width/2) / r.field.Width
	fy := p.Y / r.field.Height
	x := int(math.Floor(fx * float64(w-1)))
	y := rows - 1 - int(math.Floor(fy*float64(rows-1)))
	return x, y, true
}

func (r *TerminalRenderer) drawLine(a, b cp.Vector, ch rune, style tcell.Style) {
	ax, ay, _ := r.cell(a)
	bx, by, _ := r.cell(b)
	steps := max(abs(bx-ax), abs(by-ay))
	for i := 0; i <= steps; i++ {
		t := 0.0
		if steps > 0 {
			t = float64(i) / float64(steps)
		}
		if x, y, ok := r.Project(a.Lerp(b, t)); ok {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawStatusBar(hud HUD, base tcell.Style) {
	w, h := r.screen.Size()
	if h < 1 {
		return
	}
	text := fmt.Sprintf(" score %d  x%d  leaves %d  glide %d ", hud.Score, hud.Multiplier, hud.Leaves, hud.Glide)
	style := base.Foreground(RgbStatusBar).Bold(true)
	col := drawText(r.screen, 0, h-1, w, text, style)
	if hud.Over {
		drawText(r.screen, col, h-1, w, " GAME OVER - q to quit ", base.Foreground(RgbGameOver).Bold(true))
	}
}

func drawText(s tcell.Screen, x, y, limit int, text string, style tcell.Style) int {
	for _, ch := range text {
		if x >= limit {
			break
		}
		s.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// branchRune picks a line glyph for a branch leaning by angle, 0 being upright
func branchRune(angle float64) rune {
	switch {
	case angle > math.Pi/8:
		return '\\'
	case angle < -math.Pi/8:
		return '/'
	}
	return '|'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
