package sim

import "github.com/vovakirdan/tui-platformer/internal/core"

// tileStyles maps a tile's visual style key to its screen cell.
var tileStyles = map[string]core.Cell{
	"ground": {Rune: '█', Color: core.ColorGreen},
	"rock":   {Rune: '▓', Color: core.ColorGray},
	"brick":  {Rune: '▒', Color: core.ColorRed},
	"coin":   {Rune: '◉', Color: core.ColorBrightYellow},
	"pipe":   {Rune: '║', Color: core.ColorBrightGreen},
	"cloud":  {Rune: '░', Color: core.ColorBrightWhite},
	"bush":   {Rune: '♣', Color: core.ColorGreen},
	"cannon": {Rune: '╥', Color: core.ColorGray},
}

// View returns the current world-to-screen transform.
func (lvl *Level) View() View {
	tileSize := 16.0
	if grids := lvl.Collider.Grids(); len(grids) > 0 {
		tileSize = grids[0].TileSize()
	}
	return View{Cam: lvl.Camera, TileSize: tileSize}
}

// Draw renders the visible tile layers and then every entity that carries
// a draw callback. Tiles are walked by index range, keeping the pass
// deterministic and proportional to the viewport.
func (lvl *Level) Draw(scr *core.Screen) {
	if lvl.Camera == nil {
		return
	}
	view := lvl.View()

	for _, r := range lvl.Collider.Grids() {
		xRange := r.ToIndexRange(lvl.Camera.Pos.X, lvl.Camera.Pos.X+lvl.Camera.Size.X)
		yRange := r.ToIndexRange(lvl.Camera.Pos.Y, lvl.Camera.Pos.Y+lvl.Camera.Size.Y)
		for _, iy := range yRange {
			for _, ix := range xRange {
				match, ok := r.GetByIndex(ix, iy)
				if !ok {
					continue
				}
				cell, ok := tileStyles[match.Tile.Style]
				if !ok {
					cell = core.Cell{Rune: '?', Color: core.ColorDefault}
				}
				x, y := view.ToScreen(match.X1, match.Y1)
				scr.SetColor(x, y, cell.Rune, cell.Color)
			}
		}
	}

	for _, e := range lvl.entities {
		if e.Draw != nil {
			e.Draw(e, scr, view)
		}
	}
}
