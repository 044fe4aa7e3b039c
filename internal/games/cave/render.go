package cave

import (
	"fmt"

	"github.com/vovakirdan/cave-loot/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Render draws the world scaled down to the screen, the HUD and the item
// toast.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	r := g.round
	v := g.viewport(dst)

	for _, p := range r.Platforms {
		x, y := v.point(p.X, p.Y)
		x2, _ := v.point(p.Right(), p.Y)
		dst.DrawHLine(x, y, max(1, x2-x), '▀', core.ColorBrown)
	}

	for _, p := range r.Pickups.All() {
		x, y := v.point(p.Bounds.Center())
		sprite := g.atlas.Item(p.Item.Category)
		color := sprite.Color
		if p.Declined() {
			color = core.ColorGray
		}
		dst.SetColored(x, y, sprite.Glyph, color)
	}

	for i := range r.Enemies {
		e := &r.Enemies[i]
		sprite := g.atlas.Enemy(e.Frame)
		x, y := v.point(e.X+e.W/2, e.Y+e.H-1)
		dst.SetColored(x, y, sprite.Glyph, sprite.Color)
	}

	a := &r.Actor
	sprite := g.atlas.Player(a.Frame)
	x, y := v.point(a.X+a.W/2, a.Y+a.H-1)
	dst.SetColored(x, y, sprite.Glyph, sprite.Color)
	if a.Facing == FacingLeft {
		dst.SetColored(x-1, y, '‹', core.ColorGray)
	} else {
		dst.SetColored(x+1, y, '›', core.ColorGray)
	}

	g.drawHUD(dst)
	if r.Toast.Visible() {
		g.drawToast(dst)
	}

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED - press P to resume", core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	r := g.round
	hud := fmt.Sprintf("Score: %d  Backpack: %d/%d  Total Value: %d  Treasures: %d",
		r.Score, r.Backpack.Weight(), r.Backpack.Capacity(), r.Backpack.Value(), r.Pickups.Len())
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
}

func (g *Game) drawToast(dst *core.Screen) {
	t := g.round.Toast
	sprite := g.atlas.Item(t.Item.Category)
	box := core.NewRect(dst.Width()-30, hudRows+1, 28, 6)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, sprite.Color)

	head := "You found: "
	if t.Taken {
		head = "You collected: "
	}
	dst.DrawTextColored(box.X+2, box.Y+1, head+t.Item.Name, core.ColorBrightYellow)
	dst.DrawText(box.X+2, box.Y+2, fmt.Sprintf("Weight: %d", t.Item.Weight))
	dst.DrawText(box.X+2, box.Y+3, fmt.Sprintf("Value: %d", t.Item.Value))
	dst.SetColored(box.X+2, box.Y+4, sprite.Glyph, sprite.Color)
	dst.DrawTextColored(box.X+4, box.Y+4, t.Item.Category.String(), sprite.Color)
}

// viewport maps world coordinates to screen cells below the HUD.
type viewport struct {
	worldW, worldH int
	cols, rows     int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		worldW: g.cfg.World.Width,
		worldH: g.cfg.World.Height,
		cols:   dst.Width(),
		rows:   max(1, dst.Height()-hudRows),
	}
}

func (v viewport) point(x, y int) (int, int) {
	sx := core.Clamp(x*v.cols/v.worldW, 0, v.cols-1)
	sy := core.Clamp(y*v.rows/v.worldH, 0, v.rows-1)
	return sx, sy + hudRows
}
