package loot

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cave-loot/internal/core"
)

const barWidth = 30

// Render draws the backpack panel, the item card and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := dst.Width()

	dst.DrawTextCentered(1, "~ CAVE LOOT CHALLENGE ~", core.ColorBrightYellow)
	dst.DrawTextCentered(2, "Fill your backpack with the most valuable treasure", core.ColorGray)

	// Backpack panel
	panel := core.NewRect(2, 4, w-4, 5)
	dst.DrawBox(panel, core.ColorBrown)
	dst.DrawText(4, 5, fmt.Sprintf("Backpack: %d/%d", g.backpack.Weight(), g.backpack.Capacity()))
	g.drawBar(dst, 4, 6)
	dst.DrawText(4, 7, fmt.Sprintf("Total Value: %d", g.backpack.Value()))
	left := fmt.Sprintf("Treasures left: %d", g.queue.Len())
	dst.DrawText(panel.Right()-len(left)-2, 7, left)

	// Item card
	if g.last.Name != "" {
		g.drawCard(dst, core.NewRect((w-36)/2, 10, 36, 7))
	}

	dst.DrawTextCentered(18, g.status, core.ColorBrightCyan)

	if g.paused {
		dst.DrawTextCentered(20, "PAUSED - press P to resume", core.ColorYellow)
	}
}

// drawBar draws the capacity bar: green, orange above half, red above three
// quarters.
func (g *Game) drawBar(dst *core.Screen, x, y int) {
	filled := barWidth * g.backpack.Weight() / g.backpack.Capacity()
	color := core.ColorGreen
	switch load := g.backpack.Load(); {
	case load > 0.75:
		color = core.ColorRed
	case load > 0.5:
		color = core.ColorOrange
	}
	dst.SetColored(x, y, '[', core.ColorDefault)
	dst.DrawTextColored(x+1, y, strings.Repeat("█", filled), color)
	dst.DrawTextColored(x+1+filled, y, strings.Repeat("░", barWidth-filled), core.ColorGray)
	dst.SetColored(x+1+barWidth, y, ']', core.ColorDefault)
}

func (g *Game) drawCard(dst *core.Screen, card core.Rect) {
	sprite := g.atlas.Item(g.last.Category)
	dst.DrawBox(card, sprite.Color)

	icon := core.NewRect(card.X+2, card.Y+2, 5, 3)
	dst.FillRect(icon, sprite.Glyph, sprite.Color)

	tx := icon.Right() + 2
	dst.DrawTextColored(tx, card.Y+1, "Item: "+g.last.Name, core.ColorWhite)
	dst.DrawText(tx, card.Y+2, fmt.Sprintf("Weight: %d", g.last.Weight))
	dst.DrawText(tx, card.Y+3, fmt.Sprintf("Value: %d", g.last.Value))
	dst.DrawTextColored(tx, card.Y+4, g.last.Category.String(), sprite.Color)
}
