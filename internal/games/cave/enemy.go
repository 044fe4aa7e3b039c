package cave

import "github.com/vovakirdan/cave-loot/internal/core"

// Enemy is a patrolling orc.
type Enemy struct {
	X, Y  int
	W, H  int
	Dir   int // +1 right, -1 left
	Alive bool

	animTick int
	Frame    int
}

// NewEnemy creates a live orc heading right.
func NewEnemy(x, y, w, h int) Enemy {
	return Enemy{X: x, Y: y, W: w, H: h, Dir: 1, Alive: true}
}

// Bounds returns the collision box.
func (e *Enemy) Bounds() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Patrol moves orcs back and forth between the world edges.
type Patrol struct {
	AnimEvery int
	Frames    int
	WorldW    int
}

// Step moves an orc by speed. Reaching an edge clamps it there and turns it
// around. The animation advances on its own cadence regardless of speed.
func (p Patrol) Step(e *Enemy, speed int) {
	e.X += speed * e.Dir
	switch maxX := p.WorldW - e.W; {
	case e.X >= maxX:
		e.X = maxX
		e.Dir = -1
	case e.X <= 0:
		e.X = 0
		e.Dir = 1
	}

	e.animTick++
	if e.animTick >= p.AnimEvery {
		e.animTick = 0
		e.Frame = (e.Frame + 1) % p.Frames
	}
}

// Contact is the result of the actor touching orcs in one tick.
type Contact struct {
	Stomped int  // Orcs defeated from above
	Hit     bool // A live orc caught the actor
}

// Collide resolves actor contact with every live orc. Descending onto the
// upper half of an orc stomps it and bounces the actor; any other contact
// is a hit. Stomped orcs are removed after the loop.
func Collide(a *Actor, enemies []Enemy, bounce int) ([]Enemy, Contact) {
	var c Contact
	actor := a.Bounds()
	for i := range enemies {
		e := &enemies[i]
		if !e.Alive || !actor.Intersects(e.Bounds()) {
			continue
		}
		if a.VY > 0 && a.Y+a.H < e.Bounds().MidY() {
			e.Alive = false
			a.VY = -bounce
			c.Stomped++
			continue
		}
		c.Hit = true
		break
	}

	live := enemies[:0]
	for _, e := range enemies {
		if e.Alive {
			live = append(live, e)
		}
	}
	return live, c
}
