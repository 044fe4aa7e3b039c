package cave

import "github.com/vovakirdan/cave-loot/internal/core"

// Facing is the horizontal direction the actor looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Physics holds the integer, frame-coupled movement constants. One Step is
// one tick; nothing is scaled by elapsed time.
type Physics struct {
	Gravity      int
	JumpStrength int
	MoveSpeed    int
	LandingBand  int // Depth below a platform top that still catches the feet
	WorldW       int
	WorldH       int
}

// Actor is the player character.
type Actor struct {
	X, Y        int
	W, H        int
	VY          int
	Facing      Facing
	Jumping     bool
	MovingLeft  bool
	MovingRight bool

	jumpHeld  bool
	animEvery int
	animTick  int
	Frame     int // Run animation frame, 0 or 1
}

// NewActor places an actor at rest.
func NewActor(x, y, w, h, animEvery int) Actor {
	return Actor{X: x, Y: y, W: w, H: h, animEvery: animEvery}
}

// Bounds returns the collision box.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.W, a.H)
}

// Moving reports whether either direction is held.
func (a *Actor) Moving() bool {
	return a.MovingLeft || a.MovingRight
}

// ApplyInput turns press and release events into movement intents.
// Left and right are level-triggered; jump is edge-triggered and the
// returned flag is true only on the press that starts a hold.
func (a *Actor) ApplyInput(in core.InputFrame) (jump bool) {
	a.ApplyReleases(in)
	if in.Has(core.ActionLeft) {
		a.MovingLeft = true
	}
	if in.Has(core.ActionRight) {
		a.MovingRight = true
	}
	if in.Has(core.ActionJump) {
		jump = !a.jumpHeld
		a.jumpHeld = true
	}
	return jump
}

// ApplyReleases drops the intents whose keys were released in this frame.
func (a *Actor) ApplyReleases(in core.InputFrame) {
	if in.HasReleased(core.ActionLeft) {
		a.MovingLeft = false
	}
	if in.HasReleased(core.ActionRight) {
		a.MovingRight = false
	}
	if in.HasReleased(core.ActionJump) {
		a.jumpHeld = false
	}
}

// Step advances the actor by one tick against the platforms:
//  1. gravity, 2. integrate y, 3. land on the first platform whose top
//     band holds the feet, 4. move left/right, 5. clamp to the world,
//  6. start a jump if asked and not already airborne.
//
// Both directions held apply both moves, which cancel out.
func (p Physics) Step(a *Actor, platforms []core.Rect, jump bool) {
	a.VY += p.Gravity
	a.Y += a.VY

	feet := a.Y + a.H
	for _, plat := range platforms {
		if feet >= plat.Y && feet <= plat.Y+p.LandingBand && a.Bounds().OverlapsX(plat) {
			a.Y = plat.Y - a.H
			a.VY = 0
			a.Jumping = false
			break
		}
	}

	if a.MovingLeft {
		a.X -= p.MoveSpeed
		a.Facing = FacingLeft
	}
	if a.MovingRight {
		a.X += p.MoveSpeed
		a.Facing = FacingRight
	}
	a.X = core.Clamp(a.X, 0, p.WorldW-a.W)

	if jump && !a.Jumping {
		a.VY = -p.JumpStrength
		a.Jumping = true
	}

	a.animate()
}

// FellOff reports whether the actor dropped below the world.
func (p Physics) FellOff(a *Actor) bool {
	return a.Y > p.WorldH
}

// animate flips between the two run frames every animEvery ticks while
// moving and rests on frame 0 otherwise.
func (a *Actor) animate() {
	if !a.Moving() {
		a.Frame = 0
		a.animTick = 0
		return
	}
	a.animTick++
	if a.animEvery > 0 && a.animTick >= a.animEvery {
		a.animTick = 0
		a.Frame = (a.Frame + 1) % 2
	}
}
