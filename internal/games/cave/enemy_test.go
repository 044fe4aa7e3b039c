package cave

import "testing"

var testPatrol = Patrol{AnimEvery: 5, Frames: 6, WorldW: 800}

func TestPatrolBouncesAtRightEdge(t *testing.T) {
	e := NewEnemy(740, 440, 60, 60)

	testPatrol.Step(&e, 2)
	if e.X != 740 || e.Dir != -1 {
		t.Fatalf("at edge: X=%d Dir=%d, want X=740 Dir=-1", e.X, e.Dir)
	}
	testPatrol.Step(&e, 2)
	if e.X != 738 {
		t.Errorf("X = %d, want 738 after turning", e.X)
	}
}

func TestPatrolBouncesAtLeftEdge(t *testing.T) {
	e := NewEnemy(1, 440, 60, 60)
	e.Dir = -1

	testPatrol.Step(&e, 2)
	if e.X != 0 || e.Dir != 1 {
		t.Errorf("X=%d Dir=%d, want X=0 Dir=1", e.X, e.Dir)
	}
}

func TestPatrolAnimationWraps(t *testing.T) {
	e := NewEnemy(300, 440, 60, 60)
	for i := 0; i < 5*6; i++ {
		testPatrol.Step(&e, 0)
	}
	if e.Frame != 0 {
		t.Errorf("Frame = %d after a full cycle, want 0", e.Frame)
	}
	for i := 0; i < 5; i++ {
		testPatrol.Step(&e, 0)
	}
	if e.Frame != 1 {
		t.Errorf("Frame = %d, want 1", e.Frame)
	}
}

func TestCollide(t *testing.T) {
	// Enemy box is y 440..500, midpoint 470.
	tests := []struct {
		name    string
		actorY  int
		vy      int
		stomped int
		hit     bool
	}{
		{"stomp from above", 380, 5, 1, false},
		{"rising into enemy", 380, -3, 0, true},
		{"standing beside", 430, 0, 0, true},
		{"falling but too low", 410, 5, 0, true},
		{"no contact", 300, 5, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(110, tt.actorY, 50, 70, 5)
			a.VY = tt.vy
			enemies := []Enemy{NewEnemy(100, 440, 60, 60)}

			left, c := Collide(&a, enemies, 7)
			if c.Stomped != tt.stomped || c.Hit != tt.hit {
				t.Errorf("contact = %+v, want stomped=%d hit=%v", c, tt.stomped, tt.hit)
			}
			if want := 1 - tt.stomped; len(left) != want {
				t.Errorf("%d enemies left, want %d", len(left), want)
			}
			if tt.stomped > 0 && a.VY != -7 {
				t.Errorf("VY = %d after stomp, want -7", a.VY)
			}
		})
	}
}

func TestCollideStompsSeveralAndPurges(t *testing.T) {
	a := NewActor(110, 380, 50, 70, 5)
	a.VY = 4
	enemies := []Enemy{
		NewEnemy(100, 440, 60, 60),
		NewEnemy(600, 440, 60, 60),
		NewEnemy(120, 440, 60, 60),
	}
	enemies[1].Alive = false

	left, c := Collide(&a, enemies, 7)
	// After the first stomp VY is negative, so the second overlap is a hit.
	if c.Stomped != 1 || !c.Hit {
		t.Errorf("contact = %+v", c)
	}
	if len(left) != 1 || left[0].X != 120 {
		t.Errorf("left = %+v, want only the enemy at 120", left)
	}
}
