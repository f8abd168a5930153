package entity

import (
	"math"
	"testing"
)

func defaultParams() *Params {
	p := DefaultParams()
	return &p
}

func TestDroneFliesLeft(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 600, Y: 200}, State: DroneFlying, Active: true}

	d.Update(1.0, p)
	if got := d.Pos.X; got != 600-p.DroneSpeed {
		t.Errorf("x after 1s = %v, want %v", got, 600-p.DroneSpeed)
	}
	if d.State != DroneFlying {
		t.Errorf("state = %v, want flying", d.State)
	}
}

func TestShahedDivesAtBoundary(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: DiveBoundary + 1, Y: 150}, Shahed: true, State: DroneFlying, Active: true}

	d.Update(0.1, p)
	if d.State != DroneFalling {
		t.Fatalf("state = %v, want falling after crossing the dive boundary", d.State)
	}
	if !d.Active {
		t.Error("diving Shahed must stay active")
	}
}

func TestEscapedDecoyDeactivates(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: OffscreenLeft + 1, Y: 150}, State: DroneFlying, Active: true}

	d.Update(0.1, p)
	if d.Active {
		t.Error("decoy past the left edge should deactivate")
	}
}

func TestFallingShahedExplodesOnGround(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 50, Y: GroundLevel - 1}, Shahed: true, State: DroneFalling, Active: true}

	d.Update(0.1, p)
	if d.State != DroneExploding {
		t.Fatalf("state = %v, want exploding at ground level", d.State)
	}
	if d.Pos.Y < GroundLevel+GroundExplosionOffset-10 {
		t.Errorf("y = %v, want ground blast offset applied", d.Pos.Y)
	}
	if d.AnimTimer != 0 {
		t.Errorf("anim timer = %v, want reset", d.AnimTimer)
	}
}

func TestFallingDecoyDiesNearGround(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 300, Y: NearGroundLevel - 1}, State: DroneFalling, Active: true}

	d.Update(0.1, p)
	if d.State != DroneDead {
		t.Fatalf("state = %v, want dead below near-ground line", d.State)
	}
	d.Update(0.1, p)
	if d.Active {
		t.Error("dead drone should deactivate on the next update")
	}
}

func TestExplosionExpires(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 300, Y: 150}, State: DroneExploding, Active: true}

	d.Update(p.ExplosionDuration/2, p)
	if d.State != DroneExploding {
		t.Fatalf("blast expired too early")
	}
	d.Update(p.ExplosionDuration, p)
	if d.State != DroneDead {
		t.Errorf("state = %v, want dead after %vs", d.State, p.ExplosionDuration)
	}
}

func TestFallingDroneDrifts(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 300, Y: 150}, Shahed: true, State: DroneFalling, Active: true}

	d.Update(1.0, p)
	wantX := 300 - p.DroneSpeed*p.FallDriftFactor
	if math.Abs(d.Pos.X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v", d.Pos.X, wantX)
	}
	if math.Abs(d.Pos.Y-(150+p.DroneFallSpeed)) > 1e-9 {
		t.Errorf("y = %v, want %v", d.Pos.Y, 150+p.DroneFallSpeed)
	}
}

func TestDroneContains(t *testing.T) {
	d := Drone{Pos: Vec{X: 100, Y: 100}}
	w := d.Width()

	if !d.Contains(100, 100) {
		t.Error("top-left corner should be inside")
	}
	if !d.Contains(100+w/2, 100+w/2) {
		t.Error("center should be inside")
	}
	if d.Contains(100+w, 100) {
		t.Error("right edge is exclusive")
	}
	if d.Contains(99, 150) {
		t.Error("left of sprite should be outside")
	}
}

func TestDrawScaleShrinksDivingShahed(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 50, Y: fallStartY}, Shahed: true, State: DroneFalling, Active: true}
	if got := d.DrawScale(p); got != DroneScale {
		t.Errorf("scale at dive start = %v, want %v", got, DroneScale)
	}

	d.Pos.Y = GroundLevel
	if got := d.DrawScale(p); math.Abs(got-p.DroneMinScale) > 1e-9 {
		t.Errorf("scale at ground = %v, want %v", got, p.DroneMinScale)
	}

	mid := Drone{Pos: Vec{X: 50, Y: (fallStartY + GroundLevel) / 2}, Shahed: true, State: DroneFalling}
	got := mid.DrawScale(p)
	if got <= p.DroneMinScale || got >= DroneScale {
		t.Errorf("mid-dive scale = %v, want strictly between min and full", got)
	}
}

func TestVisibleBlinksNearGround(t *testing.T) {
	p := defaultParams()
	d := Drone{Pos: Vec{X: 300, Y: NearGroundLevel}, State: DroneFalling, Active: true}

	period := 1 / p.BlinkFrequency
	d.AnimTimer = 0.25 * period
	hidden := d.Visible(p)
	d.AnimTimer = 1.25 * period
	shown := d.Visible(p)
	if hidden == shown {
		t.Error("blink phases half a period apart should differ")
	}

	d.Pos.Y = NearGroundLevel - 1
	if !d.Visible(p) {
		t.Error("drone above the near-ground line should not blink")
	}
}

func TestProjectileAimNormalizesVelocity(t *testing.T) {
	p := defaultParams()
	var pr Projectile
	pr.Aim(Vec{X: 0, Y: 0}, Vec{X: 30, Y: 40}, p.ProjectileSpeed, 3)

	speed := math.Hypot(pr.Vel.X, pr.Vel.Y)
	if math.Abs(speed-p.ProjectileSpeed) > 1e-6 {
		t.Errorf("speed = %v, want %v", speed, p.ProjectileSpeed)
	}
	if pr.Target != 3 {
		t.Errorf("target = %d, want 3", pr.Target)
	}
	if !pr.Active {
		t.Error("aimed projectile should be active")
	}
}

func TestProjectileExpires(t *testing.T) {
	p := defaultParams()
	var pr Projectile
	pr.Aim(Vec{X: 500, Y: 500}, Vec{X: 500, Y: 400}, 1, 0) // slow shot, stays on screen

	pr.Update(p.ProjectileLifetime+0.1, p)
	if pr.Active {
		t.Error("projectile should expire after its lifetime")
	}
}

func TestProjectileLeavesScreen(t *testing.T) {
	p := defaultParams()
	var pr Projectile
	pr.Aim(Vec{X: 10, Y: 10}, Vec{X: -100, Y: 10}, p.ProjectileSpeed, 0)

	pr.Update(0.1, p)
	if pr.Active {
		t.Error("projectile past the left edge should deactivate")
	}
}

func TestGepardRecoilSequence(t *testing.T) {
	p := defaultParams()
	var g Gepard

	g.StartFiring()
	if !g.Firing || g.FireFrame != 1 {
		t.Fatalf("after StartFiring: firing=%v frame=%d, want firing frame 1", g.Firing, g.FireFrame)
	}

	step := p.FireFrameDuration + 0.001
	g.Update(step, p)
	if g.FireFrame != 2 {
		t.Errorf("frame = %d, want 2", g.FireFrame)
	}
	g.Update(step, p)
	if g.Firing || g.FireFrame != 0 {
		t.Errorf("after sequence: firing=%v frame=%d, want rest", g.Firing, g.FireFrame)
	}
}

func TestTurretIndexForCursor(t *testing.T) {
	cases := []struct {
		x, want int
	}{
		{ScreenWidth - 1, 0},
		{ScreenWidth * 9 / 10, 0},
		{ScreenWidth / 2, 2},
		{ScreenWidth / 10, 4},
		{0, 4},
		{-50, 4},              // clamped
		{ScreenWidth + 50, 0}, // clamped
	}
	for _, tc := range cases {
		if got := TurretIndexForCursor(tc.x, ScreenWidth); got != tc.want {
			t.Errorf("TurretIndexForCursor(%d) = %d, want %d", tc.x, got, tc.want)
		}
	}
}

func TestBarrelPositions(t *testing.T) {
	left, right := BarrelPositions(Vec{X: 100, Y: 200})
	size := GepardCell * GepardScale

	if left.X != 100+size*BarrelLeftX || left.Y != 200+size*BarrelY {
		t.Errorf("left barrel = %+v", left)
	}
	if right.X != 100+size*BarrelRightX {
		t.Errorf("right barrel = %+v", right)
	}
	if left.X >= right.X {
		t.Error("left barrel should be left of right barrel")
	}
}
