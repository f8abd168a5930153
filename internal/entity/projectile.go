package entity

import "math"

// Projectile is one tracer shot fired from a turret barrel at a specific
// drone slot. It travels in a straight line and is resolved against its
// target only.
type Projectile struct {
	Pos      Vec
	Vel      Vec
	Active   bool
	Lifetime float64
	Target   int // drone slot index this shot was aimed at
}

// Aim activates the projectile at start with a velocity pointed at target.
func (p *Projectile) Aim(start, target Vec, speed float64, droneSlot int) {
	p.Pos = start
	p.Active = true
	p.Lifetime = 0
	p.Target = droneSlot

	dx := target.X - start.X
	dy := target.Y - start.Y
	if length := math.Hypot(dx, dy); length > 0 {
		p.Vel = Vec{X: dx / length * speed, Y: dy / length * speed}
	}
}

// Update advances the projectile one tick and expires it when it leaves
// the play field or outlives its flight time.
func (p *Projectile) Update(dt float64, params *Params) {
	if !p.Active {
		return
	}

	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
	p.Lifetime += dt

	if p.Pos.X < OffscreenLeft || p.Pos.X > OffscreenRight ||
		p.Pos.Y < OffscreenTop || p.Pos.Y > OffscreenBottom ||
		p.Lifetime > params.ProjectileLifetime {
		p.Active = false
	}
}

// Trail returns the tail point of the tracer line behind the projectile.
func (p *Projectile) Trail(length float64) Vec {
	return Vec{X: p.Pos.X - p.Vel.X*length, Y: p.Pos.Y - p.Vel.Y*length}
}
