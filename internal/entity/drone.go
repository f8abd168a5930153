package entity

import "math"

// DroneState is the lifecycle of a drone sprite.
type DroneState int

const (
	// DroneFlying crosses the screen right to left carrying an answer.
	DroneFlying DroneState = iota
	// DroneExploding shows the blast sprite for a short time.
	DroneExploding
	// DroneFalling drops toward the ground after a wrong hit or an
	// escaped Shahed's dive.
	DroneFalling
	// DroneDead is inert and frees the slot on the next update.
	DroneDead
)

// Drone is one sprite flying across the play field. The Shahed flag marks
// the drone carrying the correct answer for the current equation.
type Drone struct {
	Pos       Vec
	Answer    int
	Shahed    bool
	State     DroneState
	AnimTimer float64
	Active    bool
}

// Width returns the on-screen sprite width in pixels.
func (d *Drone) Width() float64 {
	return DroneCell * DroneScale
}

// Center returns the center of the sprite.
func (d *Drone) Center() Vec {
	half := d.Width() / 2
	return Vec{X: d.Pos.X + half, Y: d.Pos.Y + half}
}

// Contains reports whether a point lies inside the sprite bounds.
func (d *Drone) Contains(x, y float64) bool {
	w := d.Width()
	return x >= d.Pos.X && x < d.Pos.X+w && y >= d.Pos.Y && y < d.Pos.Y+w
}

// Targetable reports whether the drone can currently be clicked and shot.
func (d *Drone) Targetable() bool {
	return d.Active && d.State == DroneFlying
}

// Update advances the drone one tick.
func (d *Drone) Update(dt float64, p *Params) {
	if !d.Active {
		return
	}

	switch d.State {
	case DroneFlying:
		d.Pos.X -= p.DroneSpeed * dt
		if d.Shahed && d.Pos.X < DiveBoundary {
			// The target escaped; it dives and detonates on the ground.
			d.State = DroneFalling
			d.AnimTimer = 0
		} else if d.Pos.X < OffscreenLeft {
			d.Active = false
		}

	case DroneExploding:
		d.AnimTimer += dt
		if d.AnimTimer > p.ExplosionDuration {
			d.State = DroneDead
		}

	case DroneFalling:
		d.AnimTimer += dt
		d.Pos.X -= p.DroneSpeed * p.FallDriftFactor * dt
		d.Pos.Y += p.DroneFallSpeed * dt
		if d.Shahed && d.Pos.Y >= GroundLevel {
			d.State = DroneExploding
			d.AnimTimer = 0
			d.Pos.Y += GroundExplosionOffset
		} else if !d.Shahed && (d.Pos.Y >= NearGroundLevel || d.Pos.X < OffscreenLeft) {
			d.State = DroneDead
		}

	case DroneDead:
		d.Active = false
	}
}

// fallStartY is where the dive shrink interpolation begins.
const fallStartY = 100.0

// DrawScale returns the sprite scale for the drone's current state.
// A diving Shahed shrinks linearly as it approaches the ground; a Shahed
// that detonated at ground level stays at the minimum scale.
func (d *Drone) DrawScale(p *Params) float64 {
	if d.State == DroneFalling && d.Shahed {
		progress := (d.Pos.Y - fallStartY) / (GroundLevel - fallStartY)
		progress = math.Min(1, math.Max(0, progress))
		return DroneScale - progress*(DroneScale-p.DroneMinScale)
	}
	if d.State == DroneExploding && d.Shahed && d.Pos.Y >= GroundLevel-50 {
		return p.DroneMinScale
	}
	return DroneScale
}

// Visible reports whether the sprite should be drawn this frame. Falling
// drones below the near-ground line blink on and off.
func (d *Drone) Visible(p *Params) bool {
	if d.State == DroneFalling && d.Pos.Y >= NearGroundLevel {
		return int(d.AnimTimer*p.BlinkFrequency)%2 == 1
	}
	return true
}
