// Package entity holds the moving pieces of the play field - drones,
// projectiles and the Gepard turret - and their per-frame state machines.
// Everything here is pure logic; drawing and collision bookkeeping live
// elsewhere.
package entity

// Vec is a 2D position or velocity in play-field pixels.
type Vec struct {
	X, Y float64
}

// Play-field dimensions (logical pixels). The window letterboxes this
// surface, so all game coordinates are in this space.
const (
	ScreenWidth  = 1107
	ScreenHeight = 694
)

// Vertical landmarks.
const (
	GroundLevel           = 394.0 // a diving Shahed explodes here
	NearGroundLevel       = 494.0 // falling drones blink below this line
	GroundExplosionOffset = 200.0 // blast sprite offset when a Shahed lands
)

// Horizontal boundaries.
const (
	OffscreenLeft   = -150.0
	OffscreenRight  = 1200.0
	OffscreenTop    = -10.0
	OffscreenBottom = 750.0
	DiveBoundary    = 100.0 // a Shahed crossing this starts its dive
)

// Drone spawn layout.
const (
	SpawnX      = 1200.0
	SpawnGap    = 150.0
	SpawnYMin   = 80.0
	SpawnYRange = 250
)

// Sprite sheet cells and on-screen scales.
const (
	DroneCell   = 100 // drone sheet cell size in pixels
	DroneScale  = 2.0
	GepardCell  = 150 // gepard sheet cell size in pixels
	GepardScale = 2.0
)

// Gepard barrel muzzle positions as ratios of the scaled sprite.
const (
	BarrelLeftX  = 0.67
	BarrelRightX = 0.83
	BarrelY      = 0.63
)

// TurretPositions is the number of discrete turret facings on the sheet.
const TurretPositions = 5
