package entity

// Params holds the kinematic and timing tunables shared by the entity
// state machines. Values are loaded from the rules file with these
// defaults when absent.
type Params struct {
	DroneSpeed         float64 `json:"drone_speed"`          // px/s, flying
	DroneFallSpeed     float64 `json:"drone_fall_speed"`     // px/s, vertical while falling
	FallDriftFactor    float64 `json:"fall_drift_factor"`    // fraction of DroneSpeed kept while falling
	DroneMinScale      float64 `json:"drone_min_scale"`      // final scale of a diving Shahed
	ProjectileSpeed    float64 `json:"projectile_speed"`     // px/s
	ProjectileLifetime float64 `json:"projectile_lifetime"`  // seconds before a shot expires
	ExplosionDuration  float64 `json:"explosion_duration"`   // seconds the blast sprite shows
	FireFrameDuration  float64 `json:"fire_frame_duration"`  // seconds per turret recoil frame
	BlinkFrequency     float64 `json:"blink_frequency"`      // Hz, falling drones near ground
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		DroneSpeed:         70.0,
		DroneFallSpeed:     150.0,
		FallDriftFactor:    0.5,
		DroneMinScale:      0.2,
		ProjectileSpeed:    3000.0,
		ProjectileLifetime: 2.0,
		ExplosionDuration:  0.3,
		FireFrameDuration:  0.05,
		BlinkFrequency:     10.0,
	}
}
