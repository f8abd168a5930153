package world

import (
	"math/rand"

	"github.com/solarlune/resolv"

	"github.com/chalkfire/skymath/internal/entity"
	"github.com/chalkfire/skymath/internal/equation"
)

// Slot counts. All entities live in fixed arrays and slots are recycled.
const (
	MaxDrones      = 15
	MaxProjectiles = 10
)

// hitRadiusRatio sizes the projectile contact circle relative to the
// drone sprite width.
const hitRadiusRatio = 0.3

// projectileRadius is the contact size of a tracer shot.
const projectileRadius = 4.0

// Collision tags.
var (
	tagDroneBody = resolv.NewTag("drone")
	tagHitZone   = resolv.NewTag("hitzone")
)

// Events reports what happened during one simulation tick.
type Events struct {
	CorrectHits int
	WrongHits   int
	WaveSpawned bool
}

// ClickResult reports the outcome of a mouse click on the play field.
type ClickResult struct {
	Fired        bool // a burst was fired
	TargetShahed bool // the clicked drone carries the correct answer
}

// Status is a scan over the drone slots, used for wave pacing and the
// game-over check.
type Status struct {
	ShahedFlying bool // the correct-answer drone is still up
	AliveCount   int  // active drones in any state but dead
}

// World is the full simulation state for one session.
type World struct {
	Rules *Rules
	Level int
	Score int
	Ammo  int

	Equation equation.Equation

	Drones      [MaxDrones]entity.Drone
	Projectiles [MaxProjectiles]entity.Projectile
	Turret      entity.Gepard

	// TurretPos is the top-left corner of the turret sprite.
	TurretPos entity.Vec

	gen *equation.Generator
	rng *rand.Rand

	space       *resolv.Space
	bodyShapes  [MaxDrones]resolv.IShape // full sprite bounds, mouse picking
	hitShapes   [MaxDrones]resolv.IShape // tighter circle, projectile contact
	shotShapes  [MaxProjectiles]resolv.IShape
	probe       resolv.IShape
	slotByShape map[resolv.IShape]int

	shahedActive bool
	spawnTimer   float64
}

// New creates a world with the given rules, difficulty level and random
// source. Call Start to spawn the first wave.
func New(rules *Rules, level int, rng *rand.Rand) *World {
	w := &World{
		Rules: rules,
		Level: level,
		Ammo:  rules.Ammo.Initial,
		gen:   equation.NewGenerator(rng),
		rng:   rng,
		TurretPos: entity.Vec{
			X: 120,
			Y: entity.ScreenHeight - 40 - entity.GepardCell*entity.GepardScale,
		},
		slotByShape: make(map[resolv.IShape]int),
	}

	// The grid extends past the right edge so freshly spawned drones are
	// tracked before they scroll into view.
	w.space = resolv.NewSpace(entity.ScreenWidth+200, entity.ScreenHeight+100, 64, 64)
	w.probe = resolv.NewCircle(0, 0, 1)
	w.space.Add(w.probe)

	return w
}

// SetAllowNegative toggles subtraction facts with negative answers.
func (w *World) SetAllowNegative(allow bool) {
	w.gen.AllowNegative = allow
}

// Start generates the first equation and spawns the opening wave.
func (w *World) Start() {
	w.Equation = w.gen.Generate(w.Level, w.takenAnswers())
	w.spawnWave()
	w.shahedActive = true
	w.spawnTimer = 0
}

// Reset clears the session back to its initial state. The caller decides
// whether to Start again or return to the level select.
func (w *World) Reset() {
	w.Ammo = w.Rules.Ammo.Initial
	w.Score = 0
	w.shahedActive = false
	w.spawnTimer = 0
	w.Turret = entity.Gepard{}

	for i := range w.Drones {
		w.Drones[i].Active = false
		w.removeDroneShapes(i)
	}
	for i := range w.Projectiles {
		w.Projectiles[i].Active = false
		w.removeShotShape(i)
	}
}

// AimAt points the turret at the cursor.
func (w *World) AimAt(mouseX int) {
	w.Turret.TurretIndex = entity.TurretIndexForCursor(mouseX, entity.ScreenWidth)
}

// ClickAt handles a left click at the given play-field position. A burst
// is fired only when the cursor is over a targetable drone, the turret
// has finished its recoil and enough ammo remains.
func (w *World) ClickAt(x, y float64) ClickResult {
	if w.Turret.Firing || w.Ammo < w.Rules.Ammo.ShotCost {
		return ClickResult{}
	}

	slot := w.droneAt(x, y)
	if slot < 0 {
		return ClickResult{}
	}

	w.Ammo -= w.Rules.Ammo.ShotCost
	w.Turret.StartFiring()
	w.fireBurst(slot)

	return ClickResult{Fired: true, TargetShahed: w.Drones[slot].Shahed}
}

// droneAt returns the lowest targetable slot under the point, or -1.
func (w *World) droneAt(x, y float64) int {
	w.probe.SetPosition(x, y)

	found := -1
	w.probe.IntersectionTest(resolv.IntersectionTestSettings{
		TestAgainst: w.probe.SelectTouchingCells(0).FilterShapes().ByTags(tagDroneBody),
		OnIntersect: func(set resolv.IntersectionSet) bool {
			slot, ok := w.slotByShape[set.OtherShape]
			if !ok || !w.Drones[slot].Targetable() {
				return true
			}
			if found < 0 || slot < found {
				found = slot
			}
			return true
		},
	})
	return found
}

// fireBurst launches three projectiles at the drone in slot: one from
// each barrel aimed slightly off center, and one from the midpoint aimed
// dead center.
func (w *World) fireBurst(slot int) {
	center := w.Drones[slot].Center()
	left, right := entity.BarrelPositions(w.TurretPos)
	mid := entity.Vec{X: (left.X + right.X) / 2, Y: (left.Y + right.Y) / 2}

	const spread = 10.0
	w.launch(left, entity.Vec{X: center.X - spread, Y: center.Y}, slot)
	w.launch(right, entity.Vec{X: center.X + spread, Y: center.Y}, slot)
	w.launch(mid, center, slot)
}

// launch fires one projectile from the first free slot.
func (w *World) launch(start, target entity.Vec, droneSlot int) {
	for i := range w.Projectiles {
		if w.Projectiles[i].Active {
			continue
		}
		w.Projectiles[i].Aim(start, target, w.Rules.Physics.ProjectileSpeed, droneSlot)

		sh := resolv.NewCircle(start.X, start.Y, projectileRadius)
		w.shotShapes[i] = sh
		w.space.Add(sh)
		return
	}
}

// Update advances the simulation one tick.
func (w *World) Update(dt float64) Events {
	var ev Events
	p := &w.Rules.Physics

	w.Turret.Update(dt, p)
	w.updateDrones(dt, p)
	w.updateProjectiles(dt, p, &ev)

	st := w.Scan()
	if !st.ShahedFlying {
		w.shahedActive = false
	}

	w.spawnTimer += dt
	if !w.shahedActive && w.spawnTimer > w.Rules.Waves.RespawnDelay {
		w.Equation = w.gen.Generate(w.Level, w.takenAnswers())
		w.spawnWave()
		w.shahedActive = true
		w.spawnTimer = 0
		ev.WaveSpawned = true
	}

	return ev
}

func (w *World) updateDrones(dt float64, p *entity.Params) {
	for i := range w.Drones {
		d := &w.Drones[i]
		if !d.Active {
			continue
		}
		d.Update(dt, p)
		if !d.Active {
			w.removeDroneShapes(i)
			continue
		}
		if w.bodyShapes[i] != nil {
			// Shape positions are centers.
			c := d.Center()
			w.bodyShapes[i].SetPosition(c.X, c.Y)
			w.hitShapes[i].SetPosition(c.X, c.Y)
		}
	}
}

func (w *World) updateProjectiles(dt float64, p *entity.Params, ev *Events) {
	for i := range w.Projectiles {
		pr := &w.Projectiles[i]
		if !pr.Active {
			continue
		}

		pr.Update(dt, p)
		if !pr.Active {
			w.removeShotShape(i)
			continue
		}

		sh := w.shotShapes[i]
		sh.SetPosition(pr.Pos.X, pr.Pos.Y)

		target := pr.Target
		if target < 0 || target >= MaxDrones {
			continue
		}
		d := &w.Drones[target]
		if !d.Active || (d.State != entity.DroneFlying && d.State != entity.DroneExploding) {
			continue
		}

		contact := false
		sh.IntersectionTest(resolv.IntersectionTestSettings{
			TestAgainst: sh.SelectTouchingCells(0).FilterShapes().ByTags(tagHitZone),
			OnIntersect: func(set resolv.IntersectionSet) bool {
				if set.OtherShape == w.hitShapes[target] {
					contact = true
					return false
				}
				return true
			},
		})
		if !contact {
			continue
		}

		pr.Active = false
		w.removeShotShape(i)

		// A shot reaching an already-exploding drone just disappears.
		if d.State != entity.DroneFlying {
			continue
		}

		if d.Shahed {
			d.State = entity.DroneExploding
			d.AnimTimer = 0
			w.Ammo += w.Rules.Ammo.HitReward
			if w.Ammo > w.Rules.Ammo.Max {
				w.Ammo = w.Rules.Ammo.Max
			}
			w.Score += w.Rules.Scoring.CorrectHit
			w.shahedActive = false
			ev.CorrectHits++
		} else {
			d.State = entity.DroneFalling
			d.AnimTimer = 0
			w.Score += w.Rules.Scoring.WrongHit
			ev.WrongHits++
		}
	}
}

// Scan sweeps the drone slots for wave pacing and the game-over check.
func (w *World) Scan() Status {
	var st Status
	for i := range w.Drones {
		d := &w.Drones[i]
		if d.Active && d.State != entity.DroneDead {
			st.AliveCount++
			if d.Shahed && d.State == entity.DroneFlying {
				st.ShahedFlying = true
			}
		}
	}
	return st
}

// GameOver reports whether the session can no longer be won: not enough
// ammo for a burst, no Shahed left to hit and the field is empty.
func (w *World) GameOver() bool {
	if w.Ammo >= w.Rules.Ammo.ShotCost {
		return false
	}
	st := w.Scan()
	return !st.ShahedFlying && st.AliveCount == 0
}

// takenAnswers lists the answers carried by drones still in flight, so a
// new equation avoids colliding with them.
func (w *World) takenAnswers() []int {
	var taken []int
	for i := range w.Drones {
		d := &w.Drones[i]
		if d.Active && d.State == entity.DroneFlying {
			taken = append(taken, d.Answer)
		}
	}
	return taken
}

func (w *World) removeDroneShapes(i int) {
	if w.bodyShapes[i] != nil {
		w.space.Remove(w.bodyShapes[i])
		delete(w.slotByShape, w.bodyShapes[i])
		w.bodyShapes[i] = nil
	}
	if w.hitShapes[i] != nil {
		w.space.Remove(w.hitShapes[i])
		w.hitShapes[i] = nil
	}
}

func (w *World) removeShotShape(i int) {
	if w.shotShapes[i] != nil {
		w.space.Remove(w.shotShapes[i])
		w.shotShapes[i] = nil
	}
}
