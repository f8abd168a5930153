package world

import (
	"github.com/solarlune/resolv"

	"github.com/chalkfire/skymath/internal/entity"
)

// wrongAnswerAttempts caps the dedup loop when picking decoy answers.
const wrongAnswerAttempts = 50

// spawnWave fills free drone slots with a new wave for the current
// equation. Exactly one drone on screen ends up carrying the correct
// answer: if a surviving drone already has it, that drone is re-marked as
// the Shahed and the wave spawns decoys only.
func (w *World) spawnWave() {
	waves := w.Rules.Waves
	count := waves.MinDrones + w.rng.Intn(waves.MaxDrones-waves.MinDrones+1)
	if count > MaxDrones {
		count = MaxDrones
	}

	// Re-mark survivors against the new equation.
	var existing []int
	foundShahed := false
	for i := range w.Drones {
		d := &w.Drones[i]
		if !d.Active || d.State != entity.DroneFlying {
			continue
		}
		existing = append(existing, d.Answer)
		if d.Answer == w.Equation.Answer {
			d.Shahed = true
			foundShahed = true
		} else {
			d.Shahed = false
		}
	}

	// If a survivor already carries the correct answer, the wave is all
	// decoys.
	correctIndex := -1
	if !foundShahed {
		correctIndex = w.rng.Intn(count)
	}

	answers := make([]int, count)
	for i := range answers {
		if i == correctIndex {
			answers[i] = w.Equation.Answer
			continue
		}
		answers[i] = w.wrongAnswer(existing, answers[:i])
	}

	spawned := 0
	for i := 0; i < MaxDrones && spawned < count; i++ {
		d := &w.Drones[i]
		if d.Active && d.State != entity.DroneDead {
			continue
		}

		*d = entity.Drone{
			Pos: entity.Vec{
				X: entity.SpawnX + float64(spawned)*entity.SpawnGap,
				Y: entity.SpawnYMin + float64(w.rng.Intn(entity.SpawnYRange)),
			},
			Answer: answers[spawned],
			Shahed: spawned == correctIndex,
			State:  entity.DroneFlying,
			Active: true,
		}
		w.attachDroneShapes(i)
		spawned++
	}
}

// wrongAnswer picks a decoy near the correct answer, avoiding answers
// already on screen or already picked for this wave. The loop is capped
// so a crowded value range can never hang spawning.
func (w *World) wrongAnswer(existing, picked []int) int {
	max := w.Rules.Waves.WrongOffsetMax
	answer := 0
	for attempt := 0; attempt < wrongAnswerAttempts; attempt++ {
		offset := w.rng.Intn(2*max+1) - max
		if offset == 0 {
			offset = 5
		}
		answer = w.Equation.Answer + offset
		if !contains(existing, answer) && !contains(picked, answer) {
			break
		}
	}
	return answer
}

func contains(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// attachDroneShapes registers collision shapes for a freshly spawned
// drone: the full sprite rectangle for mouse picking and a tighter circle
// for projectile contact.
func (w *World) attachDroneShapes(i int) {
	w.removeDroneShapes(i)

	d := &w.Drones[i]
	size := d.Width()

	body := resolv.NewRectangleFromTopLeft(d.Pos.X, d.Pos.Y, size, size)
	body.Tags().Set(tagDroneBody)
	w.space.Add(body)
	w.bodyShapes[i] = body
	w.slotByShape[body] = i

	c := d.Center()
	hit := resolv.NewCircle(c.X, c.Y, size*hitRadiusRatio)
	hit.Tags().Set(tagHitZone)
	w.space.Add(hit)
	w.hitShapes[i] = hit
}
