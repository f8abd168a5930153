package entity

// Gepard is the player-controlled turret. Aim is discrete: the mouse X
// position selects one of five sheet columns, and firing plays a short
// recoil animation through the sheet rows.
type Gepard struct {
	TurretIndex int // 0-4 facing column
	FireTimer   float64
	Firing      bool
	FireFrame   int // 0 = rest, 1 = middle, 2 = top
}

// StartFiring begins the recoil animation. The first frame is shown
// immediately for visual feedback.
func (g *Gepard) StartFiring() {
	g.Firing = true
	g.FireTimer = 0
	g.FireFrame = 1
}

// Update advances the recoil animation.
func (g *Gepard) Update(dt float64, p *Params) {
	if !g.Firing {
		return
	}
	g.FireTimer += dt
	if g.FireTimer > p.FireFrameDuration {
		g.FireFrame++
		g.FireTimer = 0
		if g.FireFrame > 2 {
			g.FireFrame = 0
			g.Firing = false
		}
	}
}

// TurretIndexForCursor maps a mouse X position to a turret facing.
// The right edge of the screen maps to index 0, the left edge to index 4.
func TurretIndexForCursor(mouseX, screenWidth int) int {
	ratio := float64(mouseX) / float64(screenWidth)
	index := int((1 - ratio) * TurretPositions)
	if index < 0 {
		index = 0
	}
	if index > TurretPositions-1 {
		index = TurretPositions - 1
	}
	return index
}

// BarrelPositions returns the muzzle points of the left and right barrels
// for a turret drawn with its top-left corner at base.
func BarrelPositions(base Vec) (left, right Vec) {
	size := GepardCell * GepardScale
	left = Vec{X: base.X + size*BarrelLeftX, Y: base.Y + size*BarrelY}
	right = Vec{X: base.X + size*BarrelRightX, Y: base.Y + size*BarrelY}
	return left, right
}
