// Package equation generates the arithmetic facts the game quizzes on.
// Operations unlock by difficulty level, generated answers avoid colliding
// with answers already visible on screen, and each equation carries an
// optional tens-decomposition used by the teaching display.
package equation

import (
	"fmt"
	"math/rand"
)

// Operation symbols. Stored as the display byte so formatting is trivial.
const (
	OpAdd = '+'
	OpSub = '-'
	OpMul = '*'
	OpDiv = '/'
)

// maxAttempts caps the rejection loop so a crowded screen can never hang
// generation; after that the last candidate is accepted as-is.
const maxAttempts = 20

// Equation is a single arithmetic fact shown to the player.
type Equation struct {
	A, B   int
	Op     byte
	Answer int

	// Parts is the tens-decomposition for the teaching display.
	// Empty for multiplication and division, which are not taught
	// through decomposition.
	Parts []Part
}

// String renders the equation as shown at the top of the screen.
func (e *Equation) String() string {
	return fmt.Sprintf("%d %c %d = ?", e.A, e.Op, e.B)
}

// Generator produces equations from a configurable random source.
type Generator struct {
	rng *rand.Rand

	// AllowNegative permits subtraction facts with negative answers.
	AllowNegative bool
}

// NewGenerator creates a Generator with the given random source.
func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate produces a new equation for the given difficulty level.
// Level 1 offers addition and subtraction, level 2 adds multiplication,
// level 3 and above add division. taken lists answers currently carried by
// on-screen drones; candidates whose answer duplicates one of them are
// rejected and regenerated, as are trivial facts (adding or subtracting 0).
func (g *Generator) Generate(level int, taken []int) Equation {
	var eq Equation

	for attempt := 0; attempt < maxAttempts; attempt++ {
		eq = g.roll(level)
		if g.trivial(eq) || containsAnswer(taken, eq.Answer) {
			continue
		}
		break
	}

	eq.Parts = decomposeEquation(eq)
	return eq
}

// roll produces one candidate equation without any rejection checks.
func (g *Generator) roll(level int) Equation {
	ops := 2 // add, subtract
	if level == 2 {
		ops = 3 // + multiply
	} else if level >= 3 {
		ops = 4 // + divide
	}

	switch g.rng.Intn(ops) {
	case 0:
		return g.rollAdd(level)
	case 1:
		return g.rollSub(level)
	case 2:
		return g.rollMul()
	default:
		return g.rollDiv()
	}
}

func (g *Generator) rollAdd(level int) Equation {
	var a, b int
	if level == 1 {
		a = 1 + g.rng.Intn(20)
		b = 1 + g.rng.Intn(20)
	} else {
		a = 5 + g.rng.Intn(45)
		b = 5 + g.rng.Intn(45)
	}
	return Equation{A: a, B: b, Op: OpAdd, Answer: a + b}
}

func (g *Generator) rollSub(level int) Equation {
	var a, b int
	if g.AllowNegative {
		if level == 1 {
			a = g.rng.Intn(21)
			b = g.rng.Intn(21)
		} else {
			a = g.rng.Intn(80)
			b = g.rng.Intn(80)
		}
	} else {
		if level == 1 {
			a = g.rng.Intn(21)
			b = g.rng.Intn(a + 1)
		} else {
			a = 20 + g.rng.Intn(60)
			b = 5 + g.rng.Intn(a-4)
		}
	}
	return Equation{A: a, B: b, Op: OpSub, Answer: a - b}
}

func (g *Generator) rollMul() Equation {
	a := 2 + g.rng.Intn(12)
	b := 2 + g.rng.Intn(12)
	return Equation{A: a, B: b, Op: OpMul, Answer: a * b}
}

// rollDiv generates the answer first and multiplies back up, so the
// quotient is always a whole number.
func (g *Generator) rollDiv() Equation {
	answer := 2 + g.rng.Intn(10)
	divisor := 2 + g.rng.Intn(9)
	return Equation{A: answer * divisor, B: divisor, Op: OpDiv, Answer: answer}
}

// trivial reports whether the fact teaches nothing: adding a zero operand
// or subtracting zero.
func (g *Generator) trivial(eq Equation) bool {
	switch eq.Op {
	case OpAdd:
		return eq.A == 0 || eq.B == 0
	case OpSub:
		return eq.B == 0
	}
	return false
}

func containsAnswer(taken []int, answer int) bool {
	for _, t := range taken {
		if t == answer {
			return true
		}
	}
	return false
}
