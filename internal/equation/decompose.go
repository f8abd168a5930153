package equation

import (
	"fmt"
	"strings"
)

// PartState controls how a decomposition part is highlighted by the
// teaching display.
type PartState int

const (
	// PartNormal is plain display.
	PartNormal PartState = iota
	// PartCancelled marks a +10/-10 pair that cancels out in subtraction.
	PartCancelled
	// PartHighlight marks the tens extracted from an addition operand.
	PartHighlight
)

// Part is one element of a decomposed equation.
type Part struct {
	Value    int
	OpBefore byte // '+', '-', or 0 for the first part
	State    PartState
}

// BreakdownString renders the decomposition as a plain string, ending with
// " = ?". Multiplication and division have no decomposition and fall back
// to the regular equation string.
func (e *Equation) BreakdownString() string {
	if len(e.Parts) == 0 {
		return e.String()
	}

	var b strings.Builder
	for _, p := range e.Parts {
		if p.OpBefore != 0 {
			fmt.Fprintf(&b, " %c ", p.OpBefore)
		}
		fmt.Fprintf(&b, "%d", p.Value)
	}
	b.WriteString(" = ?")
	return b.String()
}

// splitTensOnes splits a number into its tens and ones components.
// Negative numbers split by absolute value with the sign reapplied
// to both components.
func splitTensOnes(n int) (tens, ones int) {
	if n >= 0 {
		return (n / 10) * 10, n % 10
	}
	abs := -n
	return -((abs / 10) * 10), -(abs % 10)
}

// decomposeEquation builds the teaching-display parts for an equation.
//
// Addition splits both operands into tens and ones, highlighting the tens:
// 18 + 23 becomes 10 + 8 + 20 + 3 with the 10 and 20 highlighted.
// Subtraction expands tens into individual 10s and marks +10/-10 pairs that
// cancel: 31 - 20 becomes 10 + 10 + 10 + 1 - 10 - 10 with two pairs struck.
// Multiplication and division are not taught through decomposition and
// produce no parts.
func decomposeEquation(eq Equation) []Part {
	switch eq.Op {
	case OpAdd:
		return decomposeAdd(eq)
	case OpSub:
		return decomposeSub(eq)
	}
	return nil
}

func decomposeAdd(eq Equation) []Part {
	aTens, aOnes := splitTensOnes(eq.A)
	bTens, bOnes := splitTensOnes(eq.B)

	var parts []Part
	if aTens != 0 {
		parts = append(parts, Part{Value: aTens, State: PartHighlight})
	}
	if aOnes != 0 {
		var op byte
		if aTens != 0 {
			op = OpAdd
		}
		parts = append(parts, Part{Value: aOnes, OpBefore: op})
	}
	if bTens != 0 {
		parts = append(parts, Part{Value: bTens, OpBefore: OpAdd, State: PartHighlight})
	}
	if bOnes != 0 {
		parts = append(parts, Part{Value: bOnes, OpBefore: OpAdd})
	}
	return parts
}

func decomposeSub(eq Equation) []Part {
	aTens, aOnes := splitTensOnes(eq.A)
	bTens, bOnes := splitTensOnes(eq.B)

	posCount := abs(aTens) / 10
	negCount := abs(bTens) / 10

	// Matching +10/-10 pairs cancel; mark them from the front.
	pairs := posCount
	if negCount < pairs {
		pairs = negCount
	}

	var parts []Part
	for i := 0; i < posCount; i++ {
		p := Part{Value: 10}
		if len(parts) > 0 {
			p.OpBefore = OpAdd
		}
		if i < pairs {
			p.State = PartCancelled
		}
		parts = append(parts, p)
	}
	if aOnes != 0 {
		p := Part{Value: aOnes}
		if len(parts) > 0 {
			p.OpBefore = OpAdd
		}
		parts = append(parts, p)
	}
	for i := 0; i < negCount; i++ {
		p := Part{Value: 10, OpBefore: OpSub}
		if i < pairs {
			p.State = PartCancelled
		}
		parts = append(parts, p)
	}
	if bOnes != 0 {
		parts = append(parts, Part{Value: abs(bOnes), OpBefore: OpSub})
	}
	return parts
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
