// internal/course/gates.go
package course

import "go-typeball/internal/component"

// GatePair owns the two gates and keeps exactly one of them as the goal.
type GatePair struct {
	gates [2]*component.Gate
	flips int
}

// NewGatePair wraps two gates. The goal flags are normalised so that only
// a is the goal unless b alone already was.
func NewGatePair(a, b *component.Gate) *GatePair {
	if a.IsGoal() == b.IsGoal() {
		a.SetGoal(true)
		b.SetGoal(false)
	}
	return &GatePair{gates: [2]*component.Gate{a, b}}
}

// Advance swaps the goal between the two gates and returns both gates,
// each of which changed.
func (p *GatePair) Advance() [2]*component.Gate {
	for _, g := range p.gates {
		g.SetGoal(!g.IsGoal())
	}
	p.flips++
	return p.gates
}

// Goal returns the current goal gate.
func (p *GatePair) Goal() *component.Gate {
	if p.gates[0].IsGoal() {
		return p.gates[0]
	}
	return p.gates[1]
}

// Gates returns both gates in construction order.
func (p *GatePair) Gates() [2]*component.Gate { return p.gates }

// Flips counts Advance calls.
func (p *GatePair) Flips() int { return p.flips }
