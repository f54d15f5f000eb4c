// Package simulate implements the bilinear-constraint simulator (C6): it
// evaluates each ingested constraint's linear combinations over the
// statement's field and checks A·B ≡ C, accumulating violations rather
// than aborting on the first failed check.
package simulate

import (
	"fmt"
	"math/big"

	"github.com/zkinterface-go/zki"
)

// Simulator evaluates R1CS constraints against an assignment built up from
// ingested headers and witnesses.
type Simulator struct {
	values  map[uint64]*big.Int
	modulus *big.Int

	violations []string
}

// New returns a Simulator with variable 0 pre-set to 1, the conventional
// "constant one" wire.
func New() *Simulator {
	s := &Simulator{values: map[uint64]*big.Int{0: big.NewInt(1)}}
	return s
}

func (s *Simulator) violate(format string, args ...any) {
	s.violations = append(s.violations, fmt.Sprintf(format, args...))
}

// Violations returns every violation recorded so far.
func (s *Simulator) Violations() []string {
	return s.violations
}

// IngestHeader sets the field modulus (field_maximum+1) and every instance
// variable's value.
func (s *Simulator) IngestHeader(h zki.Header) {
	if h.FieldMaximum == nil {
		s.violate("No field_maximum specified")
		return
	}
	s.modulus = zki.Modulus(h.FieldMaximum)

	vars, err := h.InstanceVariables.All()
	if err != nil {
		s.violate("Malformed instance variables block: %v", err)
		return
	}
	for _, v := range vars {
		s.set(v.Id, v.Value)
	}
}

// IngestWitness sets every witness-assigned variable's value.
func (s *Simulator) IngestWitness(w zki.Witness) {
	if err := s.ensureHeader(); err != nil {
		s.violate("%v", err)
		return
	}
	vars, err := w.AssignedVariables.All()
	if err != nil {
		s.violate("Malformed witness variables block: %v", err)
		return
	}
	s.IngestWitnessVariables(vars)
}

// IngestWitnessVariables sets values directly from a flattened variable
// list, for callers that have already merged multiple Witness records.
func (s *Simulator) IngestWitnessVariables(vars []zki.Variable) {
	if err := s.ensureHeader(); err != nil {
		s.violate("%v", err)
		return
	}
	for _, v := range vars {
		s.set(v.Id, v.Value)
	}
}

// IngestConstraintSystem checks A·B ≡ C (mod modulus) for every constraint
// in cs, recording a violation (not aborting) on any mismatch or missing
// value.
func (s *Simulator) IngestConstraintSystem(cs zki.ConstraintSystem) {
	if err := s.ensureHeader(); err != nil {
		s.violate("%v", err)
		return
	}
	for i, c := range cs.Constraints {
		s.verifyConstraint(i, c)
	}
}

func (s *Simulator) verifyConstraint(index int, c zki.BilinearConstraint) {
	a := s.evalLinearCombination(index, c.A)
	b := s.evalLinearCombination(index, c.B)
	want := s.evalLinearCombination(index, c.C)

	got := new(big.Int).Mul(a, b)
	got.Mod(got, s.modulus)
	want.Mod(want, s.modulus)

	if got.Cmp(want) != 0 {
		s.violate("constraint %d unsatisfied: %s * %s = %s, expected %s (mod %s)", index, a, b, got, want, s.modulus)
	}
}

// evalLinearCombination computes Σ coeff_i · values[id_i] mod modulus. A
// referenced variable with no recorded value is a violation; its term
// contributes 0 so evaluation, and downstream constraints, continue.
func (s *Simulator) evalLinearCombination(constraintIndex int, lc zki.Variables) *big.Int {
	sum := new(big.Int)
	terms, err := lc.All()
	if err != nil {
		s.violate("constraint %d: malformed linear combination: %v", constraintIndex, err)
		return sum
	}
	for _, term := range terms {
		value, ok := s.values[term.Id]
		if !ok {
			s.violate("No value given for variable %d", term.Id)
			continue
		}
		coeff := zki.FieldElementToBig(term.Value)
		product := new(big.Int).Mul(coeff, value)
		sum.Add(sum, product)
	}
	sum.Mod(sum, s.modulus)
	return sum
}

func (s *Simulator) set(id uint64, encoded []byte) {
	value := zki.FieldElementToBig(encoded)
	value.Mod(value, s.modulus)
	s.values[id] = value
}

func (s *Simulator) ensureHeader() error {
	if s.modulus == nil {
		return fmt.Errorf("simulate: a header must be provided before other messages")
	}
	return nil
}
