// Package validate implements the variable-lifecycle validator: it tracks,
// per variable ID, the declaration state machine and accumulates
// human-readable violations without ever aborting ingestion.
package validate

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/zkinterface-go/zki"
)

// Validator tracks variable lifecycle state across ingested messages and
// accumulates violations. It never aborts: every ingest method always
// returns, and the accumulated Violations() are read at the end.
type Validator struct {
	asProver bool

	statuses       map[uint64]status
	gotHeader      bool
	fieldMaximum   *big.Int
	freeVariableId uint64
	haveBound      bool

	violations []string
}

// newValidator returns a Validator with variable 0 pre-declared as the
// constant one, so a constraint referencing it is never flagged as using
// an undeclared variable.
func newValidator() *Validator {
	return &Validator{statuses: map[uint64]status{0: instanceDeclared}}
}

// NewVerifier returns a Validator in verifier-view: it rejects any witness
// record outright (R8).
func NewVerifier() *Validator {
	return newValidator()
}

// NewProver returns a Validator in prover-view: it accepts witness records
// and requires every used witness variable to have been assigned one (R6).
func NewProver() *Validator {
	v := newValidator()
	v.asProver = true
	return v
}

func (v *Validator) violate(format string, args ...any) {
	v.violations = append(v.violations, fmt.Sprintf(format, args...))
}

// Violations returns every violation recorded so far.
func (v *Validator) Violations() []string {
	return v.violations
}

// VariableStatus reports a single variable's current lifecycle state, for
// tooling that inspects the validator after ingestion.
func (v *Validator) VariableStatus(id uint64) string {
	return v.status(id).String()
}

// Summary returns every variable ID the validator has touched, sorted
// ascending, paired with its final lifecycle state — a deterministic
// rendering regardless of map iteration order, for "explain"-style
// tooling and tests.
func (v *Validator) Summary() []VariableSummary {
	ids := maps.Keys(v.statuses)
	slices.Sort(ids)
	out := make([]VariableSummary, len(ids))
	for i, id := range ids {
		out[i] = VariableSummary{Id: id, Status: v.statuses[id].String()}
	}
	return out
}

// VariableSummary is one entry of a Validator's Summary.
type VariableSummary struct {
	Id     uint64
	Status string
}

// IngestHeader applies R1 (at most one header) and R3/R4 to the header's
// instance variables, and records the field modulus and free_variable_id
// bound for later rules.
func (v *Validator) IngestHeader(h zki.Header) {
	if v.gotHeader {
		v.violate("Multiple headers.")
	}
	v.gotHeader = true

	if h.FieldMaximum != nil {
		v.fieldMaximum = zki.FieldElementToBig(h.FieldMaximum)
	} else {
		v.violate("No field_maximum provided.")
	}

	if h.FreeVariableId > 0 {
		v.freeVariableId = h.FreeVariableId
		v.haveBound = true
	}

	vars, err := h.InstanceVariables.All()
	if err != nil {
		v.violate("Malformed instance variables block: %v", err)
		return
	}
	v.ingestInstanceVars(vars)
}

func (v *Validator) ingestInstanceVars(vars []zki.Variable) {
	for _, vr := range vars {
		v.ensureValueInField(vr.Id, vr.Value)
		if v.status(vr.Id) != undeclared {
			v.violate("var_%d redefined in instance values", vr.Id)
		}
		v.setStatus(vr.Id, instanceSet)
	}
}

// IngestWitness applies R8 (verifier must not see witness) and R3/R4 to the
// witness's assigned variables.
func (v *Validator) IngestWitness(w zki.Witness) {
	v.ensureHeader()
	if !v.asProver {
		v.violate("As verifier, got an unexpected Witness message.")
	}

	vars, err := w.AssignedVariables.All()
	if err != nil {
		v.violate("Malformed witness variables block: %v", err)
		return
	}
	v.IngestWitnessVariables(vars)
}

// IngestWitnessVariables applies R3/R4 directly to a flattened list of
// witness assignments, for callers (such as a Reader's IterWitness) that
// have already merged multiple Witness records.
func (v *Validator) IngestWitnessVariables(vars []zki.Variable) {
	for _, vr := range vars {
		v.ensureValueInField(vr.Id, vr.Value)
		if v.status(vr.Id) != undeclared {
			v.violate("var_%d redefined in witness values", vr.Id)
		}
		v.setStatus(vr.Id, witnessSet)
	}
}

// IngestConstraintSystem applies R5 and R7 to every variable ID referenced
// by cs's constraints.
func (v *Validator) IngestConstraintSystem(cs zki.ConstraintSystem) {
	v.ensureHeader()
	for _, c := range cs.Constraints {
		v.useLinearCombination(c.A)
		v.useLinearCombination(c.B)
		v.useLinearCombination(c.C)
	}
}

func (v *Validator) useLinearCombination(lc zki.Variables) {
	for _, id := range lc.Ids {
		v.useVariable(id)
	}
}

// useVariable marks id as used, per the declared→used edges of the state
// machine; it is the only place a variable progresses out of *Set or
// *Declared, since the wire format has no separate "declare" message.
func (v *Validator) useVariable(id uint64) {
	switch v.status(id) {
	case undeclared:
		if v.asProver {
			v.violate("As prover, the witness var_%d was not assigned a value.", id)
		} else {
			v.violate("Use of undeclared var_%d", id)
		}
	case instanceSet, witnessSet, instanceDeclared, witnessDeclared, computedDeclared, variableUsed:
		// ok: any prior declaration or assignment satisfies use.
	}
	v.setStatus(id, variableUsed)
}

func (v *Validator) status(id uint64) status {
	return v.statuses[id]
}

// setStatus records id's new lifecycle state. Every status transition
// passes through here, so this is also where the free_variable_id bound
// (R5) is enforced, on first declaration and not only on eventual use.
func (v *Validator) setStatus(id uint64, s status) {
	v.ensureIdBound(id)
	v.statuses[id] = s
}

func (v *Validator) ensureIdBound(id uint64) {
	if v.haveBound && id >= v.freeVariableId {
		v.violate("Using variable ID %d beyond what was claimed in the header free_variable_id (should be less than %d)", id, v.freeVariableId)
	}
}

func (v *Validator) ensureValueInField(id uint64, value []byte) {
	if len(value) == 0 {
		v.violate("Empty value for var_%d.", id)
		return
	}
	if v.fieldMaximum == nil {
		return
	}
	n := zki.FieldElementToBig(value)
	if n.Cmp(v.fieldMaximum) > 0 {
		v.violate("The value for var_%d cannot be represented in the field specified in the header (%s > %s).", id, n.String(), v.fieldMaximum.String())
	}
}

func (v *Validator) ensureHeader() {
	if !v.gotHeader {
		v.violate("A header must be provided before other messages.")
	}
}
