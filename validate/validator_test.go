package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkinterface-go/zki"
)

func exampleHeader() zki.Header {
	return zki.Header{
		InstanceVariables: zki.NewVariables([]uint64{1, 2, 3}, []byte{3, 4, 25}),
		FreeVariableId:    6,
		FieldMaximum:      []byte{100},
	}
}

func exampleConstraints() zki.ConstraintSystem {
	return zki.ConstraintSystem{Constraints: []zki.BilinearConstraint{
		{A: zki.NewVariables([]uint64{1}, []byte{1}), B: zki.NewVariables([]uint64{1}, []byte{1}), C: zki.NewVariables([]uint64{4}, []byte{1})},
		{A: zki.NewVariables([]uint64{2}, []byte{1}), B: zki.NewVariables([]uint64{2}, []byte{1}), C: zki.NewVariables([]uint64{5}, []byte{1})},
		{A: zki.NewVariables([]uint64{0}, []byte{1}), B: zki.NewVariables([]uint64{4, 5}, []byte{1, 1}), C: zki.NewVariables([]uint64{3}, []byte{1})},
	}}
}

func exampleWitness() zki.Witness {
	return zki.Witness{AssignedVariables: zki.NewVariables([]uint64{4, 5}, []byte{9, 16})}
}

func TestValidator_Verifier_CleanStatement(t *testing.T) {
	v := NewVerifier()
	v.IngestHeader(exampleHeader())
	v.IngestConstraintSystem(exampleConstraints())
	require.Empty(t, v.Violations())
}

func TestValidator_Verifier_RejectsWitness(t *testing.T) {
	v := NewVerifier()
	v.IngestHeader(exampleHeader())
	v.IngestWitness(exampleWitness())
	require.NotEmpty(t, v.Violations())
}

func TestValidator_Prover_RequiresWitnessForUsedVar(t *testing.T) {
	v := NewProver()
	v.IngestHeader(exampleHeader())
	// Constraints reference vars 4 and 5, never assigned: R6 violation.
	v.IngestConstraintSystem(exampleConstraints())
	require.NotEmpty(t, v.Violations())
}

func TestValidator_Prover_CleanStatement(t *testing.T) {
	v := NewProver()
	v.IngestHeader(exampleHeader())
	v.IngestWitness(exampleWitness())
	v.IngestConstraintSystem(exampleConstraints())
	require.Empty(t, v.Violations())
}

func TestValidator_MultipleHeaders(t *testing.T) {
	v := NewVerifier()
	v.IngestHeader(exampleHeader())
	v.IngestHeader(exampleHeader())
	require.NotEmpty(t, v.Violations())
}

func TestValidator_RedefinedInstanceVar(t *testing.T) {
	v := NewVerifier()
	h := exampleHeader()
	v.IngestHeader(h)
	v.ingestInstanceVars([]zki.Variable{{Id: 1, Value: []byte{3}}})
	require.NotEmpty(t, v.Violations())
}

func TestValidator_ValueOutOfField(t *testing.T) {
	v := NewVerifier()
	h := zki.Header{
		InstanceVariables: zki.NewVariables([]uint64{1}, []byte{200}),
		FreeVariableId:    2,
		FieldMaximum:      []byte{100}, // modulus 101
	}
	v.IngestHeader(h)
	require.NotEmpty(t, v.Violations())
}

func TestValidator_DeclareBeyondFreeVariableId(t *testing.T) {
	h := zki.Header{
		InstanceVariables: zki.NewVariables([]uint64{1000}, []byte{1}),
		FreeVariableId:    2,
		FieldMaximum:      []byte{100},
	}
	v := NewVerifier()
	v.IngestHeader(h)
	require.NotEmpty(t, v.Violations(), "declaring ID 1000 under free_variable_id 2 must be flagged even with no constraint ever using it")
}

func TestValidator_UseBeyondFreeVariableId(t *testing.T) {
	v := NewVerifier()
	v.IngestHeader(exampleHeader())
	cs := zki.ConstraintSystem{Constraints: []zki.BilinearConstraint{
		{A: zki.NewVariables([]uint64{1}, []byte{1}), B: zki.NewVariables([]uint64{1}, []byte{1}), C: zki.NewVariables([]uint64{99}, []byte{1})},
	}}
	v.IngestConstraintSystem(cs)
	require.NotEmpty(t, v.Violations())
}

func TestValidator_SummaryIsSortedAndDeterministic(t *testing.T) {
	v := NewVerifier()
	v.IngestHeader(exampleHeader())
	v.IngestConstraintSystem(exampleConstraints())

	summary := v.Summary()
	require.NotEmpty(t, summary)
	for i := 1; i < len(summary); i++ {
		require.Less(t, summary[i-1].Id, summary[i].Id)
	}
	require.Equal(t, "VariableUsed", v.VariableStatus(1))
}

func TestRun_Verifier(t *testing.T) {
	msgs := fakeMessages{
		headers:     []zki.Header{exampleHeader()},
		constraints: exampleConstraints().Constraints,
	}
	require.Empty(t, Run(msgs, false))
}

func TestRun_Prover(t *testing.T) {
	wit, err := exampleWitness().AssignedVariables.All()
	require.NoError(t, err)
	msgs := fakeMessages{
		headers:     []zki.Header{exampleHeader()},
		constraints: exampleConstraints().Constraints,
		witness:     wit,
	}
	require.Empty(t, Run(msgs, true))
}

type fakeMessages struct {
	headers     []zki.Header
	constraints []zki.BilinearConstraint
	witness     []zki.Variable
}

func (f fakeMessages) Headers() []zki.Header                      { return f.headers }
func (f fakeMessages) IterConstraints() []zki.BilinearConstraint  { return f.constraints }
func (f fakeMessages) IterWitness() ([]zki.Variable, error)       { return f.witness, nil }
