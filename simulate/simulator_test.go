package simulate

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

// exampleConstraints encodes x*x=xx, y*y=yy, 1*(xx+yy)=z for x=3,y=4,z=25.
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

func TestSimulator_SatisfiedStatement(t *testing.T) {
	s := New()
	s.IngestHeader(exampleHeader())
	s.IngestWitness(exampleWitness())
	s.IngestConstraintSystem(exampleConstraints())
	require.Empty(t, s.Violations())
}

func TestSimulator_UnsatisfiedConstraint(t *testing.T) {
	s := New()
	s.IngestHeader(exampleHeader())
	// Wrong witness: xx should be 9, claim 8 instead.
	s.IngestWitness(zki.Witness{AssignedVariables: zki.NewVariables([]uint64{4, 5}, []byte{8, 16})})
	s.IngestConstraintSystem(exampleConstraints())
	require.NotEmpty(t, s.Violations())
}

func TestSimulator_MissingVariableValue(t *testing.T) {
	s := New()
	s.IngestHeader(exampleHeader())
	// No witness ingested at all: vars 4 and 5 have no value.
	s.IngestConstraintSystem(exampleConstraints())
	require.NotEmpty(t, s.Violations())
}

func TestSimulator_NoHeader(t *testing.T) {
	s := New()
	s.IngestConstraintSystem(exampleConstraints())
	require.NotEmpty(t, s.Violations())
}

func TestSimulator_ConstantOneWire(t *testing.T) {
	s := New()
	s.IngestHeader(exampleHeader())
	got := s.evalLinearCombination(0, zki.NewVariables([]uint64{0}, []byte{1}))
	require.Equal(t, int64(1), got.Int64())
}
