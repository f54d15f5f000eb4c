package reader

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

func pushedReader(t *testing.T) *Reader {
	t.Helper()
	r := New()
	for _, enc := range []func() ([]byte, error){
		exampleHeader().Encode,
		exampleConstraints().Encode,
		exampleWitness().Encode,
	} {
		buf, err := enc()
		require.NoError(t, err)
		require.NoError(t, r.Push(buf))
	}
	return r
}

func TestReader_Headers(t *testing.T) {
	r := pushedReader(t)
	headers := r.Headers()
	require.Len(t, headers, 1)
	require.Equal(t, exampleHeader(), headers[0])
}

func TestReader_IterConstraints(t *testing.T) {
	r := pushedReader(t)
	require.Equal(t, exampleConstraints().Constraints, r.IterConstraints())
}

func TestReader_IterWitness(t *testing.T) {
	r := pushedReader(t)
	vars, err := r.IterWitness()
	require.NoError(t, err)
	require.Equal(t, []zki.Variable{{Id: 4, Value: []byte{9}}, {Id: 5, Value: []byte{16}}}, vars)
}

func TestReader_InstanceVariables(t *testing.T) {
	r := pushedReader(t)
	require.Equal(t, exampleHeader().InstanceVariables, r.InstanceVariables())
}

func TestReader_PrivateVariables(t *testing.T) {
	r := pushedReader(t)
	priv, err := r.PrivateVariables()
	require.NoError(t, err)
	require.Equal(t, []zki.Variable{
		{Id: 4, Value: []byte{9}},
		{Id: 5, Value: []byte{16}},
	}, priv)
}

func TestReader_PushAll(t *testing.T) {
	hEnc, err := exampleHeader().Encode()
	require.NoError(t, err)
	wEnc, err := exampleWitness().Encode()
	require.NoError(t, err)

	r := New()
	require.NoError(t, r.PushAll(append(hEnc, wEnc...)))
	require.Len(t, r.Headers(), 1)
	vars, err := r.IterWitness()
	require.NoError(t, err)
	require.Len(t, vars, 2)
}

func TestReader_NoHeader_EmptyResults(t *testing.T) {
	r := New()
	require.Equal(t, zki.Variables{}, r.InstanceVariables())
	priv, err := r.PrivateVariables()
	require.NoError(t, err)
	require.Nil(t, priv)
}
