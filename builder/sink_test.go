package builder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zkinterface-go/zki"
)

func TestWorkspaceSink_WritesExpectedFiles(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewWorkspaceSink(dir)
	require.NoError(t, err)

	h := zki.SimpleInputs(2)
	require.NoError(t, sink.PushHeader(h))

	cs := zki.ConstraintSystem{Constraints: []zki.BilinearConstraint{
		{A: zki.NewVariables([]uint64{1}, []byte{1}), B: zki.NewVariables([]uint64{1}, []byte{1}), C: zki.NewVariables([]uint64{2}, []byte{1})},
	}}
	require.NoError(t, sink.PushConstraints(cs))

	w := zki.Witness{AssignedVariables: zki.NewVariables([]uint64{2}, []byte{9})}
	require.NoError(t, sink.PushWitness(w))
	require.NoError(t, sink.Close())

	for _, name := range []string{"header.zkif", "constraints_0.zkif", "witness.zkif"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoErrorf(t, err, "expected %s to exist", name)
	}
}

func TestWorkspaceSink_NewConstraintsFile_Segments(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewWorkspaceSink(dir)
	require.NoError(t, err)

	cs := zki.ConstraintSystem{Constraints: []zki.BilinearConstraint{
		{A: zki.NewVariables([]uint64{1}, []byte{1}), B: zki.NewVariables([]uint64{1}, []byte{1}), C: zki.NewVariables([]uint64{2}, []byte{1})},
	}}
	require.NoError(t, sink.PushConstraints(cs))
	require.NoError(t, sink.NewConstraintsFile())
	require.NoError(t, sink.PushConstraints(cs))
	require.NoError(t, sink.Close())

	_, err = os.Stat(filepath.Join(dir, "constraints_0.zkif"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "constraints_1.zkif"))
	require.NoError(t, err)
}
