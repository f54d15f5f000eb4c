package zki

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVariables_StrideMismatch(t *testing.T) {
	v := Variables{Ids: []uint64{1, 2, 3}, Values: []byte{1, 2}, Present: true}
	_, err := v.Stride()
	require.Error(t, err)
	_, err = v.All()
	require.Error(t, err)
}

func TestVariables_AbsentVsPresentEmpty(t *testing.T) {
	absent := NewVariables([]uint64{1}, nil)
	require.False(t, absent.Present)

	present := NewVariables([]uint64{1}, []byte{})
	require.True(t, present.Present)

	// Both decode identically for every consumer: a nil Value.
	av, err := absent.All()
	require.NoError(t, err)
	require.Nil(t, av[0].Value)

	pv, err := present.All()
	require.NoError(t, err)
	require.Nil(t, pv[0].Value)
}

func TestVariables_At(t *testing.T) {
	v := NewVariables([]uint64{10, 20}, []byte{1, 2, 3, 4})
	require.Equal(t, Variable{Id: 10, Value: []byte{1, 2}}, v.At(0))
	require.Equal(t, Variable{Id: 20, Value: []byte{3, 4}}, v.At(1))
}

func TestVariables_Clone_Independent(t *testing.T) {
	v := NewVariables([]uint64{1}, []byte{9})
	c := v.Clone()
	v.Values[0] = 0xFF
	require.Equal(t, byte(9), c.Values[0])
}
