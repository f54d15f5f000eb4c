package zki

import (
	"bytes"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// diffOrFail renders a unified diff between want and got on mismatch
// instead of a bare reflect.DeepEqual failure message.
func diffOrFail(t *testing.T, want, got []byte) {
	t.Helper()
	if bytes.Equal(want, got) {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(want)),
		B:        difflib.SplitLines(string(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	require.NoError(t, err)
	t.Fatalf("byte mismatch:\n%s", diff)
}

func TestHeaderRoundTrip(t *testing.T) {
	h := Header{
		InstanceVariables: NewVariables([]uint64{1, 2, 3}, []byte{3, 4, 25}),
		FreeVariableId:    6,
		FieldMaximum:      []byte{100},
		Configuration:     []KeyValue{TextKeyValue("name", "example")},
	}

	encoded, err := h.Encode()
	require.NoError(t, err)

	msg, err := ParseMessage(stripPrefix(t, encoded))
	require.NoError(t, err)
	require.Equal(t, MessageHeader, msg.Type)
	require.Equal(t, h, msg.Header)

	reencoded, err := msg.Header.Encode()
	require.NoError(t, err)
	diffOrFail(t, encoded, reencoded)
}

func TestHeaderRoundTrip_NoFieldMaximumNoConfig(t *testing.T) {
	h := SimpleInputs(3)
	encoded, err := h.Encode()
	require.NoError(t, err)

	msg, err := ParseMessage(stripPrefix(t, encoded))
	require.NoError(t, err)
	require.Equal(t, h, msg.Header)
}

func TestConstraintSystemRoundTrip(t *testing.T) {
	cs := ConstraintSystem{Constraints: []BilinearConstraint{
		{A: NewVariables([]uint64{1}, []byte{1}), B: NewVariables([]uint64{1}, []byte{1}), C: NewVariables([]uint64{4}, []byte{1})},
		{A: NewVariables([]uint64{2}, []byte{1}), B: NewVariables([]uint64{2}, []byte{1}), C: NewVariables([]uint64{5}, []byte{1})},
		{A: NewVariables([]uint64{0}, []byte{1}), B: NewVariables([]uint64{4, 5}, []byte{1, 1}), C: NewVariables([]uint64{3}, []byte{25})},
	}}

	encoded, err := cs.Encode()
	require.NoError(t, err)

	msg, err := ParseMessage(stripPrefix(t, encoded))
	require.NoError(t, err)
	require.Equal(t, MessageConstraints, msg.Type)
	require.Equal(t, cs, msg.Constraints)
}

func TestWitnessRoundTrip(t *testing.T) {
	w := Witness{AssignedVariables: NewVariables([]uint64{4, 5}, []byte{9, 16})}
	encoded, err := w.Encode()
	require.NoError(t, err)

	msg, err := ParseMessage(stripPrefix(t, encoded))
	require.NoError(t, err)
	require.Equal(t, MessageWitness, msg.Type)
	require.Equal(t, w, msg.Witness)
}

func TestCommandRoundTrip(t *testing.T) {
	cmd := Command{
		ConstraintsGeneration: true,
		WitnessGeneration:     false,
		Parameters: []KeyValue{
			TextKeyValue("config", `{"width": 32}`),
			NumberKeyValue("count", 7),
			DataKeyValue("blob", []byte(`{"height": 64}`)),
		},
	}
	encoded, err := cmd.Encode()
	require.NoError(t, err)

	msg, err := ParseMessage(stripPrefix(t, encoded))
	require.NoError(t, err)
	require.Equal(t, MessageCommand, msg.Type)
	require.Equal(t, cmd, msg.Command)

	width, ok := msg.Command.ParamJSON("config", "width")
	require.True(t, ok)
	require.Equal(t, "32", width)

	height, ok := msg.Command.ParamJSON("blob", "height")
	require.True(t, ok, "ParamJSON must read a KeyValueData parameter's raw Data bytes")
	require.Equal(t, "64", height)
}

func TestParseMessages_Concatenated(t *testing.T) {
	h := SimpleInputs(2)
	w := Witness{AssignedVariables: NewVariables([]uint64{3}, []byte{9})}

	hEnc, err := h.Encode()
	require.NoError(t, err)
	wEnc, err := w.Encode()
	require.NoError(t, err)

	var buf bytes.Buffer
	buf.Write(hEnc)
	buf.Write(wEnc)

	msgs, err := ParseMessages(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, MessageHeader, msgs[0].Type)
	require.Equal(t, MessageWitness, msgs[1].Type)
	require.Equal(t, h, msgs[0].Header)
	require.Equal(t, w, msgs[1].Witness)
}

func TestView_DoesNotCopy(t *testing.T) {
	h := SimpleInputs(1)
	h.FieldMaximum = []byte{100}
	encoded, err := h.Encode()
	require.NoError(t, err)
	_, body, err := messageTag(stripPrefix(t, encoded))
	require.NoError(t, err)

	view, err := NewHeaderView(body)
	require.NoError(t, err)
	require.Equal(t, h.InstanceVariables.Ids, view.InstanceVariables.Ids)

	owned := view.Owned()

	// Mutating the original body must not affect the owned clone, but the
	// view (which aliases body) does observe it.
	for i := range body {
		body[i] = 0xFF
	}
	require.Equal(t, []byte{100}, owned.FieldMaximum)
	require.Equal(t, []byte{0xFF}, view.FieldMaximum)
}

// stripPrefix removes the 4-byte size prefix from a single encoded record,
// returning the magic+tag+body payload ParseMessage expects.
func stripPrefix(t *testing.T, encoded []byte) []byte {
	t.Helper()
	require.GreaterOrEqual(t, len(encoded), 4)
	return encoded[4:]
}
