package zki

import (
	"bytes"
	"io"
)

// Witness carries the prover's assignment: one value per private
// (non-instance) variable the statement allocated.
type Witness struct {
	AssignedVariables Variables
}

// Clone returns a Witness independent of any decode buffer.
func (w Witness) Clone() Witness {
	return Witness{AssignedVariables: w.AssignedVariables.Clone()}
}

func (w Witness) encodeBody(buf *bytes.Buffer) error {
	return w.AssignedVariables.encode(buf)
}

func decodeWitnessRaw(c *cursor) (Witness, error) {
	vars, err := decodeVariables(c)
	if err != nil {
		return Witness{}, err
	}
	return Witness{AssignedVariables: vars}, nil
}

// DecodeWitness parses a tagged Witness record body into an owned Witness,
// independent of body's backing array.
func DecodeWitness(body []byte) (Witness, error) {
	w, err := decodeWitnessRaw(newCursor(body))
	if err != nil {
		return Witness{}, err
	}
	return w.Clone(), nil
}

// Encode serializes w as a single size-prefixed Witness record.
func (w Witness) Encode() ([]byte, error) {
	var body bytes.Buffer
	if err := w.encodeBody(&body); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := encodeRecord(&out, MessageWitness, body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteInto writes w as a single size-prefixed record to dst.
func (w Witness) WriteInto(dst io.Writer) error {
	buf, err := w.Encode()
	if err != nil {
		return err
	}
	_, err = dst.Write(buf)
	return err
}

// WitnessView is a Witness decoded without copying.
type WitnessView struct{ Witness }

// NewWitnessView parses a tagged Witness record body without copying.
func NewWitnessView(body []byte) (WitnessView, error) {
	w, err := decodeWitnessRaw(newCursor(body))
	return WitnessView{w}, err
}

// Owned returns an independent copy safe to retain past the input buffer.
func (v WitnessView) Owned() Witness { return v.Witness.Clone() }
