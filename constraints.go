package zki

import (
	"bytes"
	"io"
)

// BilinearConstraint is a single R1CS triple: A, B, and C are linear
// combinations (Variables blocks whose values are coefficients, not
// assignments), satisfied when A·B = C in the statement's field.
type BilinearConstraint struct {
	A, B, C Variables
}

// Clone returns a BilinearConstraint independent of any decode buffer.
func (bc BilinearConstraint) Clone() BilinearConstraint {
	return BilinearConstraint{A: bc.A.Clone(), B: bc.B.Clone(), C: bc.C.Clone()}
}

func (bc BilinearConstraint) encode(buf *bytes.Buffer) error {
	if err := bc.A.encode(buf); err != nil {
		return err
	}
	if err := bc.B.encode(buf); err != nil {
		return err
	}
	return bc.C.encode(buf)
}

func decodeBilinearConstraint(c *cursor) (BilinearConstraint, error) {
	a, err := decodeVariables(c)
	if err != nil {
		return BilinearConstraint{}, err
	}
	b, err := decodeVariables(c)
	if err != nil {
		return BilinearConstraint{}, err
	}
	cc, err := decodeVariables(c)
	if err != nil {
		return BilinearConstraint{}, err
	}
	return BilinearConstraint{A: a, B: b, C: cc}, nil
}

// ConstraintSystem is a list of bilinear constraints. A single statement
// may be split across any number of ConstraintSystem records.
type ConstraintSystem struct {
	Constraints []BilinearConstraint
}

// Clone returns a ConstraintSystem independent of any decode buffer.
func (cs ConstraintSystem) Clone() ConstraintSystem {
	out := make([]BilinearConstraint, len(cs.Constraints))
	for i, c := range cs.Constraints {
		out[i] = c.Clone()
	}
	return ConstraintSystem{Constraints: out}
}

func (cs ConstraintSystem) encodeBody(buf *bytes.Buffer) error {
	if err := writeUvarint(buf, uint64(len(cs.Constraints))); err != nil {
		return err
	}
	for _, c := range cs.Constraints {
		if err := c.encode(buf); err != nil {
			return err
		}
	}
	return nil
}

func decodeConstraintSystemRaw(c *cursor) (ConstraintSystem, error) {
	n, err := c.readUvarint()
	if err != nil {
		return ConstraintSystem{}, err
	}
	out := make([]BilinearConstraint, n)
	for i := range out {
		out[i], err = decodeBilinearConstraint(c)
		if err != nil {
			return ConstraintSystem{}, err
		}
	}
	return ConstraintSystem{Constraints: out}, nil
}

// DecodeConstraintSystem parses a tagged ConstraintSystem record body into
// an owned ConstraintSystem, independent of body's backing array.
func DecodeConstraintSystem(body []byte) (ConstraintSystem, error) {
	cs, err := decodeConstraintSystemRaw(newCursor(body))
	if err != nil {
		return ConstraintSystem{}, err
	}
	return cs.Clone(), nil
}

// Encode serializes cs as a single size-prefixed ConstraintSystem record.
func (cs ConstraintSystem) Encode() ([]byte, error) {
	var body bytes.Buffer
	if err := cs.encodeBody(&body); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := encodeRecord(&out, MessageConstraints, body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteInto writes cs as a single size-prefixed record to w.
func (cs ConstraintSystem) WriteInto(w io.Writer) error {
	buf, err := cs.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// ConstraintSystemView is a ConstraintSystem decoded without copying.
type ConstraintSystemView struct{ ConstraintSystem }

// NewConstraintSystemView parses a tagged ConstraintSystem record body
// without copying.
func NewConstraintSystemView(body []byte) (ConstraintSystemView, error) {
	cs, err := decodeConstraintSystemRaw(newCursor(body))
	return ConstraintSystemView{cs}, err
}

// Owned returns an independent copy safe to retain past the input buffer.
func (v ConstraintSystemView) Owned() ConstraintSystem { return v.ConstraintSystem.Clone() }
