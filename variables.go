package zki

import (
	"fmt"
	"io"
)

// Variable is a single (id, value) pair decoded out of a Variables block.
// Value may be nil, meaning no value was provided in this context.
type Variable struct {
	Id    uint64
	Value []byte
}

// Variables is a parallel-sequence block: a list of IDs alongside an
// optional, evenly-strided byte blob of values.
//
// Present distinguishes "values absent" (each variable valueless) from
// "values present but happens to be zero bytes", which round-trips
// differently on the wire even though both denote valueless variables for
// every consumer in this module (I5's stride discipline is vacuous in the
// zero-length case).
type Variables struct {
	Ids     []uint64
	Values  []byte
	Present bool
}

// NewVariables builds a Variables block. Pass a nil values slice for
// "absent" and a non-nil (possibly zero-length) slice otherwise.
func NewVariables(ids []uint64, values []byte) Variables {
	return Variables{Ids: ids, Values: values, Present: values != nil}
}

// Len returns the number of variables in the block.
func (v Variables) Len() int { return len(v.Ids) }

// Stride returns the per-variable value width, or an error if Values is
// non-empty but not evenly divisible by the ID count (I5).
func (v Variables) Stride() (int, error) {
	if !v.Present || len(v.Values) == 0 {
		return 0, nil
	}
	if len(v.Ids) == 0 {
		return 0, fmt.Errorf("zki: variables block has values but no ids")
	}
	if len(v.Values)%len(v.Ids) != 0 {
		return 0, fmt.Errorf("zki: variables block values length %d is not a multiple of id count %d", len(v.Values), len(v.Ids))
	}
	return len(v.Values) / len(v.Ids), nil
}

// At returns the i'th variable, applying the block's stride. It panics on
// an out-of-range index, matching slice semantics; callers iterate with
// All or a bounded loop over Len.
func (v Variables) At(i int) Variable {
	stride, err := v.Stride()
	if err != nil || stride == 0 {
		return Variable{Id: v.Ids[i]}
	}
	start := i * stride
	return Variable{Id: v.Ids[i], Value: v.Values[start : start+stride]}
}

// All decodes every variable in the block.
func (v Variables) All() ([]Variable, error) {
	if _, err := v.Stride(); err != nil {
		return nil, err
	}
	out := make([]Variable, v.Len())
	for i := range out {
		out[i] = v.At(i)
	}
	return out, nil
}

// ValueSize returns the block's stride, ignoring a malformed block (used by
// callers that only want to compare strides across insertions).
func (v Variables) ValueSize() int {
	stride, _ := v.Stride()
	return stride
}

func (v Variables) encode(w io.Writer) error {
	if err := writeUvarint(w, uint64(len(v.Ids))); err != nil {
		return err
	}
	for _, id := range v.Ids {
		if err := writeU64(w, id); err != nil {
			return err
		}
	}
	present := byte(0)
	if v.Present {
		present = 1
	}
	if _, err := w.Write([]byte{present}); err != nil {
		return err
	}
	if v.Present {
		if err := writeUvarint(w, uint64(len(v.Values))); err != nil {
			return err
		}
		if _, err := w.Write(v.Values); err != nil {
			return err
		}
	}
	return nil
}

// decodeVariables decodes a Variables block from c. The returned Values
// slice aliases c's underlying buffer (see cursor); callers that need an
// owned copy clone it explicitly.
func decodeVariables(c *cursor) (Variables, error) {
	n, err := c.readUvarint()
	if err != nil {
		return Variables{}, err
	}
	ids := make([]uint64, n)
	for i := range ids {
		id, err := c.readU64()
		if err != nil {
			return Variables{}, err
		}
		ids[i] = id
	}
	present, err := c.readBool()
	if err != nil {
		return Variables{}, err
	}
	v := Variables{Ids: ids, Present: present}
	if present {
		values, err := c.readBytes()
		if err != nil {
			return Variables{}, err
		}
		v.Values = values
	}
	return v, nil
}

// Clone returns a Variables block whose Values slice is an independent
// copy, safe to retain past the lifetime of a decode buffer.
func (v Variables) Clone() Variables {
	return Variables{Ids: append([]uint64(nil), v.Ids...), Values: cloneBytes(v.Values), Present: v.Present}
}
