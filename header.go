package zki

import (
	"bytes"
	"io"
)

// Header carries the public description of a statement: the instance
// (public input) variables, the strict upper bound on allocated variable
// IDs, the implied field, and free-form configuration.
type Header struct {
	InstanceVariables Variables
	FreeVariableId    uint64
	FieldMaximum      []byte // nil if unset
	Configuration     []KeyValue
}

// SimpleInputs returns a header declaring IDs 1..=n as instance variables
// with free_variable_id = n+1.
func SimpleInputs(n uint64) Header {
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = uint64(i) + 1
	}
	return Header{
		InstanceVariables: Variables{Ids: ids},
		FreeVariableId:    n + 1,
	}
}

// SimpleOutputs returns a header whose instance ("connection") variables
// are the output IDs of a sub-circuit with i inputs, o outputs, and l
// locals: inputs occupy [1, i], outputs occupy (i, i+o], locals occupy
// (i+o, i+o+l].
func SimpleOutputs(i, o, l uint64) Header {
	firstOutput := i + 1
	firstLocal := firstOutput + o
	ids := make([]uint64, o)
	for idx := range ids {
		ids[idx] = firstOutput + uint64(idx)
	}
	return Header{
		InstanceVariables: Variables{Ids: ids},
		FreeVariableId:    firstLocal + l,
	}
}

// Clone returns a Header whose slices are independent of any decode
// buffer, safe to retain past the lifetime of the bytes it was decoded
// from.
func (h Header) Clone() Header {
	out := Header{
		InstanceVariables: h.InstanceVariables.Clone(),
		FreeVariableId:    h.FreeVariableId,
		FieldMaximum:      cloneBytes(h.FieldMaximum),
	}
	if h.Configuration != nil {
		out.Configuration = append([]KeyValue(nil), h.Configuration...)
	}
	return out
}

func (h Header) encodeBody(buf *bytes.Buffer) error {
	if err := h.InstanceVariables.encode(buf); err != nil {
		return err
	}
	if err := writeU64(buf, h.FreeVariableId); err != nil {
		return err
	}
	if err := writeBool(buf, h.FieldMaximum != nil); err != nil {
		return err
	}
	if h.FieldMaximum != nil {
		if err := writeBytes(buf, h.FieldMaximum); err != nil {
			return err
		}
	}
	hasConfig := h.Configuration != nil
	if err := writeBool(buf, hasConfig); err != nil {
		return err
	}
	if hasConfig {
		if err := encodeKeyValues(buf, h.Configuration); err != nil {
			return err
		}
	}
	return nil
}

func writeBool(w io.Writer, b bool) error {
	v := byte(0)
	if b {
		v = 1
	}
	_, err := w.Write([]byte{v})
	return err
}

// decodeHeaderRaw decodes a Header whose slices may alias the cursor's
// underlying buffer (the "view" half of the view/owned split).
func decodeHeaderRaw(c *cursor) (Header, error) {
	vars, err := decodeVariables(c)
	if err != nil {
		return Header{}, err
	}
	free, err := c.readU64()
	if err != nil {
		return Header{}, err
	}
	hasMax, err := c.readBool()
	if err != nil {
		return Header{}, err
	}
	var max []byte
	if hasMax {
		max, err = c.readBytes()
		if err != nil {
			return Header{}, err
		}
	}
	hasConfig, err := c.readBool()
	if err != nil {
		return Header{}, err
	}
	var config []KeyValue
	if hasConfig {
		config, err = decodeKeyValues(c)
		if err != nil {
			return Header{}, err
		}
	}
	return Header{
		InstanceVariables: vars,
		FreeVariableId:    free,
		FieldMaximum:      max,
		Configuration:     config,
	}, nil
}

// DecodeHeader parses a tagged Header record body (as produced by
// messageTag) into an owned Header, independent of body's backing array.
func DecodeHeader(body []byte) (Header, error) {
	h, err := decodeHeaderRaw(newCursor(body))
	if err != nil {
		return Header{}, err
	}
	return h.Clone(), nil
}

// Encode serializes h as a single size-prefixed Header record.
func (h Header) Encode() ([]byte, error) {
	var body bytes.Buffer
	if err := h.encodeBody(&body); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := encodeRecord(&out, MessageHeader, body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteInto writes h as a single size-prefixed record to w.
func (h Header) WriteInto(w io.Writer) error {
	buf, err := h.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// HeaderView is a Header decoded without copying: its byte-string fields
// may alias the buffer it was parsed from and must not outlive it. Call
// Owned to obtain an independent copy.
type HeaderView struct{ Header }

// NewHeaderView parses a tagged Header record body without copying.
func NewHeaderView(body []byte) (HeaderView, error) {
	h, err := decodeHeaderRaw(newCursor(body))
	return HeaderView{h}, err
}

// Owned returns an independent copy safe to retain past the input buffer.
func (v HeaderView) Owned() Header { return v.Header.Clone() }
