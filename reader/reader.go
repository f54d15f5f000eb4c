// Package reader implements the eager, in-memory Reader and the streaming,
// file-backed Workspace: the two ingestion front-ends that turn wire
// records into owned zki values for validators, simulators, and statement
// inspection tools.
package reader

import (
	"fmt"

	"github.com/zkinterface-go/zki"
)

// Reader is an eager in-memory accumulator: it collects every decoded
// record in insertion order and exposes iterators over it.
type Reader struct {
	messages []zki.Message
}

// New returns an empty Reader.
func New() *Reader {
	return &Reader{}
}

// Push decodes buf, a single size-prefixed record as produced by an Encode
// or WriteInto call, and appends it.
func (r *Reader) Push(buf []byte) error {
	raw, err := zki.SplitMessages(buf)
	if err != nil {
		return fmt.Errorf("reader: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("reader: Push expects exactly one record, got %d", len(raw))
	}
	msg, err := zki.ParseMessage(raw[0])
	if err != nil {
		return fmt.Errorf("reader: %w", err)
	}
	r.messages = append(r.messages, msg)
	return nil
}

// PushAll decodes every record in buf (any number of concatenated
// size-prefixed records) and appends them in stream order.
func (r *Reader) PushAll(buf []byte) error {
	msgs, err := zki.ParseMessages(buf)
	if err != nil {
		return fmt.Errorf("reader: %w", err)
	}
	r.messages = append(r.messages, msgs...)
	return nil
}

// Headers returns every Header record seen, in insertion order.
func (r *Reader) Headers() []zki.Header {
	var out []zki.Header
	for _, m := range r.messages {
		if m.Type == zki.MessageHeader {
			out = append(out, m.Header)
		}
	}
	return out
}

// IterConstraints flattens constraints across every ConstraintSystem
// record, in insertion order.
func (r *Reader) IterConstraints() []zki.BilinearConstraint {
	var out []zki.BilinearConstraint
	for _, m := range r.messages {
		if m.Type == zki.MessageConstraints {
			out = append(out, m.Constraints.Constraints...)
		}
	}
	return out
}

// IterWitness flattens assigned variables across every Witness record, in
// insertion order.
func (r *Reader) IterWitness() ([]zki.Variable, error) {
	var out []zki.Variable
	for _, m := range r.messages {
		if m.Type != zki.MessageWitness {
			continue
		}
		vars, err := m.Witness.AssignedVariables.All()
		if err != nil {
			return nil, fmt.Errorf("reader: witness block: %w", err)
		}
		out = append(out, vars...)
	}
	return out, nil
}

// IterCommands returns every Command record seen, in insertion order.
func (r *Reader) IterCommands() []zki.Command {
	var out []zki.Command
	for _, m := range r.messages {
		if m.Type == zki.MessageCommand {
			out = append(out, m.Command)
		}
	}
	return out
}

// InstanceVariables returns the instance block from the last header seen,
// or the zero Variables if no header has been pushed.
func (r *Reader) InstanceVariables() zki.Variables {
	headers := r.Headers()
	if len(headers) == 0 {
		return zki.Variables{}
	}
	return headers[len(headers)-1].InstanceVariables
}

// PrivateVariables enumerates [1, free_variable_id) minus the instance IDs
// of the last header, cross-joined with any values seen across witness
// records (a variable with no witness value yields a nil Value).
func (r *Reader) PrivateVariables() ([]zki.Variable, error) {
	headers := r.Headers()
	if len(headers) == 0 {
		return nil, nil
	}
	h := headers[len(headers)-1]

	instance := make(map[uint64]bool, h.InstanceVariables.Len())
	for _, id := range h.InstanceVariables.Ids {
		instance[id] = true
	}

	values := make(map[uint64][]byte)
	witness, err := r.IterWitness()
	if err != nil {
		return nil, err
	}
	for _, v := range witness {
		values[v.Id] = v.Value
	}

	var out []zki.Variable
	for id := uint64(1); id < h.FreeVariableId; id++ {
		if instance[id] {
			continue
		}
		out = append(out, zki.Variable{Id: id, Value: values[id]})
	}
	return out, nil
}
