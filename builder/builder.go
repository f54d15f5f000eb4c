// Package builder implements the statement builder and its sinks (C4): the
// allocation bookkeeping and emission path used to construct a statement
// incrementally, plus the gadget-callback protocol for cooperating
// sub-builders.
package builder

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki"
)

// Sink receives the records a StatementBuilder produces.
type Sink interface {
	PushHeader(zki.Header) error
	PushConstraints(zki.ConstraintSystem) error
	PushWitness(zki.Witness) error
}

// StatementBuilder owns a running free_variable_id and a growing instance
// block, and forwards finished records to a Sink.
type StatementBuilder struct {
	sink   Sink
	header zki.Header

	instanceIds    []uint64
	instanceValues []byte
	instanceStride int
}

// New returns a StatementBuilder with free_variable_id initialized to 1,
// emitting through sink.
func New(sink Sink) *StatementBuilder {
	return &StatementBuilder{
		sink:   sink,
		header: zki.Header{FreeVariableId: 1},
	}
}

// AllocateVar returns the current free ID and increments it.
func (b *StatementBuilder) AllocateVar() uint64 {
	id := b.header.FreeVariableId
	b.header.FreeVariableId++
	return id
}

// AllocateVars returns a contiguous batch of n fresh IDs.
func (b *StatementBuilder) AllocateVars(n uint64) []uint64 {
	first := b.header.FreeVariableId
	b.header.FreeVariableId += n
	ids := make([]uint64, n)
	for i := range ids {
		ids[i] = first + uint64(i)
	}
	return ids
}

// AllocateInstanceVar appends value to the header's instance block and
// returns its freshly allocated ID. All instance values within one header
// must share a stride; the first insertion fixes it.
func (b *StatementBuilder) AllocateInstanceVar(value []byte) (uint64, error) {
	if len(b.instanceIds) > 0 && len(value) != b.instanceStride {
		return 0, errors.Errorf("builder: instance value has length %d, expected stride %d", len(value), b.instanceStride)
	}
	id := b.AllocateVar()
	if len(b.instanceIds) == 0 {
		b.instanceStride = len(value)
	}
	b.instanceIds = append(b.instanceIds, id)
	b.instanceValues = append(b.instanceValues, value...)
	return id, nil
}

// FinishHeader emits the accumulated header through the sink.
func (b *StatementBuilder) FinishHeader() error {
	b.header.InstanceVariables = zki.NewVariables(b.instanceIds, b.instanceValues)
	if err := b.sink.PushHeader(b.header); err != nil {
		return errors.Wrap(err, "builder: push header")
	}
	return nil
}

// PushConstraints forwards cs to the sink.
func (b *StatementBuilder) PushConstraints(cs zki.ConstraintSystem) error {
	if err := b.sink.PushConstraints(cs); err != nil {
		return errors.Wrap(err, "builder: push constraints")
	}
	return nil
}

// PushWitness forwards w to the sink.
func (b *StatementBuilder) PushWitness(w zki.Witness) error {
	if err := b.sink.PushWitness(w); err != nil {
		return errors.Wrap(err, "builder: push witness")
	}
	return nil
}

// FreeVariableId reports the builder's current allocation frontier.
func (b *StatementBuilder) FreeVariableId() uint64 { return b.header.FreeVariableId }

// ReceiveConstraints accepts a gadget's constraint output and forwards it
// to the sink along the same path as PushConstraints.
func (b *StatementBuilder) ReceiveConstraints(cs zki.ConstraintSystem) error {
	return b.PushConstraints(cs)
}

// ReceiveWitness accepts a gadget's witness output and forwards it to the
// sink along the same path as PushWitness.
func (b *StatementBuilder) ReceiveWitness(w zki.Witness) error {
	return b.PushWitness(w)
}

// ReceiveResponse validates response against request via
// CheckGadgetResponse, then adopts response.FreeVariableId as the
// builder's new allocation frontier before passing both along to the
// sink, if the sink itself cooperates in the gadget protocol.
func (b *StatementBuilder) ReceiveResponse(request, response zki.Header) error {
	if err := CheckGadgetResponse(request, response); err != nil {
		return err
	}
	b.header.FreeVariableId = response.FreeVariableId
	if gc, ok := b.sink.(GadgetCallback); ok {
		return gc.ReceiveResponse(request, response)
	}
	return nil
}

// MemorySink collects pushed records in memory, for testing or subsequent
// validation without touching the filesystem.
type MemorySink struct {
	Headers     []zki.Header
	Constraints []zki.ConstraintSystem
	Witnesses   []zki.Witness
}

// PushHeader appends header to s.Headers.
func (s *MemorySink) PushHeader(h zki.Header) error {
	s.Headers = append(s.Headers, h)
	return nil
}

// PushConstraints appends cs to s.Constraints.
func (s *MemorySink) PushConstraints(cs zki.ConstraintSystem) error {
	s.Constraints = append(s.Constraints, cs)
	return nil
}

// PushWitness appends w to s.Witnesses.
func (s *MemorySink) PushWitness(w zki.Witness) error {
	s.Witnesses = append(s.Witnesses, w)
	return nil
}

// ReceiveConstraints accepts a gadget's constraint output the same way
// PushConstraints does.
func (s *MemorySink) ReceiveConstraints(cs zki.ConstraintSystem) error {
	return s.PushConstraints(cs)
}

// ReceiveWitness accepts a gadget's witness output the same way
// PushWitness does.
func (s *MemorySink) ReceiveWitness(w zki.Witness) error {
	return s.PushWitness(w)
}

// ReceiveResponse has nothing of its own to validate; the parent
// StatementBuilder already checks the response before forwarding here.
func (s *MemorySink) ReceiveResponse(request, response zki.Header) error {
	return nil
}

// GadgetCallback is the interface a cooperating sub-builder ("gadget")
// drives: it streams constraint and witness records back to the parent,
// then reports a response that must not retreat the parent's
// free_variable_id frontier.
type GadgetCallback interface {
	ReceiveConstraints(zki.ConstraintSystem) error
	ReceiveWitness(zki.Witness) error
	ReceiveResponse(request, response zki.Header) error
}

// errGadgetRegression is returned by the default ReceiveResponse check when
// a gadget's response would shrink the free-variable frontier it was
// handed.
var errGadgetRegression = fmt.Errorf("builder: gadget response free_variable_id is below the request's")

// CheckGadgetResponse enforces response.FreeVariableId >= request.FreeVariableId,
// the invariant every GadgetCallback.ReceiveResponse implementation must
// apply before adopting the response's value.
func CheckGadgetResponse(request, response zki.Header) error {
	if response.FreeVariableId < request.FreeVariableId {
		return errGadgetRegression
	}
	return nil
}
