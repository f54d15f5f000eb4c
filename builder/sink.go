package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki"
)

// WorkspaceSink writes header.zkif, one or more constraints_N.zkif
// (segmented on request), and a single witness.zkif inside dir.
type WorkspaceSink struct {
	dir string

	constraintsFile *os.File
	witnessFile     *os.File
	csFileCounter   int
}

// NewWorkspaceSink creates dir (and any missing parents) and returns a
// WorkspaceSink that writes into it.
func NewWorkspaceSink(dir string) (*WorkspaceSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "builder: workspace sink")
	}
	return &WorkspaceSink{dir: dir}, nil
}

// PushHeader overwrites header.zkif with h.
func (s *WorkspaceSink) PushHeader(h zki.Header) error {
	f, err := os.Create(filepath.Join(s.dir, "header.zkif"))
	if err != nil {
		return errors.Wrap(err, "builder: header file")
	}
	defer f.Close()
	return h.WriteInto(f)
}

// PushConstraints appends cs to the current constraints file, opening
// constraints_N.zkif (N starting at 0) the first time it is called.
func (s *WorkspaceSink) PushConstraints(cs zki.ConstraintSystem) error {
	if s.constraintsFile == nil {
		name := fmt.Sprintf("constraints_%d.zkif", s.csFileCounter)
		f, err := os.Create(filepath.Join(s.dir, name))
		if err != nil {
			return errors.Wrap(err, "builder: constraints file")
		}
		s.constraintsFile = f
		s.csFileCounter++
	}
	return cs.WriteInto(s.constraintsFile)
}

// NewConstraintsFile closes the current constraints file (if any) so the
// next PushConstraints call opens a fresh constraints_N.zkif, segmenting
// the constraint stream.
func (s *WorkspaceSink) NewConstraintsFile() error {
	if s.constraintsFile == nil {
		return nil
	}
	err := s.constraintsFile.Close()
	s.constraintsFile = nil
	return err
}

// PushWitness appends w to the single witness.zkif, opening it the first
// time it is called.
func (s *WorkspaceSink) PushWitness(w zki.Witness) error {
	if s.witnessFile == nil {
		f, err := os.Create(filepath.Join(s.dir, "witness.zkif"))
		if err != nil {
			return errors.Wrap(err, "builder: witness file")
		}
		s.witnessFile = f
	}
	return w.WriteInto(s.witnessFile)
}

// ReceiveConstraints accepts a gadget's constraint output and writes it
// the same way PushConstraints does.
func (s *WorkspaceSink) ReceiveConstraints(cs zki.ConstraintSystem) error {
	return s.PushConstraints(cs)
}

// ReceiveWitness accepts a gadget's witness output and writes it the same
// way PushWitness does.
func (s *WorkspaceSink) ReceiveWitness(w zki.Witness) error {
	return s.PushWitness(w)
}

// ReceiveResponse has nothing of its own to validate; the parent
// StatementBuilder already checks the response before forwarding here.
func (s *WorkspaceSink) ReceiveResponse(request, response zki.Header) error {
	return nil
}

// Close closes any files left open by PushConstraints/PushWitness.
func (s *WorkspaceSink) Close() error {
	var errConstraints, errWitness error
	if s.constraintsFile != nil {
		errConstraints = s.constraintsFile.Close()
	}
	if s.witnessFile != nil {
		errWitness = s.witnessFile.Close()
	}
	if errConstraints != nil {
		return errConstraints
	}
	return errWitness
}
