package simulate

import (
	"bytes"

	"golang.org/x/crypto/blake2b"

	"github.com/zkinterface-go/zki"
)

// Messages is the minimal view over an ingested statement that Run needs;
// reader.Reader satisfies it directly.
type Messages interface {
	Headers() []zki.Header
	IterConstraints() []zki.BilinearConstraint
	IterWitness() ([]zki.Variable, error)
}

// Result is the outcome of simulating one statement: its violations, plus
// enough material to fingerprint the statement that was checked.
type Result struct {
	Violations []string

	header      zki.Header
	constraints zki.ConstraintSystem
}

// Satisfied reports whether every constraint held (no violations at all).
func (r Result) Satisfied() bool {
	return len(r.Violations) == 0
}

// Fingerprint returns a BLAKE2b-256 digest of the canonical wire encoding
// of the ingested header and constraint system, so two simulation runs
// over logically identical but differently chunked workspaces compare
// equal without a structural diff.
func (r Result) Fingerprint() [32]byte {
	var buf bytes.Buffer
	if hb, err := r.header.Encode(); err == nil {
		buf.Write(hb)
	}
	if cb, err := r.constraints.Encode(); err == nil {
		buf.Write(cb)
	}
	return blake2b.Sum256(buf.Bytes())
}

// Run drives a Simulator over every header, witness, and constraint in
// msgs, ingesting headers before witness values before constraints, and
// returns the accumulated Result.
func Run(msgs Messages) Result {
	s := New()

	headers := msgs.Headers()
	for _, h := range headers {
		s.IngestHeader(h)
	}

	if vars, err := msgs.IterWitness(); err != nil {
		s.violate("Malformed witness stream: %v", err)
	} else {
		s.IngestWitnessVariables(vars)
	}

	constraints := zki.ConstraintSystem{Constraints: msgs.IterConstraints()}
	s.IngestConstraintSystem(constraints)

	result := Result{Violations: s.Violations(), constraints: constraints}
	if len(headers) > 0 {
		result.header = headers[len(headers)-1]
	}
	logger.Debugf("simulate: %d violation(s)", len(result.Violations))
	return result
}
