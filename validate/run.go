package validate

import "github.com/zkinterface-go/zki"

// Messages is the minimal view over an ingested statement that Run needs;
// reader.Reader satisfies it directly.
type Messages interface {
	Headers() []zki.Header
	IterConstraints() []zki.BilinearConstraint
	IterWitness() ([]zki.Variable, error)
}

// Run drives a Validator over every header, (optionally) witness, and
// constraint in msgs, ingesting headers before witness values before
// constraints, and returns the accumulated violations.
func Run(msgs Messages, asProver bool) []string {
	v := NewVerifier()
	if asProver {
		v = NewProver()
	}
	for _, h := range msgs.Headers() {
		v.IngestHeader(h)
	}
	if asProver {
		vars, err := msgs.IterWitness()
		if err != nil {
			v.violate("Malformed witness stream: %v", err)
		} else {
			v.ensureHeader()
			v.IngestWitnessVariables(vars)
		}
	}
	if constraints := msgs.IterConstraints(); len(constraints) > 0 {
		v.IngestConstraintSystem(zki.ConstraintSystem{Constraints: constraints})
	}
	violations := v.Violations()
	logger.Debugf("validate: %d violation(s)", len(violations))
	return violations
}
