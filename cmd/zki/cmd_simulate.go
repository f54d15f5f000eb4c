package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki/simulate"
	"github.com/zkinterface-go/zki/validate"
)

// cmdSimulate runs the validator in prover mode followed by the simulator.
func cmdSimulate(paths []string) error {
	r, err := loadReader(paths)
	if err != nil {
		return err
	}

	violations := validate.Run(r, true)
	result := simulate.Run(r)
	violations = append(violations, result.Violations...)

	if len(violations) == 0 {
		fmt.Printf("fingerprint: %x\n", result.Fingerprint())
		return nil
	}
	printViolations(violations)
	return errors.WithStack(errViolations)
}
