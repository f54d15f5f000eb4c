package main

import (
	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki/validate"
)

// cmdValidate runs the validator in verifier mode.
func cmdValidate(paths []string) error {
	r, err := loadReader(paths)
	if err != nil {
		return err
	}
	violations := validate.Run(r, false)
	if len(violations) == 0 {
		return nil
	}
	printViolations(violations)
	return errors.WithStack(errViolations)
}
