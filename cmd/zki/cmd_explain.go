package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki"
)

// cmdExplain prints a human-readable dump of the statement's variables and
// constraints.
func cmdExplain(paths []string) error {
	r, err := loadReader(paths)
	if err != nil {
		return err
	}

	headers := r.Headers()
	if len(headers) == 0 {
		return errors.New("explain: no header found in workspace")
	}
	h := headers[len(headers)-1]

	instance, err := h.InstanceVariables.All()
	if err != nil {
		return errors.Wrap(err, "explain: malformed instance variables")
	}
	fmt.Printf("free_variable_id: %d\n", h.FreeVariableId)
	fmt.Printf("instance variables (%d):\n", len(instance))
	for _, v := range instance {
		fmt.Printf("  var_%d = %x\n", v.Id, v.Value)
	}

	witness, err := r.IterWitness()
	if err != nil {
		return errors.Wrap(err, "explain: malformed witness")
	}
	fmt.Printf("witness variables (%d):\n", len(witness))
	for _, v := range witness {
		fmt.Printf("  var_%d = %x\n", v.Id, v.Value)
	}

	constraints := r.IterConstraints()
	fmt.Printf("constraints (%d):\n", len(constraints))
	for i, c := range constraints {
		fmt.Printf("  [%d] %s * %s = %s\n", i, explainLC(c.A), explainLC(c.B), explainLC(c.C))
	}
	return nil
}

func explainLC(lc zki.Variables) string {
	vars, err := lc.All()
	if err != nil {
		return "<malformed>"
	}
	s := ""
	for i, v := range vars {
		if i > 0 {
			s += " + "
		}
		s += fmt.Sprintf("%x·var_%d", v.Value, v.Id)
	}
	if s == "" {
		return "0"
	}
	return s
}
