package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

type statsDoc struct {
	NumPublicInputs     int `json:"num_public_inputs"`
	NumPrivateVariables int `json:"num_private_variables"`
	Multiplications     int `json:"multiplications"`
	Additions           int `json:"additions"`
	AdditionsA          int `json:"additions_a"`
	AdditionsB          int `json:"additions_b"`
	AdditionsC          int `json:"additions_c"`
}

// cmdStats prints variable and constraint counts. A constraint always
// counts as one multiplication; additionally a
// slot (A, B, or C) whose linear combination spans more than one variable
// counts as an addition in that slot.
func cmdStats(paths []string) error {
	r, err := loadReader(paths)
	if err != nil {
		return err
	}

	headers := r.Headers()
	var stats statsDoc
	if len(headers) > 0 {
		h := headers[len(headers)-1]
		stats.NumPublicInputs = h.InstanceVariables.Len()
		if h.FreeVariableId > uint64(stats.NumPublicInputs) {
			stats.NumPrivateVariables = int(h.FreeVariableId) - 1 - stats.NumPublicInputs
		}
	}

	for _, c := range r.IterConstraints() {
		stats.Multiplications++
		if c.A.Len() > 1 {
			stats.AdditionsA++
		}
		if c.B.Len() > 1 {
			stats.AdditionsB++
		}
		if c.C.Len() > 1 {
			stats.AdditionsC++
		}
	}
	stats.Additions = stats.AdditionsA + stats.AdditionsB + stats.AdditionsC

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(stats), "failed to encode stats")
}
