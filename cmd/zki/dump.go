package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zkinterface-go/zki"
	"github.com/zkinterface-go/zki/reader"
)

type outputFormat int

const (
	formatJSON outputFormat = iota
	formatYAML
)

// statementDoc is the structured-text rendering of a loaded statement, the
// shape emitted by to-json and to-yaml.
type statementDoc struct {
	Header      headerDoc       `json:"header" yaml:"header"`
	Witness     []variableDoc   `json:"witness" yaml:"witness"`
	Constraints []constraintDoc `json:"constraints" yaml:"constraints"`
}

type headerDoc struct {
	Instance      []variableDoc     `json:"instance_variables" yaml:"instance_variables"`
	FreeVariable  uint64            `json:"free_variable_id" yaml:"free_variable_id"`
	FieldMaximum  string            `json:"field_maximum,omitempty" yaml:"field_maximum,omitempty"`
	Configuration map[string]string `json:"configuration,omitempty" yaml:"configuration,omitempty"`
}

type variableDoc struct {
	Id    uint64 `json:"id" yaml:"id"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

type constraintDoc struct {
	A []variableDoc `json:"a" yaml:"a"`
	B []variableDoc `json:"b" yaml:"b"`
	C []variableDoc `json:"c" yaml:"c"`
}

func toVariableDocs(vars []zki.Variable) []variableDoc {
	out := make([]variableDoc, len(vars))
	for i, v := range vars {
		out[i] = variableDoc{Id: v.Id, Value: fmt.Sprintf("%x", v.Value)}
	}
	return out
}

func toLCDoc(lc zki.Variables) []variableDoc {
	vars, err := lc.All()
	if err != nil {
		return nil
	}
	return toVariableDocs(vars)
}

func buildStatementDoc(r *reader.Reader) (statementDoc, error) {
	var doc statementDoc

	headers := r.Headers()
	if len(headers) > 0 {
		h := headers[len(headers)-1]
		instance, err := h.InstanceVariables.All()
		if err != nil {
			return doc, err
		}
		doc.Header = headerDoc{
			Instance:     toVariableDocs(instance),
			FreeVariable: h.FreeVariableId,
		}
		if h.FieldMaximum != nil {
			doc.Header.FieldMaximum = fmt.Sprintf("%x", h.FieldMaximum)
		}
		if len(h.Configuration) > 0 {
			doc.Header.Configuration = make(map[string]string, len(h.Configuration))
			for _, kv := range h.Configuration {
				doc.Header.Configuration[kv.Key] = kv.Text
			}
		}
	}

	witness, err := r.IterWitness()
	if err != nil {
		return doc, err
	}
	doc.Witness = toVariableDocs(witness)

	for _, c := range r.IterConstraints() {
		doc.Constraints = append(doc.Constraints, constraintDoc{A: toLCDoc(c.A), B: toLCDoc(c.B), C: toLCDoc(c.C)})
	}

	return doc, nil
}

// cmdDump loads paths and emits the statement as JSON or YAML.
func cmdDump(paths []string, format outputFormat) error {
	r, err := loadReader(paths)
	if err != nil {
		return err
	}
	doc, err := buildStatementDoc(r)
	if err != nil {
		return errors.Wrap(err, "failed to build statement document")
	}

	switch format {
	case formatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "failed to encode JSON")
	case formatYAML:
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return errors.Wrap(enc.Encode(doc), "failed to encode YAML")
	default:
		return errors.Errorf("unknown output format %d", format)
	}
}
