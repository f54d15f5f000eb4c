package zki

import (
	"bytes"
	"io"

	"github.com/tidwall/gjson"
)

// Command is a gadget invocation request: a call into a cooperating
// sub-builder, asking it to contribute constraints, witness assignments, or
// both, parameterized by a free-form KeyValue list.
type Command struct {
	ConstraintsGeneration bool
	WitnessGeneration     bool
	Parameters            []KeyValue
}

// Clone returns a Command independent of any decode buffer.
func (cmd Command) Clone() Command {
	out := Command{ConstraintsGeneration: cmd.ConstraintsGeneration, WitnessGeneration: cmd.WitnessGeneration}
	if cmd.Parameters != nil {
		out.Parameters = append([]KeyValue(nil), cmd.Parameters...)
	}
	return out
}

func (cmd Command) encodeBody(buf *bytes.Buffer) error {
	if err := writeBool(buf, cmd.ConstraintsGeneration); err != nil {
		return err
	}
	if err := writeBool(buf, cmd.WitnessGeneration); err != nil {
		return err
	}
	hasParams := cmd.Parameters != nil
	if err := writeBool(buf, hasParams); err != nil {
		return err
	}
	if hasParams {
		return encodeKeyValues(buf, cmd.Parameters)
	}
	return nil
}

func decodeCommandRaw(c *cursor) (Command, error) {
	constraints, err := c.readBool()
	if err != nil {
		return Command{}, err
	}
	witness, err := c.readBool()
	if err != nil {
		return Command{}, err
	}
	hasParams, err := c.readBool()
	if err != nil {
		return Command{}, err
	}
	var params []KeyValue
	if hasParams {
		params, err = decodeKeyValues(c)
		if err != nil {
			return Command{}, err
		}
	}
	return Command{ConstraintsGeneration: constraints, WitnessGeneration: witness, Parameters: params}, nil
}

// DecodeCommand parses a tagged Command record body into an owned Command,
// independent of body's backing array.
func DecodeCommand(body []byte) (Command, error) {
	cmd, err := decodeCommandRaw(newCursor(body))
	if err != nil {
		return Command{}, err
	}
	return cmd.Clone(), nil
}

// Encode serializes cmd as a single size-prefixed Command record.
func (cmd Command) Encode() ([]byte, error) {
	var body bytes.Buffer
	if err := cmd.encodeBody(&body); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := encodeRecord(&out, MessageCommand, body.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// WriteInto writes cmd as a single size-prefixed record to w.
func (cmd Command) WriteInto(w io.Writer) error {
	buf, err := cmd.Encode()
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// Param returns the named parameter's value and whether it was present
// among cmd.Parameters. A KeyValueText parameter returns its Text; a
// KeyValueData parameter returns its Data interpreted as a string (the
// common case being a JSON blob meant for ParamJSON).
func (cmd Command) Param(key string) (string, bool) {
	for _, kv := range cmd.Parameters {
		if kv.Key == key {
			if kv.Kind == KeyValueData {
				return string(kv.Data), true
			}
			return kv.Text, true
		}
	}
	return "", false
}

// ParamJSON looks up the named parameter, treats its payload (Text or raw
// Data, whichever Kind carries it) as a JSON document, and evaluates path
// against it with gjson directly off the underlying bytes, returning the
// matched value and whether both the parameter and the path resolved.
func (cmd Command) ParamJSON(key, path string) (string, bool) {
	for _, kv := range cmd.Parameters {
		if kv.Key != key {
			continue
		}
		var result gjson.Result
		if kv.Kind == KeyValueData {
			result = gjson.GetBytes(kv.Data, path)
		} else {
			result = gjson.Get(kv.Text, path)
		}
		if !result.Exists() {
			return "", false
		}
		return result.String(), true
	}
	return "", false
}

// CommandView is a Command decoded without copying.
type CommandView struct{ Command }

// NewCommandView parses a tagged Command record body without copying.
func NewCommandView(body []byte) (CommandView, error) {
	cmd, err := decodeCommandRaw(newCursor(body))
	return CommandView{cmd}, err
}

// Owned returns an independent copy safe to retain past the input buffer.
func (v CommandView) Owned() Command { return v.Command.Clone() }
