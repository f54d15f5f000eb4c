package main

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki"
	"github.com/zkinterface-go/zki/builder"
	"github.com/zkinterface-go/zki/internal/fieldpreset"
)

// exampleFieldMaximum is 100, i.e. modulus 101, matching the canonical
// x²+y²=z fixture.
var exampleFieldMaximum = []byte{100}

func exampleHeader() zki.Header {
	return zki.Header{
		InstanceVariables: zki.NewVariables([]uint64{1, 2, 3}, []byte{3, 4, 25}), // x, y, z
		FreeVariableId:    6,
		FieldMaximum:      exampleFieldMaximum,
		Configuration:     []zki.KeyValue{zki.TextKeyValue("Name", "example")},
	}
}

func exampleConstraints() zki.ConstraintSystem {
	return zki.ConstraintSystem{Constraints: []zki.BilinearConstraint{
		// x * x = xx
		{A: zki.NewVariables([]uint64{1}, []byte{1}), B: zki.NewVariables([]uint64{1}, []byte{1}), C: zki.NewVariables([]uint64{4}, []byte{1})},
		// y * y = yy
		{A: zki.NewVariables([]uint64{2}, []byte{1}), B: zki.NewVariables([]uint64{2}, []byte{1}), C: zki.NewVariables([]uint64{5}, []byte{1})},
		// 1 * (xx + yy) = z
		{A: zki.NewVariables([]uint64{0}, []byte{1}), B: zki.NewVariables([]uint64{4, 5}, []byte{1, 1}), C: zki.NewVariables([]uint64{3}, []byte{1})},
	}}
}

func exampleWitness() zki.Witness {
	return zki.Witness{AssignedVariables: zki.NewVariables([]uint64{4, 5}, []byte{9, 16})} // xx=9, yy=16
}

// cmdExample writes an example statement into paths[0]. With no sizing
// flags it is the canonical x²+y²=z fixture (instance {x=3,y=4,z=25},
// witness {xx=9,yy=16}); when --witness-nbr, --instance-nbr or
// --field-order is set, it instead writes a synthetic statement over the
// field named by --field-order, with max(--witness-nbr, --instance-nbr)
// instance variables and as many witness variables (at least one of each).
func cmdExample(paths []string) error {
	if len(paths) != 1 {
		return errors.New("example requires exactly one PATH")
	}
	sink, err := builder.NewWorkspaceSink(paths[0])
	if err != nil {
		return errors.Wrap(err, "failed to create example workspace")
	}
	defer sink.Close()

	h, cs, w, err := buildExampleStatement()
	if err != nil {
		return err
	}

	if err := sink.PushHeader(h); err != nil {
		return errors.Wrap(err, "failed to write example header")
	}
	if err := sink.PushWitness(w); err != nil {
		return errors.Wrap(err, "failed to write example witness")
	}
	if err := sink.PushConstraints(cs); err != nil {
		return errors.Wrap(err, "failed to write example constraints")
	}
	return nil
}

func buildExampleStatement() (zki.Header, zki.ConstraintSystem, zki.Witness, error) {
	if witnessNbrFlag == 0 && instanceNbrFlag == 0 && fieldOrderFlag == "" {
		return exampleHeader(), exampleConstraints(), exampleWitness(), nil
	}

	fieldMaximum, err := resolveFieldMaximum(fieldOrderFlag)
	if err != nil {
		return zki.Header{}, zki.ConstraintSystem{}, zki.Witness{}, err
	}

	n := instanceNbrFlag
	if witnessNbrFlag > n {
		n = witnessNbrFlag
	}
	if n == 0 {
		n = 1
	}

	modulus := zki.Modulus(fieldMaximum)
	// Every value is reduced below the modulus, so it fits in the width of
	// fieldMaximum; a fixed width keeps each Variables block evenly strided.
	stride := len(fieldMaximum)

	instanceIds := make([]uint64, n)
	var instanceValues []byte
	witnessIds := make([]uint64, n)
	var witnessValues []byte
	constraints := make([]zki.BilinearConstraint, n)

	for i := uint64(0); i < n; i++ {
		instanceIds[i] = i + 1
		witnessIds[i] = n + i + 1

		base := new(big.Int).Mod(big.NewInt(int64(i)+1), modulus)
		square := new(big.Int).Mul(base, base)
		square.Mod(square, modulus)

		instanceValues = append(instanceValues, zki.BigToFieldElement(base, stride)...)
		witnessValues = append(witnessValues, zki.BigToFieldElement(square, stride)...)

		// instance_i * instance_i = witness_i
		constraints[i] = zki.BilinearConstraint{
			A: zki.NewVariables([]uint64{instanceIds[i]}, []byte{1}),
			B: zki.NewVariables([]uint64{instanceIds[i]}, []byte{1}),
			C: zki.NewVariables([]uint64{witnessIds[i]}, []byte{1}),
		}
	}

	h := zki.Header{
		InstanceVariables: zki.NewVariables(instanceIds, instanceValues),
		FreeVariableId:    2*n + 1,
		FieldMaximum:      fieldMaximum,
		Configuration:     []zki.KeyValue{zki.TextKeyValue("Name", "synthetic")},
	}
	cs := zki.ConstraintSystem{Constraints: constraints}
	w := zki.Witness{AssignedVariables: zki.NewVariables(witnessIds, witnessValues)}
	return h, cs, w, nil
}

// resolveFieldMaximum interprets --field-order: a named preset
// (secp256k1, ed25519), a decimal field_maximum, or (if empty) the
// canonical example's default.
func resolveFieldMaximum(flagValue string) ([]byte, error) {
	if flagValue == "" {
		return exampleFieldMaximum, nil
	}
	if max, ok := fieldpreset.Resolve(flagValue); ok {
		return max, nil
	}
	v, ok := new(big.Int).SetString(flagValue, 10)
	if !ok {
		return nil, errors.Errorf("--field-order: %q is not a decimal number or one of %v", flagValue, fieldpreset.Names())
	}
	return zki.BigToFieldElement(v, 0), nil
}
