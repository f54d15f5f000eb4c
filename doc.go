// Package zki implements the zero-knowledge interface (ZKI) wire format:
// a size-prefixed binary record format for describing arithmetic
// constraint systems (R1CS), their public instance inputs, and their
// private witnesses.
//
// The package holds the owned data model (Header, ConstraintSystem,
// Witness, Command, Variables, KeyValue) together with the wire codec
// that serializes and parses them. Higher-level concerns — reading a
// multi-file workspace, building a statement, validating one, or
// simulating its arithmetic — live in the reader, builder, validate and
// simulate sub-packages.
package zki
