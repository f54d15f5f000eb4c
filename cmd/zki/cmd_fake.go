package main

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki/simulate"
)

// fakeProofMagic tags a sentinel proof file: it carries no cryptographic
// content, only the statement's Fingerprint, for prove/verify smoke tests.
var fakeProofMagic = []byte("ZKIFAKEPROOF")

func fakeProofPath(paths []string) (string, error) {
	if len(paths) != 1 {
		return "", errors.New("fake_prove/fake_verify require exactly one PATH")
	}
	return paths[0], nil
}

// cmdFakeProve writes a sentinel proof file recording the fingerprint of
// the statement found in the current working directory's workspace.
func cmdFakeProve(paths []string) error {
	dest, err := fakeProofPath(paths)
	if err != nil {
		return err
	}
	r, err := loadReader(nil)
	if err != nil {
		return err
	}
	result := simulate.Run(r)
	if !result.Satisfied() {
		return errors.New("fake_prove: statement is not satisfied, refusing to write a proof")
	}
	fp := result.Fingerprint()

	var buf bytes.Buffer
	buf.Write(fakeProofMagic)
	buf.Write(fp[:])
	return errors.Wrap(os.WriteFile(dest, buf.Bytes(), 0o644), "fake_prove: write proof")
}

// cmdFakeVerify reads a sentinel proof file and checks its recorded
// fingerprint against the statement in the current working directory's
// workspace.
func cmdFakeVerify(paths []string) error {
	src, err := fakeProofPath(paths)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return errors.Wrap(err, "fake_verify: read proof")
	}
	if len(data) != len(fakeProofMagic)+32 || !bytes.Equal(data[:len(fakeProofMagic)], fakeProofMagic) {
		return errors.New("fake_verify: malformed proof file")
	}

	r, err := loadReader(nil)
	if err != nil {
		return err
	}
	result := simulate.Run(r)
	fp := result.Fingerprint()
	if !bytes.Equal(data[len(fakeProofMagic):], fp[:]) {
		printViolations([]string{"fake_verify: fingerprint mismatch"})
		return errors.WithStack(errViolations)
	}
	if !result.Satisfied() {
		printViolations(result.Violations)
		return errors.WithStack(errViolations)
	}
	return nil
}
