package main

import (
	"os"

	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki/reader"
)

// cmdCat concatenates every workspace file's raw bytes to standard output.
func cmdCat(paths []string) error {
	ws, err := reader.Open(paths, 0)
	if err != nil {
		return errors.Wrap(err, "failed to open workspace")
	}
	return ws.WriteRawTo(os.Stdout)
}
