package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// cmdClean removes every *.zkif file given directly, and every *.zkif file
// directly inside a given directory; subdirectories are not searched.
func cmdClean(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return errors.Wrapf(err, "clean: %s", p)
		}
		if !info.IsDir() {
			if filepath.Ext(p) == ".zkif" {
				if err := os.Remove(p); err != nil {
					return errors.Wrapf(err, "clean: %s", p)
				}
			}
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return errors.Wrapf(err, "clean: %s", p)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ".zkif" {
				continue
			}
			full := filepath.Join(p, e.Name())
			if err := os.Remove(full); err != nil {
				return errors.Wrapf(err, "clean: %s", full)
			}
		}
	}
	return nil
}
