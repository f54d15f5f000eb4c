package main

import (
	"github.com/pkg/errors"

	"github.com/zkinterface-go/zki/reader"
)

const defaultCacheSize = 256

// loadReader opens a Workspace over paths (defaulting to ".") and drains it
// into a Reader, the shared first step of every subcommand that inspects a
// statement. When paths is empty and a --config file set a workspace path,
// that path is used in place of ".". Likewise a configured cache_size
// overrides the built-in default.
func loadReader(paths []string) (*reader.Reader, error) {
	cacheSize := defaultCacheSize
	if loadedConfig != nil {
		if len(paths) == 0 && loadedConfig.Workspace != "" {
			paths = []string{loadedConfig.Workspace}
		}
		if loadedConfig.CacheSize > 0 {
			cacheSize = loadedConfig.CacheSize
		}
	}

	ws, err := reader.Open(paths, cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workspace")
	}
	r, err := ws.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workspace")
	}
	return r, nil
}
