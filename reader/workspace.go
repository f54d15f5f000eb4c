package reader

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/zkinterface-go/zki"
)

const statementExtension = ".zkif"

const stdinSentinel = "-"

// filenameRank orders workspace files so a header file always sorts
// before witness, constraints, and anything else.
func filenameRank(name string) int {
	switch {
	case strings.Contains(name, "header"):
		return 0
	case strings.Contains(name, "witness"):
		return 1
	case strings.Contains(name, "constraint"):
		return 3
	default:
		return 4
	}
}

// Workspace is the streaming, file-backed ingestion front-end: it resolves
// a set of directories, files, or the stdin sentinel into a
// deterministically ordered sequence of records.
type Workspace struct {
	paths []string
	stdin bool
	cache *lru.Cache
}

// Open resolves paths (directories, individual .zkif files, or the sole
// sentinel "-") into a Workspace. Mixing "-" with any other path is an
// error. A decode cache of cacheSize entries is attached; pass 0 to disable
// caching.
func Open(paths []string, cacheSize int) (*Workspace, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	if len(paths) == 1 && paths[0] == stdinSentinel {
		ws := &Workspace{stdin: true}
		if cacheSize > 0 {
			c, err := lru.New(cacheSize)
			if err != nil {
				return nil, fmt.Errorf("reader: workspace cache: %w", err)
			}
			ws.cache = c
		}
		return ws, nil
	}
	for _, p := range paths {
		if p == stdinSentinel {
			return nil, fmt.Errorf("reader: cannot combine files and stdin")
		}
	}

	files, err := listWorkspaceFiles(paths)
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	sort.SliceStable(files, func(i, j int) bool {
		return filenameRank(filepath.Base(files[i])) < filenameRank(filepath.Base(files[j]))
	})

	ws := &Workspace{paths: files}
	if cacheSize > 0 {
		c, err := lru.New(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("reader: workspace cache: %w", err)
		}
		ws.cache = c
	}
	return ws, nil
}

func hasStatementExtension(path string) bool {
	return filepath.Ext(path) == statementExtension
}

// listWorkspaceFiles expands paths into every file (recursively, through
// any subdirectories) whose name ends with the statement extension.
func listWorkspaceFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			logger.Warnf("reader: skipping unreadable workspace path %s: %v", p, err)
			continue
		}
		if !info.IsDir() {
			if hasStatementExtension(p) {
				out = append(out, p)
			}
			continue
		}
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if hasStatementExtension(path) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("reader: %w", err)
		}
	}
	return out, nil
}

// ReadAll drains the workspace into a Reader, applying the decode cache (if
// any) so that a record already decoded by an earlier pass over the same
// files is not re-decoded.
func (ws *Workspace) ReadAll() (*Reader, error) {
	r := New()
	if ws.stdin {
		if err := ws.streamInto(os.Stdin, r); err != nil {
			return nil, err
		}
		return r, nil
	}
	for _, path := range ws.paths {
		f, err := os.Open(path)
		if err != nil {
			logger.Warnf("reader: error opening workspace file %s: %v", path, err)
			continue
		}
		err = ws.streamInto(f, r)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reader: %s: %w", path, err)
		}
	}
	return r, nil
}

// WriteRawTo copies every workspace file's raw bytes to w, in the same
// rank-then-lexicographic order used for decoding, without parsing records.
func (ws *Workspace) WriteRawTo(w io.Writer) error {
	if ws.stdin {
		_, err := io.Copy(w, os.Stdin)
		return err
	}
	for _, path := range ws.paths {
		f, err := os.Open(path)
		if err != nil {
			logger.Warnf("reader: error opening workspace file %s: %v", path, err)
			continue
		}
		_, err = io.Copy(w, f)
		f.Close()
		if err != nil {
			return fmt.Errorf("reader: %s: %w", path, err)
		}
	}
	return nil
}

func (ws *Workspace) streamInto(stream io.Reader, r *Reader) error {
	for {
		buf, err := zki.ReadBuffer(stream)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		msg, err := ws.decode(buf)
		if err != nil {
			return err
		}
		r.messages = append(r.messages, msg)
	}
}

func (ws *Workspace) decode(buf []byte) (zki.Message, error) {
	if ws.cache == nil {
		return zki.ParseMessage(buf)
	}
	key := fingerprint(buf)
	if cached, ok := ws.cache.Get(key); ok {
		return cached.(zki.Message), nil
	}
	msg, err := zki.ParseMessage(buf)
	if err != nil {
		return zki.Message{}, err
	}
	ws.cache.Add(key, msg)
	return msg, nil
}

// fingerprint hashes a raw record buffer for cache keying using FNV-64a.
func fingerprint(buf []byte) uint64 {
	h := fnv.New64a()
	h.Write(buf)
	return h.Sum64()
}
