// Package articles loads the candidate news pool from JSON files on
// disk. Each file holds an array of articles; every loaded article is
// tagged with the file it came from so answers stay traceable to their
// sources.
package articles

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/newssense/internal/types"
)

// LoadDir reads every *.json file in dir, tags each article with its
// source file name, and returns the combined pool sorted newest first.
// A directory with no JSON files yields an empty pool, not an error; a
// file that fails to parse fails the load.
func LoadDir(dir string) ([]types.Article, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Message: "reading news directory " + dir, Cause: err}
	}

	pool := []types.Article{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		loaded, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		pool = append(pool, loaded...)
	}

	sortNewestFirst(pool)
	return pool, nil
}

// LoadFile reads one JSON article file and tags each article with the
// file's base name.
func LoadFile(path string) ([]types.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Message: "reading news file " + path, Cause: err}
	}

	var loaded []types.Article
	if err := json.Unmarshal(raw, &loaded); err != nil {
		return nil, &Error{Message: "parsing news file " + path, Cause: err}
	}

	name := filepath.Base(path)
	for i := range loaded {
		loaded[i].SourceFile = name
	}
	return loaded, nil
}

// sortNewestFirst orders the pool by parsed date descending. Articles
// with unparseable dates sort last; the sort is stable so their relative
// order is preserved.
func sortNewestFirst(pool []types.Article) {
	sort.SliceStable(pool, func(i, j int) bool {
		di, _ := pool[i].ParsedDate()
		dj, _ := pool[j].ParsedDate()
		return di.After(dj)
	})
}
