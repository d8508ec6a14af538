// Package wordfile reads and writes the word-timestamps JSON file and owns
// the atomic file write used for every artifact the tool produces.
package wordfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikhil-reddy05/auto-captions/internal/captions"
	"github.com/nikhil-reddy05/auto-captions/internal/types"
)

// Load decodes a word-timestamps JSON file and validates every record.
func Load(path string) ([]types.WordTiming, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []types.WordTiming
	if err := json.Unmarshal(b, &words); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if err := captions.ValidateWords(words); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Save writes words as indented JSON, creating parent directories.
func Save(path string, words []types.WordTiming) error {
	b, err := json.MarshalIndent(words, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal words: %w", err)
	}
	return WriteAtomic(path, append(b, '\n'))
}

// WriteAtomic writes data to path through a temp file in the same directory
// plus a rename, so a failed run never leaves a truncated artifact where a
// consumer could pick it up.
func WriteAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
