package board

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load reads a board from a TOML file. A missing file yields the
// default board so a fresh path opens an empty editor
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read board: %w", err)
	}

	b := &Board{}
	if err := toml.Unmarshal(data, b); err != nil {
		return nil, fmt.Errorf("parse board %s: %w", path, err)
	}
	if len(b.Tiers) == 0 {
		b.Tiers = Default().Tiers
	}
	b.EnsureIDs()
	return b, nil
}

// Save writes the board as TOML, atomically: encode to a temp file in
// the same directory, then rename over the destination
func Save(b *Board, path string) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(b); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tierboard-*")
	if err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save board: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save board: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save board: %w", err)
	}
	return nil
}
