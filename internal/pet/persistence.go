package pet

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// DefaultSavePath returns the per-user save file location.
func DefaultSavePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tama_state.json"
	}
	return filepath.Join(home, ".tama_state.json")
}

// Load reads a pet from the save file at path. Unknown fields are ignored
// and missing fields keep their fresh-pet defaults. Returns nil when the
// file is missing or unreadable; the caller starts a new pet.
func Load(path string) *Pet {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	// Unmarshalling over a default-filled record leaves absent fields at
	// their defaults instead of zeroing them.
	p := New()
	if err := json.Unmarshal(data, p); err != nil {
		log.Printf("unreadable save %s: %v", path, err)
		return nil
	}
	p.InitIfNeeded()
	return p
}

// Save writes the pet to path atomically: marshal to a temp file in the
// same directory, then rename over the real path. On any failure the temp
// file is removed and the previous save is left untouched.
func Save(p *Pet, path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal pet: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}
