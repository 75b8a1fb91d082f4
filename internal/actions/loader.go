package actions

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the layout of an action definitions YAML file
type File struct {
	Actions []*Definition `yaml:"actions"`
}

// LoadFile reads action definitions from a YAML file
func LoadFile(path string) ([]*Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open actions file: %w", err)
	}
	defer f.Close()

	defs, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return defs, nil
}

// Decode reads action definitions in YAML form and validates each one
func Decode(r io.Reader) ([]*Definition, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode actions: %w", err)
	}

	seen := make(map[string]bool, len(file.Actions))
	for _, def := range file.Actions {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("action %s defined twice", def.ID)
		}
		seen[def.ID] = true
	}

	return file.Actions, nil
}

// Seed stores the built-in definitions followed by overrides
func Seed(ctx context.Context, repo Repository, overrides []*Definition) error {
	defs := append(BuiltinDefinitions(), overrides...)
	for _, def := range defs {
		if err := repo.Put(ctx, def); err != nil {
			return fmt.Errorf("failed to seed action %s: %w", def.ID, err)
		}
	}

	log.Printf("[Actions] Seeded %d built-in and %d custom action definitions", len(defs)-len(overrides), len(overrides))
	return nil
}
