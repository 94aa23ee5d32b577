package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	// An empty document leaves out untouched.
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

// LoadExperiment reads a preset, starting from Default so omitted keys keep
// the MIT values.
func LoadExperiment(path string) (*ExperimentConfig, error) {
	ec := Default()
	if err := loadYAML(path, ec); err != nil {
		return nil, err
	}
	return ec, nil
}
