package macro

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save writes m to path as YAML.
// The file is written atomically using a temporary file and rename.
func Save(path string, m Macro) error {
	var buf bytes.Buffer
	if err := Encode(&buf, m); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads a macro from path.
func Load(path string) (Macro, error) {
	f, err := os.Open(path)
	if err != nil {
		return Macro{}, fmt.Errorf("failed to open macro: %w", err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return Macro{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Encode writes m as YAML.
func Encode(w io.Writer, m Macro) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("failed to encode macro: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML macro and checks that every key parses.
func Decode(r io.Reader) (Macro, error) {
	var m Macro
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return Macro{}, fmt.Errorf("failed to decode macro: %w", err)
	}
	if _, err := m.Events(); err != nil {
		return Macro{}, err
	}
	return m, nil
}
