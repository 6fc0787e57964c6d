package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/errors"
)

// WriteTree encodes tree as a JSON or YAML document and writes it to w.
// The output can be re-read with [ReadTree] for round-trip processing.
func WriteTree(tree box.Unit, w io.Writer, format Format) error {
	doc := fromUnit(tree)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeUnsupported, "cannot write trees as %q (want json or yaml)", format)
	}
	return nil
}

// MarshalTree returns the canonical compact JSON encoding of tree.
// Equal trees always produce equal bytes.
func MarshalTree(tree box.Unit) ([]byte, error) {
	data, err := json.Marshal(fromUnit(tree))
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// ExportFile writes tree to path in the format given by its extension.
func ExportFile(tree box.Unit, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteTree(tree, f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
