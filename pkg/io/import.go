package io

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/boxlayout/pkg/box"
	"github.com/matzehuels/boxlayout/pkg/errors"
)

// ReadTree decodes a tree document in the given format from r.
//
// ReadTree returns an INVALID_TREE error if the document does not match the
// schema (unknown node types, directions or alignments, "content" sizes on
// leaves, negative sizes) and an INVALID_FORMAT error if it is not valid
// JSON, YAML or TOML. An empty document decodes to [box.None].
//
// ReadTree does not close r.
func ReadTree(r io.Reader, format Format) (box.Unit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return DecodeTree(data, format)
}

// DecodeTree decodes a tree document held in memory.
func DecodeTree(data []byte, format Format) (box.Unit, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return box.None{}, nil
	}

	var doc node
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, decodeError(format, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, decodeError(format, err)
		}
	case FormatTOML:
		// TOML decodes generically and is re-read through the JSON schema
		// so size values and numbers follow a single set of rules.
		var raw map[string]any
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return nil, decodeError(format, err)
		}
		buf, err := json.Marshal(raw)
		if err != nil {
			return nil, decodeError(format, err)
		}
		if err := json.Unmarshal(buf, &doc); err != nil {
			return nil, decodeError(format, err)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown tree format %q", format)
	}
	return toUnit(&doc, "")
}

// decodeError classifies a codec error. Schema violations raised by size
// values surface as INVALID_TREE, syntax errors as INVALID_FORMAT.
func decodeError(format Format, err error) error {
	var syntax *json.SyntaxError
	switch {
	case format == FormatJSON && stderrors.As(err, &syntax):
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed %s", format)
	case format == FormatTOML && isTOMLParseError(err):
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "malformed %s", format)
	default:
		return errors.Wrap(errors.ErrCodeInvalidTree, err, "decode %s tree", format)
	}
}

func isTOMLParseError(err error) bool {
	var perr toml.ParseError
	return stderrors.As(err, &perr)
}

// ImportFile reads a tree document from path, inferring the format from the
// file extension.
func ImportFile(path string) (box.Unit, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTree(f, format)
}
