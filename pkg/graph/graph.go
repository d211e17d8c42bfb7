package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/graphlens/graphlens/pkg/errors"
)

// MarshalElements converts an element list to indented JSON bytes.
func MarshalElements(elements []Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeElementsTo(elements, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalElements deserializes JSON bytes to an element list.
func UnmarshalElements(data []byte) ([]Element, error) {
	return readElementsFrom(bytes.NewReader(data))
}

// WriteElementsFile writes an element list to a JSON file.
// The file is created with 0644 permissions.
func WriteElementsFile(elements []Element, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeElementsTo(elements, f)
}

// WriteElements writes an element list as JSON to an io.Writer.
func WriteElements(elements []Element, w io.Writer) error {
	return writeElementsTo(elements, w)
}

// ReadElementsFile reads a JSON file and returns the decoded element list.
func ReadElementsFile(path string) ([]Element, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "element file %s not found", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readElementsFrom(f)
}

// ReadElements decodes a JSON element list from an io.Reader.
func ReadElements(r io.Reader) ([]Element, error) {
	return readElementsFrom(r)
}

func writeElementsTo(elements []Element, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(elements); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func readElementsFrom(r io.Reader) ([]Element, error) {
	var elements []Element
	if err := json.NewDecoder(r).Decode(&elements); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDecodeElements, err, "decode element list")
	}
	for i, el := range elements {
		if err := validateElement(el); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidElement, err, "element %d", i)
		}
	}
	return elements, nil
}

// validateElement checks the structural constraints of a decoded element.
// Edges must reference a source and target; every element needs a group.
func validateElement(el Element) error {
	switch el.Group {
	case GroupNodes:
		return nil
	case GroupEdges:
		if el.String(AttrSource, "") == "" || el.String(AttrTarget, "") == "" {
			return fmt.Errorf("edge element missing source or target")
		}
		return nil
	case "":
		return fmt.Errorf("element missing group")
	default:
		return fmt.Errorf("unknown group %q", el.Group)
	}
}
