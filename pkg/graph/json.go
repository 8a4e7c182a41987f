package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Marshal serializes a Graph to pretty-printed JSON bytes.
func Marshal(g Graph) ([]byte, error) {
	return json.MarshalIndent(g, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Graph and validates it.
func Unmarshal(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, fmt.Errorf("unmarshal graph: %w", err)
	}
	if err := Validate(g); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// Read reads and validates a Graph from r.
func Read(r io.Reader) (Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Graph{}, fmt.Errorf("read graph: %w", err)
	}
	return Unmarshal(data)
}

// Write writes a Graph to w as pretty-printed JSON.
func Write(g Graph, w io.Writer) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadFile reads and validates a Graph from a JSON file.
func ReadFile(path string) (Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Graph{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// WriteFile writes a Graph to a JSON file.
func WriteFile(g Graph, path string) error {
	data, err := Marshal(g)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
