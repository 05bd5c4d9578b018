package serialize

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrTypeMismatch is returned by Apply when a node was written by a
// different type than the one reading it.
var ErrTypeMismatch = errors.New("type mismatch")

// Serializer is implemented by anything that stores its state as
// properties. Deserialize consumes the keys it recognizes and leaves the
// rest in props.
type Serializer interface {
	Type() string
	Serialize(props *Properties)
	Deserialize(props *Properties) error
}

// Node is one serialized object in a document.
type Node struct {
	Type       string     `yaml:"type"`
	Name       string     `yaml:"name,omitempty"`
	Properties Properties `yaml:"properties"`
}

// Collect serializes s into a node.
func Collect(name string, s Serializer) Node {
	n := Node{Type: s.Type(), Name: name}
	s.Serialize(&n.Properties)
	return n
}

// Apply feeds n into s and returns the properties s did not consume.
func Apply(n Node, s Serializer) (Properties, error) {
	if n.Type != s.Type() {
		return nil, fmt.Errorf("node %q: %w: have %s, want %s", n.Name, ErrTypeMismatch, n.Type, s.Type())
	}
	props := n.Properties.Clone()
	if err := s.Deserialize(&props); err != nil {
		return nil, fmt.Errorf("node %q: %w", n.Name, err)
	}
	return props, nil
}

func Encode(w io.Writer, nodes []Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(nodes); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return enc.Close()
}

func Decode(r io.Reader) ([]Node, error) {
	var nodes []Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return nodes, nil
}

func Marshal(nodes []Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, nodes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) ([]Node, error) { return Decode(bytes.NewReader(data)) }

// Find returns the first node with the given name.
func Find(nodes []Node, name string) (Node, bool) {
	for _, n := range nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}
