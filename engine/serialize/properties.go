package serialize

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Property is a single key/value pair as written to a document.
type Property struct {
	Key   string
	Value string
}

// Properties is an ordered list of pairs. Keys are expected to be unique;
// Add replaces the value of an existing key in place.
type Properties []Property

func (p *Properties) Add(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Property{Key: key, Value: value})
}

func (p Properties) Get(key string) (string, bool) {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// Remove deletes key and keeps the order of the remaining pairs.
func (p *Properties) Remove(key string) {
	out := (*p)[:0]
	for _, kv := range *p {
		if kv.Key != key {
			out = append(out, kv)
		}
	}
	*p = out
}

func (p Properties) Keys() []string {
	keys := make([]string, len(p))
	for i, kv := range p {
		keys[i] = kv.Key
	}
	return keys
}

func (p Properties) Clone() Properties { return append(Properties(nil), p...) }

// MarshalYAML writes the pairs as a mapping, keeping their order.
func (p Properties) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range p {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: kv.Value},
		)
	}
	return n, nil
}

func (p *Properties) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: properties must be a mapping", n.Line)
	}
	out := make(Properties, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: property %q must be a scalar", v.Line, k.Value)
		}
		out = append(out, Property{Key: k.Value, Value: v.Value})
	}
	*p = out
	return nil
}
