package serialize

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertiesOrderAndReplace(t *testing.T) {
	var p Properties
	p.Add("b", "1")
	p.Add("a", "2")
	p.Add("b", "3")
	assert.Equal(t, []string{"b", "a"}, p.Keys())
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)

	p.Remove("b")
	assert.Equal(t, []string{"a"}, p.Keys())
	_, ok = p.Get("b")
	assert.False(t, ok)
}

type counter struct{ n int }

func (c *counter) Type() string { return "Counter" }
func (c *counter) Serialize(p *Properties) {
	p.Add("n", strconv.Itoa(c.n))
}
func (c *counter) Deserialize(p *Properties) error {
	v, ok := p.Get("n")
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	p.Remove("n")
	c.n = n
	return nil
}

func TestDocumentRoundTrip(t *testing.T) {
	n := Collect("first", &counter{n: 7})
	n.Properties.Add("extra", "x|y")

	data, err := Marshal([]Node{n})
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: Counter")

	nodes, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, []string{"n", "extra"}, nodes[0].Properties.Keys())

	var c counter
	rest, err := Apply(nodes[0], &c)
	require.NoError(t, err)
	assert.Equal(t, 7, c.n)
	assert.Equal(t, Properties{{Key: "extra", Value: "x|y"}}, rest)
	// the node itself is untouched
	assert.Len(t, nodes[0].Properties, 2)
}

func TestApplyTypeMismatch(t *testing.T) {
	_, err := Apply(Node{Type: "Other"}, &counter{})
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestDecodeRejectsNestedValues(t *testing.T) {
	_, err := Unmarshal([]byte("- type: Counter\n  properties:\n    n: [1, 2]\n"))
	assert.Error(t, err)

	nodes, err := Unmarshal(nil)
	assert.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestFind(t *testing.T) {
	nodes := []Node{{Name: "a"}, {Name: "b", Type: "T"}}
	n, ok := Find(nodes, "b")
	assert.True(t, ok)
	assert.Equal(t, "T", n.Type)
	_, ok = Find(nodes, "c")
	assert.False(t, ok)
}
