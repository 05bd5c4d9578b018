package config

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"

	"github.com/hubastard/bumpslider/engine/serialize"
)

const (
	stateObject   = "sliders"
	stateProperty = "document"
)

// StateStore keeps the serialized widget document in the per-user data
// directory between runs.
type StateStore struct {
	m *gdata.Manager
}

func OpenState(appName string) (*StateStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open state %s: %w", appName, err)
	}
	return &StateStore{m: m}, nil
}

// Load returns the stored nodes, or nil when nothing was saved yet.
func (s *StateStore) Load() ([]serialize.Node, error) {
	if !s.m.ObjectPropExists(stateObject, stateProperty) {
		return nil, nil
	}
	data, err := s.m.LoadObjectProp(stateObject, stateProperty)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return serialize.Unmarshal(data)
}

func (s *StateStore) Save(nodes []serialize.Node) error {
	data, err := serialize.Marshal(nodes)
	if err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(stateObject, stateProperty, data); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Clear replaces the stored document with an empty one.
func (s *StateStore) Clear() error {
	if !s.m.ObjectPropExists(stateObject, stateProperty) {
		return nil
	}
	if err := s.m.SaveObjectProp(stateObject, stateProperty, nil); err != nil {
		return fmt.Errorf("clear state: %w", err)
	}
	return nil
}
