package histfsm

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document is the on-disk form of a Definition:
//
//	initial: normal
//	states:
//	  normal:
//	    transitions:
//	      ALERT: busy
//	  busy:
//	    transitions:
//	      CALM: normal
//
// JSON documents of the same shape are accepted as well.
type document struct {
	Initial StateID   `yaml:"initial"`
	States  yaml.Node `yaml:"states"`
}

type stateDocument struct {
	Transitions yaml.Node `yaml:"transitions"`
}

// LoadDefinition reads a definition document from path
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDefinition decodes a YAML or JSON definition document. States keep
// the order in which the document lists them.
func ParseDefinition(data []byte) (*Definition, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}
	if doc.Initial == "" && isEmptyNode(&doc.States) {
		return nil, ErrNoConfiguration
	}

	d := NewDefinition().Initial(doc.Initial)
	states := resolveAlias(&doc.States)
	if isEmptyNode(states) {
		return d, nil
	}
	if states.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: states must be a mapping (line %d)",
			ErrInvalidDefinition, states.Line)
	}

	for i := 0; i+1 < len(states.Content); i += 2 {
		key, val := resolveAlias(states.Content[i]), resolveAlias(states.Content[i+1])
		if isMergeKey(key) {
			return nil, fmt.Errorf("%w: merge keys are not supported in states (line %d)",
				ErrInvalidDefinition, key.Line)
		}
		id := StateID(key.Value)

		var sd stateDocument
		if err := val.Decode(&sd); err != nil {
			return nil, fmt.Errorf("%w: state %q: %w", ErrInvalidDefinition, id, err)
		}

		d.State(id)
		if err := decodeTransitions(d, id, &sd.Transitions); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func decodeTransitions(d *Definition, from StateID, n *yaml.Node) error {
	n = resolveAlias(n)
	if isEmptyNode(n) {
		return nil
	}
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: transitions of %q must be a mapping (line %d)",
			ErrInvalidDefinition, from, n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := resolveAlias(n.Content[i]), resolveAlias(n.Content[i+1])
		if isMergeKey(key) {
			return fmt.Errorf("%w: merge keys are not supported in transitions of %q (line %d)",
				ErrInvalidDefinition, from, key.Line)
		}
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: transition %q of %q must name a state (line %d)",
				ErrInvalidDefinition, key.Value, from, val.Line)
		}
		var to StateID
		if val.Tag != "!!null" {
			to = StateID(val.Value)
		}
		d.Transition(from, EventID(key.Value), to)
	}
	return nil
}

func isEmptyNode(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// resolveAlias follows alias nodes to the node they refer to
func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!merge"
}
