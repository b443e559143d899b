// Package codec converts between graph objects and their JSON and YAML
// wire forms. It sits at the transport boundary: parsed documents enter
// the object model through FromJSON/FromYAML, and mutated objects are
// handed back through ToJSON/ToYAML.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/graphkit/go-graph/graph"
)

// FromJSON parses a JSON object document and wraps it as a graph
// object. Numbers decode as json.Number to avoid losing integer
// precision. Top-level arrays and scalars are rejected; use DecodeJSON
// for those.
func FromJSON(data []byte) (*graph.Object, error) {
	v, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	o, ok := v.(*graph.Object)
	if !ok {
		return nil, fmt.Errorf("document is not an object")
	}
	return o, nil
}

// DecodeJSON parses any JSON document into a wrapped graph value.
func DecodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return graph.WrapValue(v), nil
}

// ToJSON renders a graph value as JSON. Cyclic values are errors.
func ToJSON(v any) ([]byte, error) {
	plain, err := graph.ToAny(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(plain)
}

// FromYAML parses a YAML object document and wraps it as a graph object.
func FromYAML(data []byte) (*graph.Object, error) {
	var v map[string]any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return graph.Wrap(v), nil
}

// ToYAML renders a graph value as YAML. Cyclic values are errors.
func ToYAML(v any) ([]byte, error) {
	plain, err := graph.ToAny(v)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(plain)
}
