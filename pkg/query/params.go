package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Params is a string-keyed mapping that remembers insertion order.
// Setting an existing key replaces its value in place.
// The zero value is ready to use.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams creates an empty Params.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// FromMap copies m into Params with keys in sorted order.
func FromMap(m map[string]any) *Params {
	p := &Params{values: make(map[string]any, len(m))}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		p.Set(k, m[k])
	}
	return p
}

// Set assigns v to key and returns p for chaining.
func (p *Params) Set(key string, v any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = v
	return p
}

func (p *Params) Get(key string) (any, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

// GetString returns the value for key when it holds a string.
func (p *Params) GetString(key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

// Del removes key, keeping the order of the remaining keys.
func (p *Params) Del(key string) {
	if p == nil {
		return
	}
	if _, ok := p.values[key]; !ok {
		return
	}
	delete(p.values, key)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == key })
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Keys returns a copy of the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates key/value pairs in insertion order.
func (p *Params) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy.
func (p *Params) Map() map[string]any {
	if p == nil {
		return nil
	}
	return maps.Clone(p.values)
}

// MarshalJSON writes an object with keys in insertion order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalRaw(k)
		if err != nil {
			return nil, err
		}
		val, err := marshalRaw(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalRaw is json.Marshal without HTML escaping, so "<" stays "<".
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON reads a JSON object, keeping the key order of the document.
// Nested values decode into the usual encoding/json shapes.
func (p *Params) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrInvalidParams
	}

	p.keys = nil
	p.values = make(map[string]any)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Join(ErrInvalidParams, err)
		}
		key, ok := tok.(string)
		if !ok {
			return ErrInvalidParams
		}

		var v any
		if err := dec.Decode(&v); err != nil {
			return errors.Join(ErrInvalidParams, err)
		}
		p.Set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// MarshalYAML produces a mapping node with keys in insertion order.
func (p *Params) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range p.keys {
		var val yaml.Node
		if err := val.Encode(p.values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}
