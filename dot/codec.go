package dot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler   = (*Map)(nil)
	_ json.Unmarshaler = (*Map)(nil)
	_ yaml.Marshaler   = (*Map)(nil)
	_ yaml.Unmarshaler = (*Map)(nil)
)

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON encodes m as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, fmt.Errorf("dot: marshal %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object into m, keeping the document's key
// order at every level. Nested objects become *Map values, arrays become
// []any, integral numbers int64 and other numbers float64. JSON null resets
// m to empty.
func (m *Map) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("dot: decode JSON: %w", err)
	}
	if tok == nil {
		*m = Map{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: JSON %v", ErrNotMapping, tok)
	}
	parsed, err := decodeJSONObject(dec)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

func decodeJSONObject(dec *json.Decoder) (*Map, error) {
	out := NewMap()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("dot: decode JSON: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, &InvalidKeyError{Key: tok}
		}
		val, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("dot: decode JSON: %w", err)
	}
	return out, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("dot: decode JSON: %w", err)
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			out := []any{}
			for dec.More() {
				v, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("dot: decode JSON: %w", err)
			}
			return out, nil
		}
		return nil, fmt.Errorf("dot: decode JSON: unexpected %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	}
	return tok, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

// MarshalYAML encodes m as a YAML mapping node with keys in insertion order.
func (m *Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		var valNode yaml.Node
		if err := valNode.Encode(v); err != nil {
			return nil, fmt.Errorf("dot: marshal %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&valNode,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping into m, keeping the document's key
// order. Scalar keys are taken verbatim as strings, so `1: x` yields the key
// "1"; other keys fail with [*InvalidKeyError]. Aliases are resolved and
// `<<` merge keys fill in missing entries.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := std.DecodeYAML(node)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}

// DecodeYAML decodes a YAML mapping node like [Map.UnmarshalYAML]. With
// [Options.CoerceKeys], sequence and mapping keys are decoded and formatted
// with fmt.Sprint instead of being rejected.
func (f *Flattener) DecodeYAML(node *yaml.Node) (*Map, error) {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: YAML node at line %d", ErrNotMapping, node.Line)
	}
	return f.decodeYAMLMapping(node)
}

func (f *Flattener) decodeYAMLMapping(node *yaml.Node) (*Map, error) {
	out := newMapCap(len(node.Content) / 2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		if isMergeKey(keyNode) {
			if err := f.mergeYAML(out, valNode); err != nil {
				return nil, err
			}
			continue
		}
		key, err := f.yamlKey(keyNode)
		if err != nil {
			return nil, err
		}
		val, err := f.decodeYAMLNode(valNode)
		if err != nil {
			return nil, err
		}
		out.Set(key, val)
	}
	return out, nil
}

// mergeYAML applies a `<<` value: one mapping or a sequence of mappings,
// earlier ones winning. Keys already in out are kept.
func (f *Flattener) mergeYAML(out *Map, valNode *yaml.Node) error {
	if valNode.Kind == yaml.AliasNode {
		valNode = valNode.Alias
	}
	sources := []*yaml.Node{valNode}
	if valNode.Kind == yaml.SequenceNode {
		sources = valNode.Content
	}
	for _, src := range sources {
		base, err := f.decodeYAMLNode(src)
		if err != nil {
			return err
		}
		baseMap, ok := base.(*Map)
		if !ok {
			return fmt.Errorf("%w: YAML merge value at line %d", ErrNotMapping, src.Line)
		}
		for k, v := range baseMap.All() {
			if _, exists := out.Get(k); !exists {
				out.Set(k, v)
			}
		}
	}
	return nil
}

func (f *Flattener) yamlKey(n *yaml.Node) (string, error) {
	if n.Kind == yaml.AliasNode && n.Alias != nil && n.Alias.Kind == yaml.ScalarNode {
		n = n.Alias
	}
	if n.Kind == yaml.ScalarNode {
		return n.Value, nil
	}
	key, err := f.decodeYAMLNode(n)
	if err != nil {
		return "", err
	}
	native := toGo(key)
	if !f.opts.CoerceKeys {
		return "", &InvalidKeyError{Key: native}
	}
	return fmt.Sprint(native), nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && (n.Tag == "" || n.ShortTag() == "!!merge")
}

func (f *Flattener) decodeYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return f.decodeYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return f.decodeYAMLNode(node.Alias)
	case yaml.MappingNode:
		return f.decodeYAMLMapping(node)
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			v, err := f.decodeYAMLNode(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("dot: decode YAML at line %d: %w", node.Line, err)
	}
	return v, nil
}
