package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-utils/dot"
)

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

// Decode reads the first document. An empty stream yields an empty map.
func (yamlCodec) Decode(r io.Reader, f *dot.Flattener) (*dot.Map, error) {
	var node yaml.Node
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		if errors.Is(err, io.EOF) {
			return dot.NewMap(), nil
		}
		return nil, fmt.Errorf("codec: decode YAML: %w", err)
	}
	m, err := orDefault(f).DecodeYAML(&node)
	if err != nil {
		return nil, fmt.Errorf("codec: decode YAML: %w", err)
	}
	return m, nil
}

func (yamlCodec) Encode(w io.Writer, m *dot.Map) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("codec: encode YAML: %w", err)
	}
	return enc.Close()
}
