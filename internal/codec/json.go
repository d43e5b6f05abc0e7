package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hasbyte1/go-utils/dot"
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Decode(r io.Reader, _ *dot.Flattener) (*dot.Map, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read JSON: %w", err)
	}
	m := dot.NewMap()
	if err := m.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return m, nil
}

func (jsonCodec) Encode(w io.Writer, m *dot.Map) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("codec: encode JSON: %w", err)
	}
	return nil
}
