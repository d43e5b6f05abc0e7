package codec

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/hasbyte1/go-utils/dot"
)

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

// Decode reads a TOML document. Keys come out sorted at every level.
func (tomlCodec) Decode(r io.Reader, f *dot.Flattener) (*dot.Map, error) {
	var raw map[string]any
	if err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("codec: decode TOML: %w", err)
	}
	return orDefault(f).FromGo(raw)
}

// Encode writes m as TOML. TOML has no null, so nil leaves fail.
func (tomlCodec) Encode(w io.Writer, m *dot.Map) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(m.ToGo()); err != nil {
		return fmt.Errorf("codec: encode TOML: %w", err)
	}
	return nil
}
