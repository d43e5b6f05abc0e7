// Package codec reads and writes documents as ordered *dot.Map trees.
//
// JSON and YAML keep the document's key order. TOML and HCL have no usable
// order at decode time, so their keys come out sorted (TOML) or in source
// order (HCL attributes and blocks). HCL is read-only.
package codec

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hasbyte1/go-utils/dot"
)

// Sentinel errors.
var (
	ErrUnknownFormat = errors.New("codec: unknown format")
	ErrReadOnly      = errors.New("codec: format cannot be written")
)

// Codec decodes documents into a *dot.Map and encodes them back. Decode
// converts non-string keys according to f's options; a nil f means
// dot.DefaultOptions.
type Codec interface {
	Name() string
	Decode(r io.Reader, f *dot.Flattener) (*dot.Map, error)
	Encode(w io.Writer, m *dot.Map) error
}

var registry = map[string]Codec{}

// aliases maps alternative names and file extensions to registry names.
var aliases = map[string]string{
	"yml": "yaml",
	"tf":  "hcl",
}

func register(c Codec) { registry[c.Name()] = c }

func orDefault(f *dot.Flattener) *dot.Flattener {
	if f == nil {
		return dot.New(dot.DefaultOptions())
	}
	return f
}

func init() {
	register(jsonCodec{})
	register(yamlCodec{})
	register(tomlCodec{})
	register(hclCodec{})
}

// Lookup returns the codec registered under name (case-insensitive).
func Lookup(name string) (Codec, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[n]; ok {
		n = a
	}
	c, ok := registry[n]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names returns the registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Detect guesses a format from a file name's extension.
func Detect(filename string) (string, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return "", false
	}
	c, err := Lookup(ext)
	if err != nil {
		return "", false
	}
	return c.Name(), true
}
