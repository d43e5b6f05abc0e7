package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-utils/dot"
	"github.com/hasbyte1/go-utils/internal/codec"
	"github.com/hasbyte1/go-utils/internal/config"
	"github.com/hasbyte1/go-utils/internal/logging"
)

// inputFormat picks the decoder: an explicit --from, then the file
// extension, then the configured default.
func (a *app) inputFormat(cmd *cobra.Command, filename string) string {
	if cmd.Flags().Changed("from") {
		return a.cfg.From
	}
	if detected, ok := codec.Detect(filename); ok {
		return detected
	}
	return a.cfg.From
}

// readDocument decodes the file named by args[0], or stdin when there is
// no argument or it is "-".
func (a *app) readDocument(cmd *cobra.Command, args []string) (*dot.Map, error) {
	name := "-"
	if len(args) > 0 {
		name = args[0]
	}

	var r io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	format := a.inputFormat(cmd, name)
	c, err := codec.Lookup(format)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(a.log, "decode "+format)
	m, err := c.Decode(r, a.dot)
	done()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Debug().Str("input", name).Str("format", format).Int("keys", m.Len()).Msg("Document read")
	return m, nil
}

// writeFlat writes a flat map in the configured layout.
func (a *app) writeFlat(cmd *cobra.Command, flat *dot.Map) error {
	if a.cfg.Format == config.FormatList {
		return renderList(cmd.OutOrStdout(), flat)
	}
	return a.encode(cmd, flat)
}

// writeTree writes a nested map in the configured layout. The list layout
// flattens it first, leniently, so that keys already holding the separator
// do not fail.
func (a *app) writeTree(cmd *cobra.Command, tree *dot.Map) error {
	if a.cfg.Format == config.FormatList {
		lenient := dot.New(dot.Options{Separator: a.cfg.Separator, KeepEmpty: a.cfg.KeepEmpty})
		flat, err := lenient.Flatten(tree)
		if err != nil {
			return err
		}
		return renderList(cmd.OutOrStdout(), flat)
	}
	return a.encode(cmd, tree)
}

func (a *app) encode(cmd *cobra.Command, m *dot.Map) error {
	c, err := codec.Lookup(a.cfg.To)
	if err != nil {
		return err
	}
	return c.Encode(cmd.OutOrStdout(), m)
}

// writeLeaf prints a scalar: strings bare, everything else as JSON.
func writeLeaf(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		_, err = fmt.Fprintf(w, "%v\n", v)
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
