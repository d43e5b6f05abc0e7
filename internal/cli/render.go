package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/hasbyte1/go-utils/dot"
	"github.com/hasbyte1/go-utils/internal/logging"
)

type listStyles struct {
	key   lipgloss.Style
	eq    lipgloss.Style
	value lipgloss.Style
}

// newListStyles returns styles bound to w. Output that is not a terminal,
// or NO_COLOR, gets plain text.
func newListStyles(w io.Writer) listStyles {
	r := lipgloss.NewRenderer(w)
	if f, ok := w.(*os.File); !ok || !logging.IsTerminal(f) || os.Getenv("NO_COLOR") != "" {
		r.SetColorProfile(termenv.Ascii)
	}
	return listStyles{
		key:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		eq:    r.NewStyle().Faint(true),
		value: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// renderList prints one "key = value" line per entry with aligned keys.
// Values are JSON encoded.
func renderList(w io.Writer, flat *dot.Map) error {
	styles := newListStyles(w)

	width := 0
	for k := range flat.All() {
		width = max(width, utf8.RuneCountInString(k))
	}
	keyStyle := styles.key.Width(width)

	for k, v := range flat.All() {
		encoded, err := json.Marshal(v)
		if err != nil {
			encoded = []byte(fmt.Sprintf("%v", v))
		}
		_, err = fmt.Fprintf(w, "%s %s %s\n",
			keyStyle.Render(k),
			styles.eq.Render("="),
			styles.value.Render(string(encoded)),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
