package dot

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"golang.org/x/crypto/blake2b"
)

// Digest returns the hex-encoded BLAKE2b-256 hash of m's flattened content.
// The hash covers every path and leaf value but not key order, so two trees
// that are Equal hash the same. Values are encoded as JSON; values JSON cannot
// encode fall back to their %#v form.
func Digest(m *Map) string {
	flat := Flatten(m)
	keys := flat.Keys()
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		v, _ := flat.Get(k)
		buf.WriteString(strconv.Quote(k))
		buf.WriteByte('=')
		if b, err := json.Marshal(v); err == nil {
			buf.Write(b)
		} else {
			fmt.Fprintf(&buf, "%#v", v)
		}
		buf.WriteByte('\n')
	}
	sum := blake2b.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}
