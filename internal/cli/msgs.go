package cli

import "errors"

// ErrNotFound is returned by get when the path does not exist.
var ErrNotFound = errors.New("path not found")

// Short messages (one-liners)
const (
	MsgRootShort      = "Flatten and expand nested documents using dotted keys"
	MsgFlattenShort   = "Collapse a nested document into dotted keys"
	MsgUnflattenShort = "Expand dotted keys into a nested document"
	MsgGetShort       = "Print the value at a dotted path"
	MsgDigestShort    = "Print a content hash of a document"
	MsgVersionShort   = "Print version information"
)

// Long messages
const (
	MsgRootLong = `dotx converts between nested documents and flat documents whose keys
are dotted paths:

  {"user": {"name": "Taylor"}}  <->  {"user.name": "Taylor"}

Input is read from the file argument, or from stdin when the argument is
missing or "-". The input format is taken from --from, then from the file
extension. Settings may also come from $XDG_CONFIG_HOME/dotx/config.toml
and DOTX_* environment variables; flags win.`

	MsgFlattenLong = `Flatten walks every mapping in the input and writes one entry per leaf,
keyed by the path to it. Arrays are leaves and are not indexed. Empty
mappings are dropped unless --keep-empty is given.`

	MsgUnflattenLong = `Unflatten splits each key on the separator and rebuilds the nesting.
With --strict, empty path segments and keys that collide with an existing
value are errors; otherwise the first structure wins.`

	MsgGetLong = `Get prints the value at a path. Scalars are printed bare; mappings are
encoded with --to.`

	MsgDigestLong = `Digest prints the BLAKE2b-256 hash of the flattened document. Documents
with the same paths and values hash the same regardless of key order or
source format.`
)
