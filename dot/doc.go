// Package dot flattens nested string-keyed mappings into single-level
// mappings keyed by dot-joined paths, and expands them back. It is the Go
// counterpart of Laravel's Arr::dot and Arr::undot.
//
// # Ordered mappings
//
// Go maps have no stable iteration order, so the package works on [Map], an
// insertion-ordered mapping. Flatten output is produced depth-first, in each
// mapping's own key order, which makes it deterministic:
//
//	m := dot.NewMap(
//	    dot.E("name", "Taylor"),
//	    dot.E("meta", dot.NewMap(
//	        dot.E("foo", "bar"),
//	        dot.E("baz", []any{"boom", "boom", "boom"}),
//	    )),
//	)
//	flat := dot.Flatten(m)
//	// → {"name": "Taylor", "meta.foo": "bar", "meta.baz": ["boom" "boom" "boom"]}
//	nested := dot.Unflatten(flat) // deep-equals m
//
// Native map[string]any values are accepted anywhere inside a tree and are
// visited in sorted key order. [Dot] and [Undot] work entirely on native maps.
//
// # Value kinds
//
// Every value is classified by [Classify] as a leaf, an array or a mapping.
// Arrays (any slice except []byte) are leaves for flattening purposes: they
// are copied to the output unchanged and never recursed into, and Unflatten
// never builds arrays.
//
// # Round trips
//
// Unflatten(Flatten(x)) deep-equals x when no key of x contains the separator
// and x holds no empty sub-mappings. Empty sub-mappings are dropped unless
// [Options.KeepEmpty] is set, in which case they are emitted as empty leaves.
//
// # Strictness
//
// The package-level functions are lenient: they never fail, and conflicting
// paths keep the structure that was built first. A [Flattener] built with
// [Options.Strict] reports malformed paths as [*ValidationError] and
// collisions as [*ConflictError] instead.
//
// All functions are free of shared state and safe for concurrent use.
package dot
