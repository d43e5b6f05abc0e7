// Package str provides string helpers in the spirit of Laravel's Str facade:
// slicing around needles (Before, After, Between), masking, placeholder
// templates and random identifiers.
//
// Positions and lengths are counted in runes, not bytes, so multi-byte text
// is never split inside a character.
package str
