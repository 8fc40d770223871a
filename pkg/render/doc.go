// Package render substitutes {key} and {key|filter(args)|filter} placeholders
// in template strings from a variable context.
//
// Filters come from an explicit Filters registry handed to NewRenderer.
// The built-ins are pad(n), which zero-pads the integer value to n digits
// (default 2), and slug, which trims, lowercases and turns spaces into
// underscores. Filters in a chain apply left to right.
package render
