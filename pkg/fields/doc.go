// Package fields renders label, input, checkbox and select markup from
// per-element config structs. Zero-valued config fields fall back to the
// element defaults, attributes go through the attrs serializer, and every
// operation returns a string; Emit writes that string to an io.Writer when
// the caller wants output written directly.
package fields
