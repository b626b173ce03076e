// Package attrs holds ordered HTML attribute sets and their serializer. Every
// value carries an explicit kind: omitted values drop the attribute, bare
// values write only the name (`required`) and text values write
// name="value". Both names and values pass through an escape.Escaper, and
// names that parse as integers are skipped so list-style input never leaks
// positional keys into markup. Maps decode from JSON objects and YAML
// mappings without losing document order.
package attrs
