// Package tmpl exposes the field renderers to pongo2 page templates.
package tmpl
