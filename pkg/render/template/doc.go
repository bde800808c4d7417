// Package template defines the template engine seam used by markup renderers.
// Concrete engines live in subpackages (see gotemplate).
package template
