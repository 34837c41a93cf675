// Package template defines the renderer-agnostic template seam used by the
// built-in HTML renderer. The concrete engine lives in the gotemplate
// subpackage; renderers depend only on the TemplateRenderer interface so
// callers can swap engines.
package template
