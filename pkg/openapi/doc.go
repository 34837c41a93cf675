// Package openapi derives enumerated choice sets from OpenAPI documents.
// Component schemas carrying an enum list become enumerations; the
// x-enum-varnames and x-enum-labels extensions supply symbolic names and
// display labels when present. Documents are wrapped behind Source/Document
// abstractions so callers never touch kin-openapi types directly.
package openapi
