// Package orchestrator coordinates the pipeline from enumeration source
// (pre-built enum, catalog filesystem, or OpenAPI document) to rendered
// output, wiring the renderer registry and optional go-theme selection with
// sensible defaults.
package orchestrator
