package openapi

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-choices/pkg/enum"
)

// Extension keys honoured when deriving symbolic names and display labels
// for schema enum values.
const (
	varNamesExtensionKey = "x-enum-varnames"
	labelsExtensionKey   = "x-enum-labels"
)

// ExtractorOptions configure how documents are interpreted.
type ExtractorOptions struct {
	// AllowPartialDocuments skips the "no enumerations found" failure for
	// documents that legitimately define none.
	AllowPartialDocuments bool
}

// Extractor derives enumerations from component schemas using kin-openapi.
type Extractor struct {
	options ExtractorOptions
}

// NewExtractor constructs an Extractor with the given options.
func NewExtractor(options ExtractorOptions) *Extractor {
	return &Extractor{options: options}
}

// Extract walks components.schemas and returns an enumeration per schema that
// declares an enum list, keyed by schema name.
func (e *Extractor) Extract(ctx context.Context, doc Document) (map[string]*enum.Choices, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("openapi extractor: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi extractor: load document: %w", err)
	}

	result := make(map[string]*enum.Choices)
	if spec.Components != nil {
		for name, ref := range spec.Components.Schemas {
			if ref == nil || ref.Value == nil || len(ref.Value.Enum) == 0 {
				continue
			}
			choices, err := enumFromSchema(name, ref.Value)
			if err != nil {
				return nil, err
			}
			result[name] = choices
		}
	}

	if len(result) == 0 && !e.options.AllowPartialDocuments {
		return nil, errors.New("openapi extractor: no enumerations extracted")
	}
	return result, nil
}

func enumFromSchema(name string, schema *openapi3.Schema) (*enum.Choices, error) {
	values := schema.Enum

	varNames, err := stringExtension(schema.Extensions, varNamesExtensionKey)
	if err != nil {
		return nil, fmt.Errorf("openapi extractor: schema %q: %w", name, err)
	}
	if varNames != nil && len(varNames) != len(values) {
		return nil, fmt.Errorf("openapi extractor: schema %q: %s length %d does not match enum length %d",
			name, varNamesExtensionKey, len(varNames), len(values))
	}

	labels, err := stringExtension(schema.Extensions, labelsExtensionKey)
	if err != nil {
		return nil, fmt.Errorf("openapi extractor: schema %q: %w", name, err)
	}
	if labels != nil && len(labels) != len(values) {
		return nil, fmt.Errorf("openapi extractor: schema %q: %s length %d does not match enum length %d",
			name, labelsExtensionKey, len(labels), len(values))
	}

	entries := make([]enum.Entry, 0, len(values))
	for idx, value := range values {
		memberName := ""
		if varNames != nil {
			memberName = varNames[idx]
		}
		if memberName == "" {
			memberName = memberNameFromValue(value, idx)
		}

		if labels != nil && labels[idx] != "" {
			entries = append(entries, enum.Def(memberName, value, labels[idx]))
			continue
		}
		entries = append(entries, enum.Def(memberName, value))
	}

	choices, err := enum.New(name, entries...)
	if err != nil {
		return nil, fmt.Errorf("openapi extractor: schema %q: %w", name, err)
	}
	return choices, nil
}

// stringExtension normalises a x-enum-* extension into a string slice. A
// missing key returns nil without error.
func stringExtension(extensions map[string]any, key string) ([]string, error) {
	raw, ok := extensions[key]
	if !ok || raw == nil {
		return nil, nil
	}

	switch typed := raw.(type) {
	case []string:
		return append([]string(nil), typed...), nil
	case []any:
		out := make([]string, len(typed))
		for idx, item := range typed {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s entry %d is not a string", key, idx)
			}
			out[idx] = str
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be an array of strings", key)
	}
}

var identifierSanitizer = regexp.MustCompile(`[^A-Za-z0-9]+`)

// memberNameFromValue derives a symbolic name for an enum value when the
// document provides none: string values become SCREAMING_SNAKE identifiers,
// anything else falls back to a positional name.
func memberNameFromValue(value any, idx int) string {
	if str, ok := value.(string); ok {
		cleaned := identifierSanitizer.ReplaceAllString(strings.TrimSpace(str), "_")
		cleaned = strings.Trim(cleaned, "_")
		if cleaned != "" {
			return strings.ToUpper(cleaned)
		}
	}
	return fmt.Sprintf("VALUE_%d", idx)
}
