package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-choices/pkg/enum"
)

// LoadFS walks the provided filesystem and parses JSON/YAML enumeration
// catalogs. When fsys is nil or no catalog files are present, the returned
// store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{enums: make(map[string]*enum.Choices), sources: make(map[string]string)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for name, raw := range doc.Enums {
			trimmed := strings.TrimSpace(name)
			if trimmed == "" {
				return fmt.Errorf("catalog: file %s defines an empty enumeration name", path)
			}
			if prev, exists := store.sources[trimmed]; exists {
				return fmt.Errorf("catalog: duplicate enumeration %q (files %s and %s)", trimmed, prev, path)
			}

			choices, err := buildEnum(trimmed, raw)
			if err != nil {
				return fmt.Errorf("catalog: file %s: %w", path, err)
			}
			store.enums[trimmed] = choices
			store.sources[trimmed] = path
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// LoadBytes parses a single catalog payload, for callers that already hold
// the document in memory.
func LoadBytes(data []byte, source string) (*Store, error) {
	store := &Store{enums: make(map[string]*enum.Choices), sources: make(map[string]string)}

	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}
	for name, raw := range doc.Enums {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			return nil, fmt.Errorf("catalog: %s defines an empty enumeration name", source)
		}
		choices, err := buildEnum(trimmed, raw)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", source, err)
		}
		store.enums[trimmed] = choices
		store.sources[trimmed] = source
	}
	return store, nil
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

// buildEnum converts a parsed definition into enumeration entries. Contiguous
// members sharing a non-empty group tag collapse into one group entry so the
// grouped listing mirrors declaration order.
func buildEnum(name string, raw definitionFile) (*enum.Choices, error) {
	var entries []enum.Entry
	if raw.Empty != nil {
		entries = append(entries, enum.Empty(*raw.Empty))
	}

	var (
		run      []enum.Entry
		runLabel string
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		entries = append(entries, enum.Group(runLabel, run...))
		run = nil
		runLabel = ""
	}

	for _, member := range raw.Members {
		def, err := memberEntry(member)
		if err != nil {
			return nil, fmt.Errorf("enum %q: %w", name, err)
		}

		if member.Group == "" {
			flush()
			entries = append(entries, def)
			continue
		}
		if member.Group != runLabel {
			flush()
			runLabel = member.Group
		}
		run = append(run, def)
	}
	flush()

	return enum.New(name, entries...)
}

func memberEntry(member memberFile) (enum.Entry, error) {
	name := strings.TrimSpace(member.Name)
	if name == "" {
		return enum.Entry{}, fmt.Errorf("member name is required")
	}

	value := member.Value
	if value == nil {
		value = name
	}
	if member.Label != "" {
		return enum.Def(name, value, member.Label), nil
	}
	return enum.Def(name, value), nil
}
