package declaration

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-gridfield/pkg/fieldtype"
)

// LoadFS walks fsys and parses every JSON/YAML declaration file it finds.
// When fsys is nil or holds no declaration files, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{templates: make(map[string]Template)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDeclarationFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("declaration: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Templates {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("declaration: file %s defines an empty template name", path)
			}
			if existing, exists := store.templates[name]; exists {
				return fmt.Errorf("declaration: duplicate template %q (files %s and %s)", name, existing.Source, path)
			}

			tpl, err := normaliseTemplate(raw, name, path)
			if err != nil {
				return err
			}
			store.templates[name] = tpl
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Check verifies every declared field type is known to registry.
func (s *Store) Check(registry *fieldtype.Registry) error {
	for _, name := range s.Names() {
		tpl := s.templates[name]
		for _, field := range tpl.Fields {
			if !registry.Has(field.Type) {
				return fmt.Errorf("declaration: template %q field %q uses unknown type %q (file %s)", name, field.ID, field.Type, tpl.Source)
			}
		}
	}
	return nil
}

type documentFile struct {
	Templates map[string]templateFile `json:"templates" yaml:"templates"`
}

type templateFile struct {
	Title  string      `json:"title" yaml:"title"`
	Fields []fieldFile `json:"fields" yaml:"fields"`
}

type fieldFile struct {
	ID    string         `json:"id" yaml:"id"`
	Type  string         `json:"type" yaml:"type"`
	Label string         `json:"label" yaml:"label"`
	Attrs map[string]any `json:"attrs" yaml:"attrs"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("declaration: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("declaration: parse %s: invalid JSON or YAML", source)
}

func normaliseTemplate(raw templateFile, name, source string) (Template, error) {
	tpl := Template{
		Name:   name,
		Title:  strings.TrimSpace(raw.Title),
		Source: source,
		Fields: make([]Field, 0, len(raw.Fields)),
	}
	if tpl.Title == "" {
		tpl.Title = name
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, rf := range raw.Fields {
		id := strings.TrimSpace(rf.ID)
		if id == "" {
			return Template{}, fmt.Errorf("declaration: template %q (file %s) field %d has no id", name, source, idx)
		}
		if _, dup := seen[id]; dup {
			return Template{}, fmt.Errorf("declaration: template %q (file %s) defines duplicate field %q", name, source, id)
		}
		seen[id] = struct{}{}

		fieldType := strings.ToLower(strings.TrimSpace(rf.Type))
		if fieldType == "" {
			return Template{}, fmt.Errorf("declaration: template %q (file %s) field %q has no type", name, source, id)
		}

		attrs, err := normaliseAttrs(rf.Attrs)
		if err != nil {
			return Template{}, fmt.Errorf("declaration: template %q (file %s) field %q: %w", name, source, id, err)
		}

		label := strings.TrimSpace(rf.Label)
		if label == "" {
			label = id
		}
		tpl.Fields = append(tpl.Fields, Field{ID: id, Type: fieldType, Label: label, Attrs: attrs})
	}
	return tpl, nil
}

// normaliseAttrs flattens scalar attribute values to the strings a template
// tag would carry.
func normaliseAttrs(raw map[string]any) (fieldtype.Tag, error) {
	out := make(map[string]string, len(raw))
	for key, value := range raw {
		text, err := attrString(value)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", key, err)
		}
		out[key] = text
	}
	return fieldtype.NewTag(out), nil
}

func attrString(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			text, err := attrString(item)
			if err != nil {
				return "", err
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, ","), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", value)
	}
}

func isDeclarationFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
