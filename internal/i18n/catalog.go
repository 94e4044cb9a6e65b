// Package i18n resolves message keys raised by handlers into user-facing text.
package i18n

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/template"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var funcs = template.FuncMap{
	"date": func(v any) string {
		if t, ok := v.(time.Time); ok {
			return t.Format("2006-01-02 15:04")
		}
		return fmt.Sprint(v)
	},
	"number": func(v any) string {
		switch n := v.(type) {
		case float64:
			if n == float64(int64(n)) {
				return fmt.Sprintf("%d", int64(n))
			}
			return fmt.Sprintf("%.2f", n)
		default:
			return fmt.Sprint(v)
		}
	},
}

// Catalog maps dotted message keys to text/template sources.
type Catalog struct {
	messages map[string]*template.Template
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("i18n: built-in catalog: %v", err))
	}
	return c
}

// Load reads a YAML catalog from path and overlays it on the built-in one.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	overlay, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return Default().Merge(overlay), nil
}

// Parse builds a catalog from YAML. Nested mappings are flattened into dotted
// keys, so errors: {expired: ...} defines "errors.expired".
func Parse(data []byte) (*Catalog, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	flat := make(map[string]string)
	if err := flatten("", tree, flat); err != nil {
		return nil, err
	}
	c := &Catalog{messages: make(map[string]*template.Template, len(flat))}
	for key, src := range flat {
		tmpl, err := template.New(key).Funcs(funcs).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("message %s: %w", key, err)
		}
		c.messages[key] = tmpl
	}
	return c, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) error {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case string:
			out[key] = t
		case map[string]any:
			if err := flatten(key, t, out); err != nil {
				return err
			}
		case nil:
		default:
			return fmt.Errorf("message %s: expected text or mapping, got %T", key, v)
		}
	}
	return nil
}

// Merge returns a catalog holding c's messages overridden by other's.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := &Catalog{messages: make(map[string]*template.Template, len(c.messages)+len(other.messages))}
	for k, v := range c.messages {
		out.messages[k] = v
	}
	for k, v := range other.messages {
		out.messages[k] = v
	}
	return out
}

// Keys lists the defined message keys in order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.messages))
	for k := range c.messages {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Localize renders the message for key with vars. Unknown keys render as the
// key itself followed by the variables, so a missing translation stays
// visible without failing the update.
func (c *Catalog) Localize(key string, vars map[string]any) string {
	tmpl, ok := c.messages[key]
	if !ok {
		return fallback(key, vars)
	}
	if vars == nil {
		vars = map[string]any{}
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return fallback(key, vars)
	}
	return buf.String()
}

func fallback(key string, vars map[string]any) string {
	if len(vars) == 0 {
		return key
	}
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	pairs := make([]string, 0, len(names))
	for _, k := range names {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, vars[k]))
	}
	return key + " (" + strings.Join(pairs, ", ") + ")"
}
