package localization

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Table maps UI string keys to localized text. Keys may carry query-style
// arguments ("view-zoom?percent=100") interpolated into {placeholder}
// markers in the stored text. Lookup of a missing key returns the key
// itself so untranslated UI stays readable.
type Table struct {
	mu      sync.RWMutex
	strings map[string]string
}

func NewTable() *Table {
	return &Table{strings: make(map[string]string)}
}

// LoadBytes merges a YAML string table into the table. Later loads win on
// duplicate keys, which is what hot reload wants.
func (t *Table) LoadBytes(data []byte) error {
	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("localization: unmarshal table: %w", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	for k, v := range entries {
		t.strings[k] = v
	}
	return nil
}

// Lookup resolves a key to its localized text, interpolating query args.
func (t *Table) Lookup(key string) string {
	name := key
	rawQuery := ""
	if i := strings.IndexByte(key, '?'); i >= 0 {
		name = key[:i]
		rawQuery = key[i+1:]
	}

	t.mu.RLock()
	text, ok := t.strings[name]
	t.mu.RUnlock()
	if !ok {
		return key
	}
	if rawQuery == "" {
		return text
	}

	args, err := url.ParseQuery(rawQuery)
	if err != nil {
		return text
	}
	for k, vs := range args {
		if len(vs) == 0 {
			continue
		}
		text = strings.ReplaceAll(text, "{"+k+"}", vs[0])
	}
	return text
}
