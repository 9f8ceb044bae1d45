package localization

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// LoadLocale builds a table from the embedded locale files. Locale names
// are file basenames, e.g. "en".
func LoadLocale(locale string) (*Table, error) {
	data, err := localesFS.ReadFile(path.Join("locales", locale+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("localization: locale %q: %w", locale, err)
	}
	t := NewTable()
	if err := t.LoadBytes(data); err != nil {
		return nil, err
	}
	return t, nil
}

// Locales lists the embedded locale names.
func Locales() []string {
	entries, err := fs.ReadDir(localesFS, "locales")
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if ext := path.Ext(name); ext == ".yaml" {
			out = append(out, name[:len(name)-len(ext)])
		}
	}
	return out
}
