package localization

import "testing"

func loadTestTable(t *testing.T) *Table {
	t.Helper()
	table := NewTable()
	err := table.LoadBytes([]byte(`
greeting: Hello
view-zoom: "Zoom: {percent}%"
view-offset: "Offset: {x}, {y}"
`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return table
}

func TestTableLookup(t *testing.T) {
	table := loadTestTable(t)

	cases := []struct {
		name string
		key  string
		want string
	}{
		{"plain", "greeting", "Hello"},
		{"missing_returns_key", "nope", "nope"},
		{"single_arg", "view-zoom?percent=150", "Zoom: 150%"},
		{"two_args", "view-offset?x=3&y=-4", "Offset: 3, -4"},
		{"unused_arg_ignored", "greeting?x=1", "Hello"},
		{"missing_arg_leaves_marker", "view-zoom", "Zoom: {percent}%"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := table.Lookup(c.key); got != c.want {
				t.Fatalf("Lookup(%q) = %q, want %q", c.key, got, c.want)
			}
		})
	}
}

func TestTableReloadMerges(t *testing.T) {
	table := loadTestTable(t)
	err := table.LoadBytes([]byte("greeting: Hi\nfarewell: Bye\n"))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := table.Lookup("greeting"); got != "Hi" {
		t.Fatalf("later load should win, got %q", got)
	}
	if got := table.Lookup("farewell"); got != "Bye" {
		t.Fatalf("new keys should merge in, got %q", got)
	}
	if got := table.Lookup("view-zoom?percent=100"); got != "Zoom: 100%" {
		t.Fatalf("untouched keys should survive a reload, got %q", got)
	}
}

func TestTableBadYAML(t *testing.T) {
	table := NewTable()
	if err := table.LoadBytes([]byte("greeting: [unclosed")); err == nil {
		t.Fatalf("expected error for malformed table")
	}
}

func TestEmbeddedLocale(t *testing.T) {
	table, err := LoadLocale("en")
	if err != nil {
		t.Fatalf("load embedded locale: %v", err)
	}
	if got := table.Lookup("create-map"); got == "create-map" {
		t.Fatalf("embedded table should resolve create-map")
	}
}
