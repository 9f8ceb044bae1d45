package localization

import "testing"

func TestWatcherClose(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// The run goroutine owns the channels; once it stops they both close.
	if _, ok := <-w.Events; ok {
		t.Fatalf("events channel should close after Close")
	}
	for range w.Errors {
	}

	if err := w.Close(); err != nil {
		t.Fatalf("second close should be a no-op, got %v", err)
	}
}

func TestIsLocaleFile(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"locales/en.yaml", true},
		{"locales/en.YML", true},
		{"locales/en.json", false},
		{"en", false},
	}
	for _, c := range cases {
		if got := isLocaleFile(c.path); got != c.want {
			t.Fatalf("isLocaleFile(%q) = %v, want %v", c.path, got, c.want)
		}
	}
}
