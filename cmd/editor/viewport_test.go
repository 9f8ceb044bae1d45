package main

import "testing"

func TestPanButtonRules(t *testing.T) {
	cases := []struct {
		name                     string
		middle, left, modifier   bool
		wantStart, wantSustained bool
	}{
		{"middle_alone", true, false, false, true, true},
		{"left_with_modifier", false, true, true, true, true},
		{"left_alone", false, true, false, false, false},
		{"modifier_alone", false, false, true, false, false},
		{"nothing", false, false, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := panStarted(c.middle, c.left, c.modifier); got != c.wantStart {
				t.Fatalf("panStarted = %v, want %v", got, c.wantStart)
			}
			if got := panHeld(c.middle, c.left, c.modifier); got != c.wantSustained {
				t.Fatalf("panHeld = %v, want %v", got, c.wantSustained)
			}
		})
	}
}

func TestPanNotProlongedByBareLeft(t *testing.T) {
	// Pan started with the middle button; middle released while an
	// unmodified left press is held. The pan must end.
	if panHeld(false, true, false) {
		t.Fatalf("bare left press should not sustain a pan")
	}
	// With the modifier still down the left button keeps the pan alive.
	if !panHeld(false, true, true) {
		t.Fatalf("modified left press should sustain a pan")
	}
}
