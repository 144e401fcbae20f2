package rules

import (
	"testing"

	"github.com/vovakirdan/tui-life/internal/life"
)

func TestBuiltinPresets(t *testing.T) {
	tests := []struct {
		id   string
		rule life.Rule
	}{
		{"default", life.DefaultRule},
		{"conway", life.ConwayRule},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			if !Exists(tc.id) {
				t.Fatalf("preset %q should be registered", tc.id)
			}
			p, err := Lookup(tc.id)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tc.id, err)
			}
			if p.Rule != tc.rule {
				t.Errorf("Lookup(%q).Rule = %v, expected %v", tc.id, p.Rule, tc.rule)
			}
		})
	}
}

func TestLookupEmptyIsDefault(t *testing.T) {
	p, err := Lookup("")
	if err != nil {
		t.Fatalf("Lookup(\"\") failed: %v", err)
	}
	if p.ID != DefaultID {
		t.Errorf("Lookup(\"\").ID = %q, expected %q", p.ID, DefaultID)
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, err := Lookup("highlife"); err == nil {
		t.Error("Lookup of an unregistered preset should fail")
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("expected at least 2 presets, got %d", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate ID should panic")
		}
	}()
	Register(Preset{ID: DefaultID, Rule: life.DefaultRule})
}
