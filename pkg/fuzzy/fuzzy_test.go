// ABOUTME: Tests for the fuzzy filtering wrapper
// ABOUTME: Verifies ranking, pass-through on empty pattern, and no-match cases

package fuzzy

import "testing"

func TestFilter_BasicMatch(t *testing.T) {
	t.Parallel()

	items := []string{"reload", "back", "forward", "clear cookies"}
	matches := Filter("re", items)

	if len(matches) == 0 {
		t.Fatal("expected matches for 're'")
	}
	found := false
	for _, m := range matches {
		if m.Str == "reload" {
			found = true
		}
	}
	if !found {
		t.Error("expected 'reload' in results")
	}
}

func TestFilter_NoMatch(t *testing.T) {
	t.Parallel()

	matches := Filter("zzz", []string{"back", "forward"})
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}

func TestFilter_EmptyPatternKeepsOrder(t *testing.T) {
	t.Parallel()

	items := []string{"c", "a", "b"}
	matches := Filter("", items)

	if len(matches) != 3 {
		t.Fatalf("expected all 3 items, got %d", len(matches))
	}
	for i, m := range matches {
		if m.Str != items[i] || m.Index != i {
			t.Errorf("match %d = %+v, want original order preserved", i, m)
		}
	}
}
