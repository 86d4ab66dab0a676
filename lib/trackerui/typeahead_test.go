// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"reflect"
	"testing"
)

func TestSuggestPrefixBeforeSubstring(t *testing.T) {
	candidates := []string{"NHL", "Chance liga", "La Liga", "Liga mistrů", "Premier League"}

	got := suggest(candidates, "li")
	want := []string{"Liga mistrů", "Chance liga", "La Liga", "Premier League"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("suggest(%q) = %v, want %v", "li", got, want)
	}
}

func TestSuggestCaseInsensitive(t *testing.T) {
	got := suggest([]string{"Fotbal", "Florbal"}, "FO")
	if len(got) != 1 || got[0] != "Fotbal" {
		t.Errorf("suggest(%q) = %v, want [Fotbal]", "FO", got)
	}
}

func TestSuggestExactMatchSuppressesList(t *testing.T) {
	if got := suggest([]string{"Hokej", "Hokejbal"}, "hokej"); got != nil {
		t.Errorf("exact match should suppress suggestions, got %v", got)
	}
}

func TestSuggestEmptyInput(t *testing.T) {
	if got := suggest([]string{"Fotbal"}, "  "); got != nil {
		t.Errorf("blank input should return nothing, got %v", got)
	}
}

func TestSuggestDeduplicatesAndCaps(t *testing.T) {
	candidates := []string{"Liga A", "Liga A", "Liga B", "Liga C", "Liga D", "Liga E", "Liga F"}
	got := suggest(candidates, "liga")
	if len(got) != maxSuggestions {
		t.Fatalf("suggest returned %d entries, want cap %d", len(got), maxSuggestions)
	}
	seen := make(map[string]bool)
	for _, entry := range got {
		if seen[entry] {
			t.Errorf("duplicate suggestion %q", entry)
		}
		seen[entry] = true
	}
}
