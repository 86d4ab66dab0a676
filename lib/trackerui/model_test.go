// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"errors"
	"testing"

	"github.com/toz-panzmoravy/bettracker/lib/api"
	"github.com/toz-panzmoravy/bettracker/lib/config"
	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

func testModel() *Model {
	return NewModel(api.NewClient("http://127.0.0.1:1/api"), &config.Config{}, testLogger())
}

func TestLoadReferenceFansOutPerCatalog(t *testing.T) {
	model := testModel()

	// The backend is unreachable, so every fetch fails fast; what
	// matters is that all four catalogs are requested independently.
	parts := map[catalogPart]bool{}
	for _, message := range collectMsgs(t, model.loadReference()) {
		loaded, ok := message.(referenceLoadedMsg)
		if !ok {
			t.Fatalf("unexpected message %T", message)
		}
		if loaded.err == nil {
			t.Errorf("part %v succeeded against an unreachable backend", loaded.part)
		}
		parts[loaded.part] = true
	}
	if len(parts) != 4 {
		t.Errorf("saw %d catalog parts, want 4: %v", len(parts), parts)
	}
}

func TestCatalogPartsMergeIncrementally(t *testing.T) {
	model := testModel()

	model.Update(referenceLoadedMsg{part: catalogSports, sports: []schema.Sport{{ID: 1, Name: "Fotbal"}}})
	model.Update(referenceLoadedMsg{part: catalogBookmakers, bookmakers: []schema.Bookmaker{{ID: 3, Name: "Tipsport"}}})

	if len(model.reference.sports) != 1 || model.reference.sports[0].Name != "Fotbal" {
		t.Errorf("sports not merged: %v", model.reference.sports)
	}
	if len(model.reference.bookmakers) != 1 {
		t.Errorf("bookmakers not merged: %v", model.reference.bookmakers)
	}

	// A failing part must not wipe what already landed.
	model.Update(referenceLoadedMsg{part: catalogLeagues, err: errors.New("backend down")})
	if len(model.reference.sports) != 1 || len(model.reference.bookmakers) != 1 {
		t.Error("catalog error wiped earlier parts")
	}
}
