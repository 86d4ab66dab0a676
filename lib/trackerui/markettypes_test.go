// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package trackerui

import (
	"strings"
	"testing"

	"github.com/toz-panzmoravy/bettracker/lib/schema"
)

func TestParseSportNames(t *testing.T) {
	sports := []schema.Sport{
		{ID: 1, Name: "Fotbal"},
		{ID: 2, Name: "Hokej"},
	}

	ids, err := parseSportNames(sports, "hokej, Fotbal")
	if err != nil {
		t.Fatalf("parseSportNames: %v", err)
	}
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 1 {
		t.Errorf("parseSportNames = %v, want [2 1]", ids)
	}

	ids, err = parseSportNames(sports, "  ")
	if err != nil || ids != nil {
		t.Errorf("blank input should mean no binding, got %v, %v", ids, err)
	}

	_, err = parseSportNames(sports, "kriket")
	if err == nil || !strings.Contains(err.Error(), "kriket") {
		t.Errorf("unknown sport should name the offender, got %v", err)
	}
}
