// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "0"},
		{5, "5"},
		{150, "150"},
		{1000, "1 000"},
		{12500, "12 500"},
		{1234567, "1 234 567"},
		{1234.5, "1 234,5"},
		{99.99, "99,99"},
		{10.10, "10,1"},
		{-2500, "-2 500"},
		{-0.5, "-0,5"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.value); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatProfit(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{250, "+250"},
		{0.01, "+0,01"},
		{0, "0"},
		{-120.5, "-120,5"},
	}
	for _, tc := range cases {
		if got := FormatProfit(tc.value); got != tc.want {
			t.Errorf("FormatProfit(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatProfitPrefixOnlyWhenPositive(t *testing.T) {
	for _, value := range []float64{-1000, -1, -0.001, 0, 0.001, 1, 1000} {
		got := FormatProfit(value)
		hasPlus := len(got) > 0 && got[0] == '+'
		if hasPlus != (value > 0) {
			t.Errorf("FormatProfit(%v) = %q: plus prefix should appear iff value > 0", value, got)
		}
	}
}

func TestFormatCZK(t *testing.T) {
	if got := FormatCZK(12500); got != "12 500 Kč" {
		t.Errorf("FormatCZK(12500) = %q", got)
	}
	if got := FormatProfitCZK(320.5); got != "+320,5 Kč" {
		t.Errorf("FormatProfitCZK(320.5) = %q", got)
	}
}

func TestFormatOdds(t *testing.T) {
	if got := FormatOdds(1.9); got != "1.90" {
		t.Errorf("FormatOdds(1.9) = %q", got)
	}
	if got := FormatOdds(12.345); got != "12.35" {
		t.Errorf("FormatOdds(12.345) = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{55.5, "55,5 %"},
		{100, "100 %"},
		{0, "0 %"},
		{-3.2, "-3,2 %"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.value); got != tc.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
	if got := FormatSignedPercent(12.5); got != "+12,5 %" {
		t.Errorf("FormatSignedPercent(12.5) = %q", got)
	}
}
