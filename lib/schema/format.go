// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a number the Czech way: thousands separated by
// spaces, decimal comma, at most two fractional digits with trailing
// zeros dropped.
func FormatAmount(value float64) string {
	negative := value < 0
	abs := math.Abs(value)

	rounded := math.Round(abs*100) / 100
	whole := math.Trunc(rounded)
	fraction := rounded - whole

	digits := strconv.FormatFloat(whole, 'f', 0, 64)
	var grouped strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	result := grouped.String()
	if fraction > 0 {
		frac := strconv.FormatFloat(fraction, 'f', 2, 64)
		frac = strings.TrimPrefix(frac, "0.")
		frac = strings.TrimRight(frac, "0")
		if frac != "" {
			result += "," + frac
		}
	}
	if negative && rounded != 0 {
		result = "-" + result
	}
	return result
}

// FormatProfit renders a profit value with an explicit "+" prefix for
// strictly positive values. Negative and zero values render as-is.
func FormatProfit(profit float64) string {
	formatted := FormatAmount(profit)
	if profit > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatCZK renders an amount with the currency suffix.
func FormatCZK(value float64) string {
	return FormatAmount(value) + " Kč"
}

// FormatProfitCZK renders a signed profit with the currency suffix.
func FormatProfitCZK(profit float64) string {
	return FormatProfit(profit) + " Kč"
}

// FormatOdds renders decimal odds with two fixed fractional digits.
func FormatOdds(odds float64) string {
	return fmt.Sprintf("%.2f", odds)
}

// FormatPercent renders a percentage with one fractional digit,
// dropping ".0".
func FormatPercent(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', 1, 64)
	formatted = strings.TrimSuffix(formatted, ".0")
	return strings.Replace(formatted, ".", ",", 1) + " %"
}

// FormatSignedPercent is FormatPercent with a "+" prefix for
// strictly positive values.
func FormatSignedPercent(value float64) string {
	if value > 0 {
		return "+" + FormatPercent(value)
	}
	return FormatPercent(value)
}
