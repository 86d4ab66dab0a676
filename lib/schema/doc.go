// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the wire types exchanged with the BetTracker
// backend REST API, plus the display helpers (number formatting,
// status labels, streak computation) shared by the terminal UI.
//
// The JSON field names match the backend's schemas exactly; the
// backend owns all invariants. The client treats these records as
// opaque beyond basic form validation.
package schema
