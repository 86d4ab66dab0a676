// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package trackerui is the terminal UI for the betting tracker. The
// top-level Model owns the tab bar, the shared reference catalogs
// (sports, leagues, bookmakers, market types), the toast stack, and
// the win-streak confetti effect; each tab is its own page model with
// the usual bubbletea Update/View split.
//
// All backend traffic goes through lib/api from commands, never from
// Update directly: a page issues a command, renders its loading
// state, and reconciles when the result message arrives. Stale
// results for superseded requests are dropped by sequence number.
package trackerui
