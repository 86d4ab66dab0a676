// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the tracker's pages. Built on bubbletea (Elm architecture), these
// components handle common patterns like dropdown overlays, form and
// confirmation modals, loading skeletons, the win-streak confetti
// effect, markdown rendering, and ANSI-aware overlay splicing.
//
// Pages (dashboard, tickets, import, market types, settings) import
// this package for consistent look and behavior: same theme, same
// keyboard conventions, same overlay mechanics. Each page owns its
// own data loading, layout, and domain rendering.
package tui
