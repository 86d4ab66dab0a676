// Copyright 2026 The BetTracker Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the JSON-over-HTTP client for the tracker backend.
//
// Every call takes a context and carries its own deadline on top of
// it: regular CRUD calls time out after 30 seconds, screenshot OCR
// after 10 minutes, AI analysis after 3 minutes. Backend errors come
// back as [*APIError] with the backend's detail string; exceeded
// deadlines come back as [*TimeoutError] so the UI can show a
// retry-worthy message instead of a transport trace.
package api
