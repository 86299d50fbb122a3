// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package bottleneck tracks per-component error rates over a rolling
// response window and identifies the linguistic component most likely
// causing downstream errors: the cascade bottleneck.
package bottleneck
