// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package transfer holds the static L1-family to L2-English transfer
// coefficient table and a lightweight cognate detector, feeding priority
// cost and phonological difficulty adjustments.
package transfer
