// Cartographus - Media Server Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kerem-isiktasli/logos

// Package timing classifies a response's elapsed time into a speed
// bucket and maps that bucket, combined with correctness, to a suggested
// FSRS rating. It also flags sessions whose response-time distribution
// looks mechanical rather than human.
package timing
